package solver

import "github.com/trimatchhq/trimatch-backend/internal/trimatch"

// Heuristic line weights. A same-rank pair is a completion chance for
// whoever moves next (owners are irrelevant to the win condition); two
// distinct ranks are a brewing mixed line the mover must avoid completing.
const (
	pairWeight   = 60
	mixedWeight  = 40
	singleWeight = 8
)

// heuristic estimates an unfinished position at the depth horizon, from the
// root player's perspective. It counts near-complete same-rank lines minus
// brewing mixed lines, signed by whose turn follows.
func heuristic(board *trimatch.Board, root trimatch.Player) int {
	score := 0
	for _, line := range trimatch.Lines {
		score += lineValue(board, line)
	}

	if board.Turn != root {
		return -score
	}
	return score
}

// lineValue scores one line for the side to move.
func lineValue(board *trimatch.Board, line [3]trimatch.Cell) int {
	occupied := 0
	var ranks [2]trimatch.Rank
	for _, cell := range line {
		tile := board.CellAt(cell)
		if tile.IsEmpty() {
			continue
		}
		if occupied < len(ranks) {
			ranks[occupied] = tile.Rank
		}
		occupied++
	}

	switch occupied {
	case 1:
		return singleWeight
	case 2:
		if ranks[0] == ranks[1] {
			return pairWeight
		}
		return -mixedWeight
	default:
		// Empty lines and full lines that triggered no outcome are neutral.
		return 0
	}
}

// Package solver implements the depth-limited minimax search that powers
// both the engine's own play and the hint feature. It works on private
// copies of the board it is given and never mutates the caller's state.
package solver

import (
	"errors"
	"sync"

	"github.com/trimatchhq/trimatch-backend/internal/apperror"
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const (
	// winScore dominates any heuristic value; ply bias makes the search
	// prefer the fastest win and the slowest loss.
	winScore = 1 << 20
	infinity = 1 << 24
)

// BestMove returns the strongest move for the side to move, searching to
// the given depth. Depth is clamped to the valid 1-10 range rather than
// failing. Ties are broken by legal-move order (cell index, then rank),
// so results are reproducible.
func BestMove(board *trimatch.Board, depth int) (trimatch.Move, error) {
	if !board.InProgress() {
		return trimatch.Move{}, apperror.ErrGameOver
	}

	depth = clampDepth(depth)
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return trimatch.Move{}, ErrNoAvailableMoves
	}

	// Root moves are independent, so score each subtree concurrently with
	// a full alpha-beta window. Selection below is sequential and ordered,
	// which keeps results identical to a sequential search.
	scores := make([]int, len(moves))
	var wg sync.WaitGroup
	for i, move := range moves {
		wg.Add(1)
		go func(i int, move trimatch.Move) {
			defer wg.Done()
			child := *board
			if _, err := child.Apply(move); err != nil {
				scores[i] = -infinity
				return
			}
			scores[i] = search(&child, depth-1, 1, -infinity, infinity, board.Turn)
		}(i, move)
	}
	wg.Wait()

	best := 0
	for i := 1; i < len(moves); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return moves[best], nil
}

// Evaluate scores the position for the side to move at the given depth.
// Positive values favor the side to move.
func Evaluate(board *trimatch.Board, depth int) int {
	working := *board
	return search(&working, clampDepth(depth), 0, -infinity, infinity, board.Turn)
}

func clampDepth(depth int) int {
	if depth < trimatch.MinDepth {
		return trimatch.MinDepth
	}
	if depth > trimatch.MaxDepth {
		return trimatch.MaxDepth
	}
	return depth
}

// search is a depth-limited minimax with alpha-beta pruning. Scores are
// always from the root player's perspective; the board argument is a
// working copy owned by this call chain.
func search(board *trimatch.Board, depth, ply, alpha, beta int, root trimatch.Player) int {
	if !board.InProgress() {
		return terminalScore(board, ply, root)
	}

	if depth <= 0 {
		return heuristic(board, root)
	}

	moves := board.LegalMoves()

	if board.Turn == root {
		best := -infinity
		for _, move := range moves {
			child := *board
			if _, err := child.Apply(move); err != nil {
				continue
			}
			score := search(&child, depth-1, ply+1, alpha, beta, root)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	worst := infinity
	for _, move := range moves {
		child := *board
		if _, err := child.Apply(move); err != nil {
			continue
		}
		score := search(&child, depth-1, ply+1, alpha, beta, root)
		if score < worst {
			worst = score
		}
		if worst < beta {
			beta = worst
		}
		if alpha >= beta {
			break
		}
	}
	return worst
}

// terminalScore values a finished position. A win for the root side found
// at a shallower ply outranks one found deeper; losses mirror that.
func terminalScore(board *trimatch.Board, ply int, root trimatch.Player) int {
	magnitude := winScore - ply

	switch board.Status {
	case trimatch.StatusWin:
		if board.Winner == root {
			return magnitude
		}
		return -magnitude
	case trimatch.StatusLoss:
		if board.Loser == root {
			return -magnitude
		}
		return magnitude
	default:
		return 0
	}
}

package trimatch

import (
	"fmt"

	"github.com/trimatchhq/trimatch-backend/internal/apperror"
)

// Status is the terminal state of a board.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusLoss       Status = "loss"
	StatusDraw       Status = "draw"
)

// Board holds the full game position: the 9 cells, both tile pools,
// the player to move and the terminal status. It contains only value
// types, so a plain assignment yields an independent copy.
type Board struct {
	Cells [9]Tile     `json:"cells"`
	Pools [2][3]uint8 `json:"pools"`
	Turn  Player      `json:"turn"`

	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
	Loser  Player `json:"loser,omitempty"`
}

// NewBoard returns an empty board with full pools and the given side to move.
func NewBoard(starting Player) *Board {
	board := &Board{
		Turn:   starting,
		Status: StatusInProgress,
	}
	for p := range board.Pools {
		for r := range board.Pools[p] {
			board.Pools[p][r] = TilesPerRank
		}
	}
	return board
}

// CellAt returns the content of the given cell; the zero Tile means empty.
func (that *Board) CellAt(c Cell) Tile {
	if !c.Valid() {
		return Tile{}
	}
	return that.Cells[c]
}

// Remaining returns how many tiles of the given rank the player still holds.
func (that *Board) Remaining(p Player, r Rank) int {
	if p == PlayerNone || r == RankNone {
		return 0
	}
	return int(that.Pools[p-1][r-1])
}

// InProgress reports whether moves may still be made.
func (that *Board) InProgress() bool {
	return that.Status == StatusInProgress
}

// Apply validates the move, mutates the board and returns the undo record.
// On any error the board is unchanged.
func (that *Board) Apply(move Move) (HistoryEntry, error) {
	if !that.InProgress() {
		return HistoryEntry{}, apperror.ErrGameOver
	}

	if !move.Cell.Valid() {
		return HistoryEntry{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move.Cell)
	}

	if move.Rank < Noble || move.Rank > Mystic {
		return HistoryEntry{}, fmt.Errorf("%w: rank %d", apperror.ErrInvalidRank, move.Rank)
	}

	if move.Player != that.Turn {
		return HistoryEntry{}, apperror.ErrNotYourTurn
	}

	if that.Remaining(move.Player, move.Rank) == 0 {
		return HistoryEntry{}, fmt.Errorf("%w: %s", apperror.ErrNoTilesRemaining, move.Rank)
	}

	replaced := that.Cells[move.Cell]
	if !replaced.IsEmpty() && !move.Rank.Beats(replaced.Rank) {
		return HistoryEntry{}, fmt.Errorf("%w: %s on %s", apperror.ErrTargetTooStrong, replaced.Rank, move.Cell)
	}

	// A replaced tile is discarded; it returns to no pool.
	that.Cells[move.Cell] = Tile{Rank: move.Rank, Owner: move.Player}
	that.Pools[move.Player-1][move.Rank-1]--

	that.settleOutcome(move.Player)

	return HistoryEntry{
		Move:     move,
		Replaced: replaced,
		Status:   that.Status,
	}, nil
}

// Undo reverses a move previously applied to this board: cell content,
// pool count, player to move and terminal status are all restored.
func (that *Board) Undo(entry HistoryEntry) {
	move := entry.Move

	that.Cells[move.Cell] = entry.Replaced
	that.Pools[move.Player-1][move.Rank-1]++
	that.Turn = move.Player

	that.Status = StatusInProgress
	that.Winner = PlayerNone
	that.Loser = PlayerNone
}

// LegalMoves returns every move the player to move may make, ordered by
// cell index and then by rank. The order is part of the engine contract:
// the search relies on it for deterministic tie-breaking.
func (that *Board) LegalMoves() []Move {
	if !that.InProgress() {
		return nil
	}

	moves := make([]Move, 0, CellCount*RankCount)
	for c := Cell(0); c < CellCount; c++ {
		target := that.Cells[c]
		for r := Noble; r <= Mystic; r++ {
			if that.Remaining(that.Turn, r) == 0 {
				continue
			}
			if !target.IsEmpty() && !r.Beats(target.Rank) {
				continue
			}
			moves = append(moves, Move{Cell: c, Rank: r, Player: that.Turn})
		}
	}

	return moves
}

// settleOutcome inspects all 8 lines after a move by mover. A same-rank
// line wins for the mover; it takes priority over a mixed noble-knight-mystic
// line, which loses for the mover. With neither, the game continues unless
// no further move is possible.
func (that *Board) settleOutcome(mover Player) {
	mixed := false
	for _, line := range Lines {
		a, b, c := that.Cells[line[0]], that.Cells[line[1]], that.Cells[line[2]]
		if a.IsEmpty() || b.IsEmpty() || c.IsEmpty() {
			continue
		}
		if a.Rank == b.Rank && b.Rank == c.Rank {
			that.Status = StatusWin
			that.Winner = mover
			return
		}
		if a.Rank != b.Rank && b.Rank != c.Rank && a.Rank != c.Rank {
			mixed = true
		}
	}

	if mixed {
		that.Status = StatusLoss
		that.Loser = mover
		return
	}

	full := true
	for _, cell := range that.Cells {
		if cell.IsEmpty() {
			full = false
			break
		}
	}

	that.Turn = mover.Opponent()
	if full || len(that.LegalMoves()) == 0 {
		that.Status = StatusDraw
	}
}

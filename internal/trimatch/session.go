package trimatch

import (
	"fmt"

	"github.com/trimatchhq/trimatch-backend/internal/apperror"
)

// Search depth bounds accepted by a session.
const (
	MinDepth = 1
	MaxDepth = 10

	DefaultDepth = 4
)

// Session owns one game: the board, the move history and the search depth
// used for hints and engine replies. Sessions are independent of each other;
// nothing outlives a session.
type Session struct {
	Board   *Board         `json:"board"`
	Entries []HistoryEntry `json:"history"`
	Depth   int            `json:"depth"`
}

// NewSession starts a fresh game with the given side to move. A depth
// outside the valid range falls back to the default.
func NewSession(starting Player, depth int) *Session {
	if depth < MinDepth || depth > MaxDepth {
		depth = DefaultDepth
	}
	return &Session{
		Board: NewBoard(starting),
		Depth: depth,
	}
}

// ApplyMove validates and applies the move, recording it in the history.
func (that *Session) ApplyMove(move Move) (HistoryEntry, error) {
	entry, err := that.Board.Apply(move)
	if err != nil {
		return HistoryEntry{}, fmt.Errorf("apply %s: %w", move, err)
	}

	that.Entries = append(that.Entries, entry)
	return entry, nil
}

// Undo takes back the last n moves. With fewer than n moves in the history
// it fails and removes nothing; the front ends use n=2 to retract both the
// human move and the engine reply.
func (that *Session) Undo(n int) error {
	if n < 1 || len(that.Entries) < n {
		return apperror.ErrNothingToUndo
	}

	for i := 0; i < n; i++ {
		last := that.Entries[len(that.Entries)-1]
		that.Board.Undo(last)
		that.Entries = that.Entries[:len(that.Entries)-1]
	}

	return nil
}

// SetDepth changes the search depth for subsequent hints and engine replies.
// Out-of-range values are rejected and the current depth is kept.
func (that *Session) SetDepth(depth int) error {
	if depth < MinDepth || depth > MaxDepth {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidDepth, depth)
	}
	that.Depth = depth
	return nil
}

// History returns the applied moves in order, oldest first.
func (that *Session) History() []HistoryEntry {
	return append([]HistoryEntry(nil), that.Entries...)
}

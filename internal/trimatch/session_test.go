package trimatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trimatchhq/trimatch-backend/internal/apperror"
)

func TestNewSession(t *testing.T) {
	t.Run("Starts a fresh game at the requested depth", func(t *testing.T) {
		session := NewSession(PlayerTwo, 6)

		assert.Equal(t, PlayerTwo, session.Board.Turn)
		assert.Equal(t, 6, session.Depth)
		assert.Empty(t, session.History())
	})

	t.Run("Falls back to the default depth when out of range", func(t *testing.T) {
		assert.Equal(t, DefaultDepth, NewSession(PlayerOne, 0).Depth)
		assert.Equal(t, DefaultDepth, NewSession(PlayerOne, 99).Depth)
	})
}

func TestSession_ApplyMove(t *testing.T) {
	t.Run("Records each applied move with its resulting status", func(t *testing.T) {
		// Given: a session heading into a mixed-triad loss
		session := NewSession(PlayerOne, 2)

		moves := []Move{
			{Cell: 6, Rank: Noble, Player: PlayerOne},
			{Cell: 7, Rank: Knight, Player: PlayerTwo},
			{Cell: 8, Rank: Mystic, Player: PlayerOne},
		}
		for _, m := range moves {
			_, err := session.ApplyMove(m)
			require.NoError(t, err)
		}

		// Then: the history lists the moves in order and the final entry
		// carries the loss the third move produced
		history := session.History()
		require.Len(t, history, 3)
		assert.Equal(t, moves[0], history[0].Move)
		assert.Equal(t, StatusInProgress, history[0].Status)
		assert.Equal(t, StatusLoss, history[2].Status)
	})

	t.Run("An illegal move leaves the history untouched", func(t *testing.T) {
		session := NewSession(PlayerOne, 2)

		_, err := session.ApplyMove(Move{Cell: 0, Rank: Noble, Player: PlayerTwo})

		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Empty(t, session.History())
	})
}

func TestSession_Undo(t *testing.T) {
	t.Run("Undo(2) restores the state before both moves", func(t *testing.T) {
		// Given: a session with two applied moves
		session := NewSession(PlayerOne, 2)
		before := *session.Board

		_, err := session.ApplyMove(Move{Cell: 4, Rank: Mystic, Player: PlayerOne})
		require.NoError(t, err)
		_, err = session.ApplyMove(Move{Cell: 0, Rank: Knight, Player: PlayerTwo})
		require.NoError(t, err)

		// When: both moves are taken back
		require.NoError(t, session.Undo(2))

		// Then: the board matches the pre-move snapshot and history is empty
		assert.Equal(t, before, *session.Board)
		assert.Empty(t, session.History())
	})

	t.Run("Undo(2) with a single move fails and keeps it intact", func(t *testing.T) {
		session := NewSession(PlayerOne, 2)
		_, err := session.ApplyMove(Move{Cell: 4, Rank: Mystic, Player: PlayerOne})
		require.NoError(t, err)

		err = session.Undo(2)

		assert.ErrorIs(t, err, apperror.ErrNothingToUndo)
		assert.Len(t, session.History(), 1)
		assert.Equal(t, Tile{Rank: Mystic, Owner: PlayerOne}, session.Board.CellAt(4))
	})

	t.Run("Undoing an empty history fails", func(t *testing.T) {
		session := NewSession(PlayerOne, 2)

		assert.ErrorIs(t, session.Undo(1), apperror.ErrNothingToUndo)
	})

	t.Run("Undo reopens a finished game", func(t *testing.T) {
		// Given: a game ended by a same-rank diagonal
		session := NewSession(PlayerOne, 2)
		script := []Move{
			{Cell: 6, Rank: Mystic, Player: PlayerOne},
			{Cell: 0, Rank: Noble, Player: PlayerTwo},
			{Cell: 4, Rank: Mystic, Player: PlayerOne},
			{Cell: 1, Rank: Noble, Player: PlayerTwo},
			{Cell: 2, Rank: Mystic, Player: PlayerOne},
		}
		for _, m := range script {
			_, err := session.ApplyMove(m)
			require.NoError(t, err)
		}
		require.Equal(t, StatusWin, session.Board.Status)

		// When: the winning move is undone
		require.NoError(t, session.Undo(1))

		// Then: play can continue
		assert.Equal(t, StatusInProgress, session.Board.Status)
		assert.Equal(t, PlayerOne, session.Board.Turn)
	})
}

func TestSession_SetDepth(t *testing.T) {
	t.Run("Accepts the documented 1-10 range", func(t *testing.T) {
		session := NewSession(PlayerOne, 2)

		require.NoError(t, session.SetDepth(10))
		assert.Equal(t, 10, session.Depth)
	})

	t.Run("Rejects out-of-range depths and keeps the current one", func(t *testing.T) {
		session := NewSession(PlayerOne, 3)

		assert.ErrorIs(t, session.SetDepth(0), apperror.ErrInvalidDepth)
		assert.ErrorIs(t, session.SetDepth(11), apperror.ErrInvalidDepth)
		assert.Equal(t, 3, session.Depth)
	})
}

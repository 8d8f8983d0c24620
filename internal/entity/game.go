package entity

import (
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

// Game is one human-vs-engine session: the engine state plus the identity
// the transports and the repository know it by. The human always plays
// side two; either side may move first.
type Game struct {
	ID        string            `json:"id"`
	HumanSide trimatch.Player   `json:"human_side"`
	Session   *trimatch.Session `json:"session"`
}

// NewGame starts a fresh game with the given side to move first.
func NewGame(id string, starting trimatch.Player, depth int) *Game {
	return &Game{
		ID:        id,
		HumanSide: trimatch.PlayerTwo,
		Session:   trimatch.NewSession(starting, depth),
	}
}

// EngineSide returns the side the engine plays.
func (that *Game) EngineSide() trimatch.Player {
	return that.HumanSide.Opponent()
}

// IsEngineTurn reports whether the engine should reply next.
func (that *Game) IsEngineTurn() bool {
	return that.Session.Board.InProgress() && that.Session.Board.Turn == that.EngineSide()
}

// IsFinished reports whether the game reached a terminal status.
func (that *Game) IsFinished() bool {
	return !that.Session.Board.InProgress()
}

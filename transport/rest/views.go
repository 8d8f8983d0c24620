package rest

import (
	"github.com/trimatchhq/trimatch-backend/internal/entity"
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

// GameView is the wire shape of a game. Cells render as rank letter plus
// owner digit ("M1"), empty cells as "".
type GameView struct {
	ID      string                    `json:"id"`
	Board   [9]string                 `json:"board"`
	Turn    string                    `json:"turn"`
	Status  string                    `json:"status"`
	Winner  string                    `json:"winner,omitempty"`
	Loser   string                    `json:"loser,omitempty"`
	Pools   map[string]map[string]int `json:"pools"`
	Depth   int                       `json:"depth"`
	History []MoveView                `json:"history"`
}

type MoveView struct {
	Move   string `json:"move"`
	Player string `json:"player"`
	Status string `json:"status"`
}

type HintView struct {
	Move string `json:"move"`
	Cell string `json:"cell"`
	Rank string `json:"rank"`
}

func newGameView(game *entity.Game) GameView {
	board := game.Session.Board

	view := GameView{
		ID:      game.ID,
		Turn:    board.Turn.String(),
		Status:  string(board.Status),
		Depth:   game.Session.Depth,
		Pools:   make(map[string]map[string]int, 2),
		History: newHistoryView(game.Session.History()),
	}

	for c := trimatch.Cell(0); c < trimatch.CellCount; c++ {
		view.Board[c] = board.CellAt(c).Label()
	}

	for _, p := range []trimatch.Player{trimatch.PlayerOne, trimatch.PlayerTwo} {
		counts := make(map[string]int, trimatch.RankCount)
		for r := trimatch.Noble; r <= trimatch.Mystic; r++ {
			counts[r.Letter()] = board.Remaining(p, r)
		}
		view.Pools[p.String()] = counts
	}

	if board.Winner != trimatch.PlayerNone {
		view.Winner = board.Winner.String()
	}
	if board.Loser != trimatch.PlayerNone {
		view.Loser = board.Loser.String()
	}

	return view
}

func newHistoryView(entries []trimatch.HistoryEntry) []MoveView {
	views := make([]MoveView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, MoveView{
			Move:   entry.Move.String(),
			Player: entry.Move.Player.String(),
			Status: string(entry.Status),
		})
	}
	return views
}

func newHintView(move trimatch.Move) HintView {
	return HintView{
		Move: move.String(),
		Cell: move.Cell.String(),
		Rank: move.Rank.Letter(),
	}
}

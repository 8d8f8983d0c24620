package websocket

import (
	"context"

	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

func (that *Server) handleNewGame(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	engineStarts := payload.Starting == "engine"

	game, err := that.manager.CreateGame(ctx, engineStarts)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleState(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	game, err := that.manager.GetGame(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleMove(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	cell, err := trimatch.ParseCell(payload.Cell)
	if err != nil {
		return nil, err
	}

	rank, err := trimatch.ParseRank(payload.Rank)
	if err != nil {
		return nil, err
	}

	game, err := that.manager.MakeMove(ctx, payload.GameID, cell, rank)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleHint(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	move, err := that.manager.Hint(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Hint: move.String()}, nil
}

func (that *Server) handleUndo(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	count := payload.Count
	if count == 0 {
		count = 2
	}

	game, err := that.manager.Undo(ctx, payload.GameID, count)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleHistory(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	entries, err := that.manager.History(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	moves := make([]string, 0, len(entries))
	for _, entry := range entries {
		moves = append(moves, entry.Move.String())
	}

	return &ResponsePayload{History: moves}, nil
}

func (that *Server) handleDifficulty(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error) {
	if payload.GameID == "" {
		return nil, errMissingGameID
	}

	game, err := that.manager.SetDifficulty(ctx, payload.GameID, payload.Depth)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

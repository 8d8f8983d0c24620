package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trimatchhq/trimatch-backend/internal/entity"
	"github.com/trimatchhq/trimatch-backend/internal/solver"
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives human-vs-engine games: it validates and applies the
// human's moves, lets the engine reply at the session's search depth, and
// keeps the session store up to date.
type GameManager struct {
	logger *slog.Logger
	games  gameRepo

	defaultDepth int
}

func NewGameManager(logger *slog.Logger, games gameRepo, defaultDepth int) *GameManager {
	return &GameManager{
		logger: logger,

		games:        games,
		defaultDepth: defaultDepth,
	}
}

// CreateGame starts a new game. When the engine has the first move it plays
// it before the game is handed back.
func (that *GameManager) CreateGame(ctx context.Context, engineStarts bool) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	starting := trimatch.PlayerTwo
	if engineStarts {
		starting = trimatch.PlayerOne
	}

	game := entity.NewGame(uuid.NewString(), starting, that.defaultDepth)

	if game.IsEngineTurn() {
		if err := that.engineReply(game); err != nil {
			return nil, fmt.Errorf("failed to make opening engine move: %w", err)
		}
	}

	if err := that.games.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to store game: %w", err)
	}

	log.Info("game created", "game", game.ID, "starting", starting.String(), "depth", game.Session.Depth)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeMove applies a human move and, if the game goes on, the engine reply.
func (that *GameManager) MakeMove(ctx context.Context, id string, cell trimatch.Cell, rank trimatch.Rank) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "game", id)

	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	move := trimatch.Move{Cell: cell, Rank: rank, Player: game.HumanSide}
	if _, err = game.Session.ApplyMove(move); err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	if game.IsEngineTurn() {
		if err = that.engineReply(game); err != nil {
			return nil, fmt.Errorf("engine failed to reply: %w", err)
		}
	}

	if err = that.games.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Session.Board.Status)
	}

	return game, nil
}

// Hint computes the strongest move for the side to move without applying it.
// It runs the same search the engine plays with.
func (that *GameManager) Hint(ctx context.Context, id string) (trimatch.Move, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return trimatch.Move{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	move, err := solver.BestMove(game.Session.Board, game.Session.Depth)
	if err != nil {
		return trimatch.Move{}, fmt.Errorf("failed to compute hint: %w", err)
	}

	return move, nil
}

// Undo takes back the last count moves; the front ends pass 2 to retract
// the human's move together with the engine's reply.
func (that *GameManager) Undo(ctx context.Context, id string, count int) (*entity.Game, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.Session.Undo(count); err != nil {
		return nil, fmt.Errorf("failed to undo: %w", err)
	}

	if err = that.games.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// SetDifficulty changes the session's search depth within the 1-10 range.
func (that *GameManager) SetDifficulty(ctx context.Context, id string, depth int) (*entity.Game, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.Session.SetDepth(depth); err != nil {
		return nil, fmt.Errorf("failed to set difficulty: %w", err)
	}

	if err = that.games.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// History returns the game's applied moves in order.
func (that *GameManager) History(ctx context.Context, id string) ([]trimatch.HistoryEntry, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game.Session.History(), nil
}

// DeleteGame drops an abandoned or finished game from the store.
func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.games.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	return nil
}

func (that *GameManager) engineReply(game *entity.Game) error {
	move, err := solver.BestMove(game.Session.Board, game.Session.Depth)
	if err != nil {
		return fmt.Errorf("failed to pick engine move: %w", err)
	}

	if _, err = game.Session.ApplyMove(move); err != nil {
		return fmt.Errorf("failed to apply engine move %s: %w", move, err)
	}

	return nil
}

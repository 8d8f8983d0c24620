package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/trimatchhq/trimatch-backend/internal/apperror"
	"github.com/trimatchhq/trimatch-backend/internal/entity"
	"github.com/trimatchhq/trimatch-backend/internal/repository"
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
)

type gameManager interface {
	CreateGame(ctx context.Context, engineStarts bool) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeMove(ctx context.Context, id string, cell trimatch.Cell, rank trimatch.Rank) (*entity.Game, error)
	Hint(ctx context.Context, id string) (trimatch.Move, error)
	Undo(ctx context.Context, id string, count int) (*entity.Game, error)
	SetDifficulty(ctx context.Context, id string, depth int) (*entity.Game, error)
	History(ctx context.Context, id string) ([]trimatch.HistoryEntry, error)
	DeleteGame(ctx context.Context, id string) error
}

type handlers struct {
	logger  *slog.Logger
	manager gameManager
}

type createGameRequest struct {
	// Starting is "engine" or "human"; the human starts by default.
	Starting string `json:"starting,omitempty"`
}

type moveRequest struct {
	Cell string `json:"cell"`
	Rank string `json:"rank"`
}

type undoRequest struct {
	Count int `json:"count,omitempty"`
}

type difficultyRequest struct {
	Depth int `json:"depth"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	}

	game, err := that.manager.CreateGame(r.Context(), req.Starting == "engine")
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newGameView(game))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.manager.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeFailure(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	cell, err := trimatch.ParseCell(req.Cell)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	rank, err := trimatch.ParseRank(req.Rank)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	game, err := that.manager.MakeMove(r.Context(), chi.URLParam(r, "id"), cell, rank)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *handlers) undo(w http.ResponseWriter, r *http.Request) {
	req := undoRequest{Count: 2}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
	}

	game, err := that.manager.Undo(r.Context(), chi.URLParam(r, "id"), req.Count)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameView(game))
}

func (that *handlers) hint(w http.ResponseWriter, r *http.Request) {
	move, err := that.manager.Hint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newHintView(move))
}

func (that *handlers) history(w http.ResponseWriter, r *http.Request) {
	entries, err := that.manager.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newHistoryView(entries))
}

func (that *handlers) setDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	game, err := that.manager.SetDifficulty(r.Context(), chi.URLParam(r, "id"), req.Depth)
	if err != nil {
		that.writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newGameView(game))
}

// writeFailure maps domain errors onto HTTP statuses. Illegal moves are
// conflicts with the game state, malformed references are bad requests.
func (that *handlers) writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidRank),
		errors.Is(err, apperror.ErrInvalidDepth):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoTilesRemaining),
		errors.Is(err, apperror.ErrTargetTooStrong),
		errors.Is(err, apperror.ErrGameOver),
		errors.Is(err, apperror.ErrNothingToUndo):
		writeError(w, http.StatusConflict, err.Error())
	default:
		that.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

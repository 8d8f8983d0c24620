package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the game routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, manager gameManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	h := &handlers{logger: logger, manager: manager}

	r.Get("/ping", h.ping)
	r.Post("/games", h.createGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Delete("/", h.deleteGame)
		r.Post("/moves", h.makeMove)
		r.Post("/undo", h.undo)
		r.Get("/hint", h.hint)
		r.Get("/history", h.history)
		r.Put("/difficulty", h.setDifficulty)
	})

	return r
}

func Start(port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

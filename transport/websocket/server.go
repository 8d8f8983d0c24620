package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/trimatchhq/trimatch-backend/internal/entity"
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
}

type Server struct {
	logger  *slog.Logger
	manager gameManager

	upgrader websocket.Upgrader
	handlers map[string]func(ctx context.Context, payload *RequestPayload) (*ResponsePayload, error)
}

func New(logger *slog.Logger, manager gameManager) *Server {
	server := &Server{
		logger:  logger,
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	server.handlers = map[string]func(context.Context, *RequestPayload) (*ResponsePayload, error){
		"game:new":        server.handleNewGame,
		"game:state":      server.handleState,
		"game:move":       server.handleMove,
		"game:hint":       server.handleHint,
		"game:undo":       server.handleUndo,
		"game:history":    server.handleHistory,
		"game:difficulty": server.handleDifficulty,
	}

	return server
}

// Start - starts the WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr())

	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		if err = that.dispatch(ctx, conn, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, conn *websocket.Conn, message *Message) error {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.sendError(conn, message.Action, "unknown action")
	}

	var payload RequestPayload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return that.sendError(conn, message.Action, "malformed payload")
		}
	}

	response, err := handler(ctx, &payload)
	if err != nil {
		return that.sendError(conn, message.Action, err.Error())
	}

	return that.send(conn, message.Action, response)
}

func (that *Server) send(conn *websocket.Conn, action string, payload *ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, message string) error {
	return that.send(conn, action, &ResponsePayload{Error: message})
}

var errMissingGameID = errors.New("game_id is required")

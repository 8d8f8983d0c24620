package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trimatchhq/trimatch-backend/internal/repository"
	"github.com/trimatchhq/trimatch-backend/internal/trimatch"
	"github.com/trimatchhq/trimatch-backend/internal/usecase"
)

func newTestConnection(t *testing.T) *gorilla.Conn {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), 2)
	server := New(logger, manager)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.serveConnection(context.Background(), w, r)
	}))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")

	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func exchange(t *testing.T, conn *gorilla.Conn, action string, payload RequestPayload) ResponsePayload {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: raw}))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))
	assert.Equal(t, action, message.Action)

	var response ResponsePayload
	require.NoError(t, json.Unmarshal(message.Payload, &response))

	return response
}

func TestServer_Dispatch(t *testing.T) {
	t.Run("creates a game and plays a move", func(t *testing.T) {
		conn := newTestConnection(t)

		// Given: a fresh game with the human to move
		created := exchange(t, conn, "game:new", RequestPayload{Starting: "human"})
		require.Empty(t, created.Error)
		require.NotNil(t, created.Game)
		assert.True(t, created.Game.Session.Board.InProgress())

		// When: the human plays a knight at b2
		moved := exchange(t, conn, "game:move", RequestPayload{
			GameID: created.Game.ID,
			Cell:   "b2",
			Rank:   "k",
		})

		// Then: the move and the engine reply are both on the board
		require.Empty(t, moved.Error)
		require.NotNil(t, moved.Game)
		assert.Len(t, moved.Game.Session.History(), 2)
		assert.Equal(t, trimatch.Knight, moved.Game.Session.Board.Cells[4].Rank)
	})

	t.Run("returns a hint without applying it", func(t *testing.T) {
		conn := newTestConnection(t)

		created := exchange(t, conn, "game:new", RequestPayload{Starting: "human"})
		require.NotNil(t, created.Game)

		// When
		hinted := exchange(t, conn, "game:hint", RequestPayload{GameID: created.Game.ID})

		// Then
		require.Empty(t, hinted.Error)
		assert.NotEmpty(t, hinted.Hint)

		state := exchange(t, conn, "game:state", RequestPayload{GameID: created.Game.ID})
		require.NotNil(t, state.Game)
		assert.Empty(t, state.Game.Session.History())
	})

	t.Run("reports errors in the response payload", func(t *testing.T) {
		conn := newTestConnection(t)

		// When: moving in a game that does not exist
		moved := exchange(t, conn, "game:move", RequestPayload{
			GameID: "missing",
			Cell:   "a1",
			Rank:   "n",
		})

		// Then
		assert.NotEmpty(t, moved.Error)
		assert.Nil(t, moved.Game)
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		conn := newTestConnection(t)

		response := exchange(t, conn, "game:teleport", RequestPayload{})

		assert.Equal(t, "unknown action", response.Error)
	})
}

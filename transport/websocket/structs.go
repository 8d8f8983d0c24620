package websocket

import (
	"encoding/json"

	"github.com/trimatchhq/trimatch-backend/internal/entity"
)

// Message is one WebSocket exchange: an action name plus its payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload carries the client side of every action; unused fields
// stay empty.
type RequestPayload struct {
	GameID   string `json:"game_id,omitempty"`
	Starting string `json:"starting,omitempty"`
	Cell     string `json:"cell,omitempty"`
	Rank     string `json:"rank,omitempty"`
	Count    int    `json:"count,omitempty"`
	Depth    int    `json:"depth,omitempty"`
}

// ResponsePayload carries the server side: the updated game, a hint, the
// move history, or an error message.
type ResponsePayload struct {
	Game    *entity.Game `json:"game,omitempty"`
	Hint    string       `json:"hint,omitempty"`
	History []string     `json:"history,omitempty"`
	Error   string       `json:"error,omitempty"`
}

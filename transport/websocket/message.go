package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

const (
	ActionState           = "game:state"
	ActionMove            = "game:move"
	ActionNewGame         = "game:new"
	ActionResetScoreboard = "scoreboard:reset"

	// ActionUpdate is pushed to every client of a session after any saved change.
	ActionUpdate = "game:update"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Cell *int `json:"cell"`
}

type ResponsePayload struct {
	Snapshot *entity.Snapshot `json:"snapshot,omitempty"`
	Error    string           `json:"error,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

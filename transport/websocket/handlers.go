package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errMissingCell      = errors.New("payload must be {\"cell\": <0-8>}")
)

func (that *Server) handleState(ctx context.Context, sessionID string, _ *Message) (entity.Snapshot, error) {
	return that.sessions.Get(ctx, sessionID)
}

func (that *Server) handleMove(ctx context.Context, sessionID string, msg *Message) (entity.Snapshot, error) {
	var payload MovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Cell == nil {
		return entity.Snapshot{}, errMissingCell
	}

	snapshot, err := that.sessions.Move(ctx, sessionID, *payload.Cell)
	if err != nil {
		return snapshot, fmt.Errorf("failed to make move: %w", err)
	}

	return snapshot, nil
}

func (that *Server) handleNewGame(ctx context.Context, sessionID string, _ *Message) (entity.Snapshot, error) {
	return that.sessions.NewGame(ctx, sessionID)
}

func (that *Server) handleResetScoreboard(ctx context.Context, sessionID string, _ *Message) (entity.Snapshot, error) {
	return that.sessions.ResetScoreboard(ctx, sessionID)
}

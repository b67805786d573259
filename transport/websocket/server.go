package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

const writeTimeout = 10 * time.Second

type sessionUseCase interface {
	Get(ctx context.Context, id string) (entity.Snapshot, error)
	Move(ctx context.Context, id string, cell int) (entity.Snapshot, error)
	NewGame(ctx context.Context, id string) (entity.Snapshot, error)
	ResetScoreboard(ctx context.Context, id string) (entity.Snapshot, error)
}

type handlerFunc func(ctx context.Context, sessionID string, msg *Message) (entity.Snapshot, error)

type Server struct {
	logger   *slog.Logger
	sessions sessionUseCase
	broker   *Broker
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, sessions sessionUseCase, broker *Broker) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		broker:   broker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	server.handlers = map[string]handlerFunc{
		ActionState:           server.handleState,
		ActionMove:            server.handleMove,
		ActionNewGame:         server.handleNewGame,
		ActionResetScoreboard: server.handleResetScoreboard,
	}

	return server
}

// Routes - registers the upgrade endpoint on a router mounted at /sessions.
func (that *Server) Routes(r chi.Router) {
	r.Get("/{id}/ws", that.upgrade)
}

// upgrade - upgrades the connection to WebSocket once the session is known to exist.
func (that *Server) upgrade(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	log := that.logger.With("method", "upgrade", "sessionID", sessionID)

	if _, err := that.sessions.Get(r.Context(), sessionID); err != nil {
		if errors.Is(err, apperror.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		log.Error("failed to load session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	log.Info("WebSocket connection established")

	client := &client{conn: conn}
	defer client.close()

	updates := that.broker.Subscribe(sessionID)
	defer that.broker.Unsubscribe(sessionID, updates)

	done := make(chan struct{})
	defer close(done)

	go that.forward(client, updates, done)

	that.handleMessages(r.Context(), client, sessionID)
}

// forward - pushes broker updates to the client until done is closed.
func (that *Server) forward(c *client, updates <-chan entity.Snapshot, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case snapshot := <-updates:
			if err := c.send(ActionUpdate, ResponsePayload{Snapshot: &snapshot}); err != nil {
				that.logger.Debug("failed to push update", "error", err)
				return
			}
		}
	}
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, c *client, sessionID string) {
	log := that.logger.With("method", "handleMessages", "sessionID", sessionID)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Debug("failed to unmarshal message", "error", err)
			that.reply(c, "error", entity.Snapshot{}, errMalformedMessage)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.reply(c, message.Action, entity.Snapshot{}, errUnknownAction)
			continue
		}

		snapshot, err := handler(ctx, sessionID, &message)
		that.reply(c, message.Action, snapshot, err)
	}
}

func (that *Server) reply(c *client, action string, snapshot entity.Snapshot, err error) {
	payload := ResponsePayload{}
	if snapshot.SessionID != "" {
		payload.Snapshot = &snapshot
	}

	if err != nil {
		payload.Error = err.Error()
	}

	if sendErr := c.send(action, payload); sendErr != nil {
		that.logger.Debug("failed to send response", "action", action, "error", sendErr)
	}
}

// client serialises writes; gorilla connections allow a single concurrent writer.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (that *client) send(action string, payload ResponsePayload) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}

	return that.conn.WriteJSON(Response{Action: action, Payload: payload})
}

func (that *client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.conn.Close()
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

type sessionUseCase interface {
	Start(ctx context.Context) (entity.Snapshot, error)
	Get(ctx context.Context, id string) (entity.Snapshot, error)
	End(ctx context.Context, id string) error

	Move(ctx context.Context, id string, cell int) (entity.Snapshot, error)
	NewGame(ctx context.Context, id string) (entity.Snapshot, error)
	ResetScoreboard(ctx context.Context, id string) (entity.Snapshot, error)
}

type MoveRequest struct {
	Cell *int `json:"cell"`
}

type SessionHandlers struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

func NewSessionHandlers(logger *slog.Logger, sessions sessionUseCase) *SessionHandlers {
	return &SessionHandlers{
		logger:   logger,
		sessions: sessions,
	}
}

// Routes - registers the session endpoints on a router mounted at /sessions.
func (that *SessionHandlers) Routes(r chi.Router) {
	r.Post("/", that.start)
	r.Get("/{id}", that.get)
	r.Delete("/{id}", that.end)
	r.Post("/{id}/moves", that.move)
	r.Post("/{id}/new-game", that.newGame)
	r.Post("/{id}/reset-scoreboard", that.resetScoreboard)
}

func (that *SessionHandlers) start(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.Start(r.Context())
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

func (that *SessionHandlers) get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *SessionHandlers) end(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.End(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *SessionHandlers) move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := readJSON(r, &req); err != nil || req.Cell == nil {
		writeError(w, http.StatusBadRequest, "request body must be {\"cell\": <0-8>}")
		return
	}

	snapshot, err := that.sessions.Move(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *SessionHandlers) newGame(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.NewGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *SessionHandlers) resetScoreboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.sessions.ResetScoreboard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *SessionHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, status, "Internal Server Error")
		return
	}

	writeError(w, status, err.Error())
}

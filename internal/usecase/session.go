package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/tictactoe"
)

type SessionUseCase interface {
	Start(ctx context.Context) (entity.Snapshot, error)
	Get(ctx context.Context, id string) (entity.Snapshot, error)
	End(ctx context.Context, id string) error

	Move(ctx context.Context, id string, cell int) (entity.Snapshot, error)
	NewGame(ctx context.Context, id string) (entity.Snapshot, error)
	ResetScoreboard(ctx context.Context, id string) (entity.Snapshot, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// publisher - receives every saved snapshot, e.g. to push it to live clients.
type publisher interface {
	Publish(snapshot entity.Snapshot)
}

type sessionUseCase struct {
	logger     *slog.Logger
	repo       sessionRepo
	publishers []publisher

	locks *keyedMutex
	newID func() string
	now   func() time.Time
}

func NewSessionUseCase(logger *slog.Logger, repo sessionRepo, publishers ...publisher) SessionUseCase {
	return &sessionUseCase{
		logger:     logger.With("component", "session"),
		repo:       repo,
		publishers: publishers,
		locks:      newKeyedMutex(),
		newID:      uuid.NewString,
		now:        time.Now,
	}
}

func (that *sessionUseCase) Start(ctx context.Context) (entity.Snapshot, error) {
	session := entity.NewSession(that.newID())
	session.UpdatedAt = that.now().UTC()

	if err := that.repo.CreateOrUpdate(ctx, session); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session started", "sessionID", session.ID)

	return snapshotOf(session), nil
}

func (that *sessionUseCase) Get(ctx context.Context, id string) (entity.Snapshot, error) {
	session, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get session: %w", err)
	}

	return snapshotOf(session), nil
}

func (that *sessionUseCase) End(ctx context.Context, id string) error {
	unlock := that.locks.Lock(id)
	defer unlock()

	if err := that.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", id)

	return nil
}

func (that *sessionUseCase) Move(ctx context.Context, id string, cell int) (entity.Snapshot, error) {
	log := that.logger.With("method", "Move", "sessionID", id, "cell", cell)

	return that.update(ctx, id, func(engine *tictactoe.Engine) error {
		if err := engine.Move(cell); err != nil {
			log.Debug("move rejected", "error", err)
			return fmt.Errorf("failed to make move: %w", err)
		}

		if state := engine.State(); state.GameOver {
			log.Info("game over", "phase", state.Phase(), "scoreboard", engine.Scoreboard())
		}

		return nil
	})
}

func (that *sessionUseCase) NewGame(ctx context.Context, id string) (entity.Snapshot, error) {
	return that.update(ctx, id, func(engine *tictactoe.Engine) error {
		engine.NewGame()
		return nil
	})
}

func (that *sessionUseCase) ResetScoreboard(ctx context.Context, id string) (entity.Snapshot, error) {
	return that.update(ctx, id, func(engine *tictactoe.Engine) error {
		engine.ResetScoreboard()
		return nil
	})
}

// update - runs action against the stored session and saves the result.
// Actions on the same session never interleave.
func (that *sessionUseCase) update(ctx context.Context, id string, action func(engine *tictactoe.Engine) error) (entity.Snapshot, error) {
	unlock := that.locks.Lock(id)
	defer unlock()

	session, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get session: %w", err)
	}

	engine := tictactoe.RestoreEngine(session.Game, session.Scoreboard)

	changed := false
	engine.OnChange(func(entity.Snapshot) {
		changed = true
	})

	if err = action(engine); err != nil {
		return snapshotOf(session), err
	}

	if !changed {
		return snapshotOf(session), nil
	}

	session.Game = engine.State()
	session.Scoreboard = engine.Scoreboard()
	session.UpdatedAt = that.now().UTC()

	if err = that.repo.CreateOrUpdate(ctx, session); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to update session: %w", err)
	}

	snapshot := snapshotOf(session)
	for _, p := range that.publishers {
		p.Publish(snapshot)
	}

	return snapshot, nil
}

func snapshotOf(session *entity.Session) entity.Snapshot {
	snapshot := entity.NewSnapshot(session.Game, session.Scoreboard)
	snapshot.SessionID = session.ID

	return snapshot
}

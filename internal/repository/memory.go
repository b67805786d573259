package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
)

type memSession struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memEntry
}

type memEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// NewMemorySessionRepository - keeps sessions in process memory only, with the same
// expiry rule as the redis repository.
func NewMemorySessionRepository(ttl time.Duration) SessionRepository {
	return &memSession{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memEntry),
	}
}

func (that *memSession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry := memEntry{session: *session}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.sessions[session.ID] = entry

	return nil
}

func (that *memSession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.lookup(id)
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	session := entry.session

	return &session, nil
}

func (that *memSession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

// lookup - must be called with mu held. Expired entries are dropped on access.
func (that *memSession) lookup(id string) (memEntry, bool) {
	entry, ok := that.sessions[id]
	if !ok {
		return memEntry{}, false
	}

	if !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.sessions, id)
		return memEntry{}, false
	}

	return entry, true
}

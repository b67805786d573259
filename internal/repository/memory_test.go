package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Round trip", func(t *testing.T) {
		// Given: a stored session with a move and a tally
		repo := NewMemorySessionRepository(0)
		session := entity.NewSession("abc")
		session.Game.Board[4] = entity.PlayerX
		session.Scoreboard.O = 2

		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: reading it back
		stored, err := repo.GetByID(ctx, "abc")

		// Then: the same state comes back
		require.NoError(t, err)
		assert.Equal(t, session.Game, stored.Game)
		assert.Equal(t, session.Scoreboard, stored.Scoreboard)
	})

	t.Run("Stored value is a copy", func(t *testing.T) {
		// Given: a stored session
		repo := NewMemorySessionRepository(0)
		session := entity.NewSession("abc")
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		// When: the caller mutates its own value afterwards
		session.Scoreboard.X = 99

		// Then: the stored session is unaffected
		stored, err := repo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Scoreboard.X)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := NewMemorySessionRepository(0)

		stored, err := repo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, stored)
		assert.ErrorIs(t, repo.DeleteByID(ctx, "missing"), apperror.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewMemorySessionRepository(0)
		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewSession("abc")))

		require.NoError(t, repo.DeleteByID(ctx, "abc"))

		_, err := repo.GetByID(ctx, "abc")
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Expires after ttl", func(t *testing.T) {
		// Given: a repository with a controllable clock
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		repo := NewMemorySessionRepository(time.Minute).(*memSession)
		repo.now = func() time.Time { return now }

		require.NoError(t, repo.CreateOrUpdate(ctx, entity.NewSession("abc")))

		// When: just before the deadline
		now = now.Add(59 * time.Second)
		_, err := repo.GetByID(ctx, "abc")

		// Then: the session is still there
		require.NoError(t, err)

		// When: the deadline passes
		now = now.Add(time.Second)
		_, err = repo.GetByID(ctx, "abc")

		// Then: it is gone
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

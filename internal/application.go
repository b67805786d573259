package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/config"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/repository"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-scoreboard/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-scoreboard/transport/rest"
	"github.com/rocketscienceinc/tictactoe-scoreboard/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until ctx is canceled or the HTTP server fails.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	repo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	broker := websocket.NewBroker()
	sessions := usecase.NewSessionUseCase(logger, repo, broker)
	wsServer := websocket.New(logger, sessions, broker)
	httpServer := rest.New(logger, conf.HTTPPort, sessions, wsServer.Routes)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
		if err := httpServer.Run(); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Application context canceled, shutting down")

		return httpServer.Shutdown(context.WithoutCancel(groupCtx))
	})

	return group.Wait()
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageRedis:
		addr := conf.Redis.GetRedisAddr()
		if addr == "" {
			return nil, nil, ErrAddrNotFound
		}

		client, err := storage.NewRedis(ctx, addr)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(client, conf.SessionTTL), client.Close, nil
	default:
		return repository.NewMemorySessionRepository(conf.SessionTTL), func() error { return nil }, nil
	}
}

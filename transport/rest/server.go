package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

// New - builds the HTTP server. mount lets other transports attach routes under /sessions.
func New(logger *slog.Logger, port string, sessions sessionUseCase, mount ...func(r chi.Router)) *Server {
	log := logger.With("component", "http")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(log))
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	handlers := NewSessionHandlers(log, sessions)
	router.Route("/sessions", func(r chi.Router) {
		handlers.Routes(r)

		for _, fn := range mount {
			fn(r)
		}
	})

	return &Server{
		logger: log,
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

func (that *Server) Handler() http.Handler {
	return that.srv.Handler
}

// Run - serves until Shutdown is called.
func (that *Server) Run() error {
	listener, err := net.Listen("tcp", that.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", that.srv.Addr, err)
	}

	that.logger.Info("HTTP server listening", "addr", listener.Addr().String())

	if err = that.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

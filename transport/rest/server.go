package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - mounts the engine and game routes.
func NewRouter(handlers Handlers) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", handlers.PingHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/engine", func(r chi.Router) {
			r.Post("/move", handlers.SuggestMove)
			r.Post("/status", handlers.BoardStatus)
		})

		r.Post("/games", handlers.CreateGame)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetGame)
			r.Post("/turns", handlers.MakeTurn)
		})
	})

	return router
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, handler http.Handler) error {
	log := logger.With("component", "http_server")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

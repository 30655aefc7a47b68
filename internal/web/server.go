package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownGrace = 5 * time.Second

// Worker runs the http server, satisfying the service worker contract.
type Worker struct {
	addr    string
	handler http.Handler
}

func NewWorker(addr string, handler http.Handler) *Worker {
	return &Worker{
		addr:    addr,
		handler: handler,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    w.addr,
		Handler: w.handler,
	}

	// done signals that Start is returning, so the shutdown goroutine has
	// nothing left to stop.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Warn("shutting down http server", "error", err)
			}
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "listening for http", "address", w.addr)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http on %s: %w", w.addr, err)
	}
	return nil
}

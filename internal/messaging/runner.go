package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"UnrulyHuman/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Runner runs workers concurrently with a shared handler.
type Runner struct {
	logger  *slog.Logger
	workers []Worker
	handler MessageHandler
}

func NewRunner(l *slog.Logger, workers []Worker, handler MessageHandler) *Runner {
	return &Runner{
		logger:  l,
		workers: workers,
		handler: handler,
	}
}

// Start blocks until ctx is cancelled or any worker fails. Every worker is closed on exit.
func (r *Runner) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, w := range r.workers {
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Error("Worker panic recovered",
						slog.Int("worker_idx", i),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())))
					err = fmt.Errorf("worker %d panicked: %v", i, rec)
				}
				if closeErr := w.Close(); closeErr != nil {
					r.logger.Error("Failed to close worker", slog.Int("worker_idx", i), logger.Err(closeErr))
				}
			}()
			return w.Start(ctx, r.handler)
		})
	}

	return g.Wait()
}

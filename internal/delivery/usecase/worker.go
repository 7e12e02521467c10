package usecase

import (
	"context"
	"log/slog"
	"time"
)

// Worker runs the queue processor on a fixed interval.
type Worker struct {
	processor ProcessorUseCase
	interval  time.Duration
	logger    *slog.Logger
}

// NewWorker creates a worker around processor, which may be a decorated one.
func NewWorker(processor ProcessorUseCase, interval time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Start processes the queue once right away and then on every tick until ctx is
// done. A failed run is logged and the next tick tries again.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("starting delivery queue processor", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.processor.ProcessQueue(ctx); err != nil && ctx.Err() == nil {
			w.logger.Error("failed to process delivery queue", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			w.logger.Info("stopping delivery queue processor")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

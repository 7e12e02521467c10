package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	deliveryUseCase "github.com/allisson/sealedfields/internal/delivery/usecase"
)

// RunProcessQueue runs a single delivery queue pass and prints its counts.
// Suited to an external scheduler such as cron or a Kubernetes CronJob.
func RunProcessQueue(
	ctx context.Context,
	processor deliveryUseCase.ProcessorUseCase,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	stats, err := processor.ProcessQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to process delivery queue: %w", err)
	}

	if format == "json" {
		if err := writeJSON(writer, map[string]int{
			"claimed": stats.Claimed,
			"sent":    stats.Sent,
			"failed":  stats.Failed,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Claimed %d message(s): %d sent, %d failed\n", stats.Claimed, stats.Sent, stats.Failed)
	}

	logger.Info("delivery queue pass completed",
		slog.Int("claimed", stats.Claimed),
		slog.Int("sent", stats.Sent),
		slog.Int("failed", stats.Failed),
	)

	return nil
}

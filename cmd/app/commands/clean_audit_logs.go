package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	auditUseCase "github.com/allisson/sealedfields/internal/audit/usecase"
)

type auditCleanupResult struct {
	Count  int64 `json:"count"`
	Days   int   `json:"days"`
	DryRun bool  `json:"dry_run"`
}

// RunCleanAuditLogs purges audit entries older than days. With dryRun it only
// counts them.
func RunCleanAuditLogs(
	ctx context.Context,
	auditLogUseCase auditUseCase.AuditLogUseCase,
	logger *slog.Logger,
	writer io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days cannot be negative, got: %d", days)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	count, err := auditLogUseCase.DeleteOlderThan(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete audit logs: %w", err)
	}
	result := auditCleanupResult{Count: count, Days: days, DryRun: dryRun}

	logger.Info("audit log cleanup finished",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	if format == "json" {
		return writeJSON(writer, result)
	}

	verb := "Deleted"
	if dryRun {
		verb = "Would delete"
	}
	_, err = fmt.Fprintf(writer, "%s %d audit log(s) older than %d day(s)\n", verb, result.Count, result.Days)
	return err
}

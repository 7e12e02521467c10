package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	validation "github.com/jellydator/validation"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
	recordUseCase "github.com/allisson/sealedfields/internal/record/usecase"
	customValidation "github.com/allisson/sealedfields/internal/validation"
)

// RunEncryptRecord encrypts the tagged fields of one record coordinate.
// Used to backfill records saved before a field was tagged. Values that are
// already placeholders are left alone, so running it twice is harmless.
func RunEncryptRecord(
	ctx context.Context,
	recordUseCase recordUseCase.RecordUseCase,
	logger *slog.Logger,
	writer io.Writer,
	projectID int64,
	record string,
	eventID int64,
	instance int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if projectID < 1 {
		return fmt.Errorf("project-id must be a positive number, got: %d", projectID)
	}
	if err := validation.Validate(record, validation.Required, customValidation.RecordID); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	if eventID < 1 {
		return fmt.Errorf("event-id must be a positive number, got: %d", eventID)
	}

	coord := recordDomain.NewCoordinate(projectID, record, eventID, instance)

	result, err := recordUseCase.EncryptCoordinate(ctx, coord)
	if err != nil {
		return fmt.Errorf("failed to encrypt record: %w", err)
	}

	if format == "json" {
		encrypted := result.Encrypted
		if encrypted == nil {
			encrypted = []string{}
		}
		if err := writeJSON(writer, map[string]any{
			"project_id":    coord.ProjectID,
			"record":        coord.Record,
			"event_id":      coord.EventID,
			"instance":      coord.Instance,
			"skipped":       result.Skipped,
			"encrypted":     encrypted,
			"rows_affected": result.RowsAffected,
		}); err != nil {
			return err
		}
	} else {
		switch {
		case result.Skipped:
			_, _ = fmt.Fprintf(writer, "Skipped %s: another pass is in flight\n", coord)
		case !result.Changed():
			_, _ = fmt.Fprintf(writer, "Nothing to encrypt for %s\n", coord)
		default:
			_, _ = fmt.Fprintf(writer, "Encrypted %d field(s) of %s: %s\n",
				len(result.Encrypted), coord, strings.Join(result.Encrypted, ", "))
		}
	}

	logger.Info("record encryption completed",
		slog.String("coordinate", coord.String()),
		slog.Int("fields", len(result.Encrypted)),
		slog.Bool("skipped", result.Skipped),
	)

	return nil
}

// Package usecase implements the audit log sink.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/sealedfields/internal/audit/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// AuditLogRepository defines audit log persistence.
type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *auditDomain.AuditLog) error
	List(ctx context.Context, offset, limit int) ([]*auditDomain.AuditLog, error)
	DeleteOlderThan(ctx context.Context, olderThan time.Time, dryRun bool) (int64, error)
}

// AuditLogUseCase defines the audit log operations.
type AuditLogUseCase interface {
	// Record stores one entry. Callers never pass field values or key material.
	Record(ctx context.Context, category, message string) error
	List(ctx context.Context, offset, limit int) ([]*auditDomain.AuditLog, error)
	// DeleteOlderThan removes entries older than days, or counts them when dryRun is set.
	DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error)
}

type auditLogUseCase struct {
	auditLogRepo AuditLogRepository
	now          func() time.Time
}

// NewAuditLogUseCase creates a new AuditLogUseCase.
func NewAuditLogUseCase(auditLogRepo AuditLogRepository) AuditLogUseCase {
	return &auditLogUseCase{
		auditLogRepo: auditLogRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (a *auditLogUseCase) Record(ctx context.Context, category, message string) error {
	if category == "" {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "audit category is required")
	}

	auditLog := &auditDomain.AuditLog{
		ID:        uuid.Must(uuid.NewV7()),
		Category:  category,
		Message:   message,
		CreatedAt: a.now(),
	}

	if err := a.auditLogRepo.Create(ctx, auditLog); err != nil {
		return apperrors.Wrap(err, "failed to record audit log")
	}
	return nil
}

func (a *auditLogUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.AuditLog, error) {
	auditLogs, err := a.auditLogRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list audit logs")
	}
	return auditLogs, nil
}

func (a *auditLogUseCase) DeleteOlderThan(ctx context.Context, days int, dryRun bool) (int64, error) {
	if days < 0 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("days must be non-negative, got %d", days))
	}

	olderThan := a.now().AddDate(0, 0, -days)
	count, err := a.auditLogRepo.DeleteOlderThan(ctx, olderThan, dryRun)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete audit logs")
	}
	return count, nil
}

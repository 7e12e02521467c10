// Package repository implements audit log persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"time"

	auditDomain "github.com/allisson/sealedfields/internal/audit/domain"
	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// PostgreSQLAuditLogRepository implements AuditLog persistence for PostgreSQL.
type PostgreSQLAuditLogRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuditLogRepository creates a new PostgreSQL AuditLog repository.
func NewPostgreSQLAuditLogRepository(db *sql.DB) *PostgreSQLAuditLogRepository {
	return &PostgreSQLAuditLogRepository{db: db}
}

// Create inserts a new AuditLog.
func (p *PostgreSQLAuditLogRepository) Create(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO audit_logs (id, category, message, created_at) VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(ctx, query, auditLog.ID, auditLog.Category, auditLog.Message, auditLog.CreatedAt)
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrStorage, "failed to create audit log")
	}
	return nil
}

// List retrieves audit logs newest first.
func (p *PostgreSQLAuditLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.AuditLog, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, category, message, created_at
			  FROM audit_logs
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to list audit logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	auditLogs := make([]*auditDomain.AuditLog, 0)
	for rows.Next() {
		var auditLog auditDomain.AuditLog
		if err := rows.Scan(&auditLog.ID, &auditLog.Category, &auditLog.Message, &auditLog.CreatedAt); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan audit log")
		}
		auditLogs = append(auditLogs, &auditLog)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate audit logs")
	}

	return auditLogs, nil
}

// DeleteOlderThan removes entries created before olderThan, or only counts them when dryRun is set.
func (p *PostgreSQLAuditLogRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	if dryRun {
		var count int64
		err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs WHERE created_at < $1`, olderThan).
			Scan(&count)
		if err != nil {
			return 0, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to count audit logs")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < $1`, olderThan)
	if err != nil {
		return 0, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to delete audit logs")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to get rows affected")
	}
	return count, nil
}

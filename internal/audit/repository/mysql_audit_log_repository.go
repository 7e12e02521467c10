package repository

import (
	"context"
	"database/sql"
	"time"

	auditDomain "github.com/allisson/sealedfields/internal/audit/domain"
	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// MySQLAuditLogRepository implements AuditLog persistence for MySQL.
// Uses BINARY(16) for UUID storage.
type MySQLAuditLogRepository struct {
	db *sql.DB
}

// NewMySQLAuditLogRepository creates a new MySQL AuditLog repository.
func NewMySQLAuditLogRepository(db *sql.DB) *MySQLAuditLogRepository {
	return &MySQLAuditLogRepository{db: db}
}

// Create inserts a new AuditLog.
func (m *MySQLAuditLogRepository) Create(ctx context.Context, auditLog *auditDomain.AuditLog) error {
	querier := database.GetTx(ctx, m.db)

	id, err := auditLog.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal audit log id")
	}

	query := `INSERT INTO audit_logs (id, category, message, created_at) VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, auditLog.Category, auditLog.Message, auditLog.CreatedAt)
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrStorage, "failed to create audit log")
	}
	return nil
}

// List retrieves audit logs newest first.
func (m *MySQLAuditLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*auditDomain.AuditLog, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, category, message, created_at
			  FROM audit_logs
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

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
		var idBinary []byte
		if err := rows.Scan(&idBinary, &auditLog.Category, &auditLog.Message, &auditLog.CreatedAt); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan audit log")
		}
		if err := auditLog.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal audit log id")
		}
		auditLogs = append(auditLogs, &auditLog)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate audit logs")
	}

	return auditLogs, nil
}

// DeleteOlderThan removes entries created before olderThan, or only counts them when dryRun is set.
func (m *MySQLAuditLogRepository) DeleteOlderThan(
	ctx context.Context,
	olderThan time.Time,
	dryRun bool,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	if dryRun {
		var count int64
		err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs WHERE created_at < ?`, olderThan).
			Scan(&count)
		if err != nil {
			return 0, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to count audit logs")
		}
		return count, nil
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM audit_logs WHERE created_at < ?`, olderThan)
	if err != nil {
		return 0, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to delete audit logs")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to get rows affected")
	}
	return count, nil
}

package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/allisson/sealedfields/internal/database"
	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// MySQLQueueRepository implements delivery queue persistence for MySQL.
// Uses BINARY(16) for UUID storage.
type MySQLQueueRepository struct {
	db *sql.DB
}

// NewMySQLQueueRepository creates a new MySQL queue repository.
func NewMySQLQueueRepository(db *sql.DB) *MySQLQueueRepository {
	return &MySQLQueueRepository{db: db}
}

// ClaimDue locks due entries with FOR UPDATE SKIP LOCKED (MySQL 8.0+) and stamps
// claimed_until on them. Must run inside a transaction.
func (m *MySQLQueueRepository) ClaimDue(
	ctx context.Context,
	now, claimedUntil time.Time,
	limit int,
) ([]*deliveryDomain.QueueEntry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + queueColumns + `
			  FROM delivery_queue
			  WHERE status IN ('QUEUED', 'FAILED_RETRYABLE')
			    AND scheduled_at <= ?
			    AND recipient LIKE ?
			    AND (claimed_until IS NULL OR claimed_until < ?)
			  ORDER BY scheduled_at, id
			  LIMIT ?
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, now, placeholderPattern, now, limit)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to select due queue entries")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*deliveryDomain.QueueEntry, 0)
	ids := make([]any, 0)
	for rows.Next() {
		var row queueRow
		var idBinary []byte
		if err := rows.Scan(row.targets(&idBinary)...); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan queue entry")
		}
		entry := row.toEntry()
		if err := entry.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal queue entry id")
		}
		entries = append(entries, entry)
		ids = append(ids, idBinary)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate queue entries")
	}

	if len(entries) == 0 {
		return entries, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := append([]any{claimedUntil}, ids...)
	_, err = querier.ExecContext(ctx,
		`UPDATE delivery_queue SET claimed_until = ? WHERE id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to claim queue entries")
	}

	for _, entry := range entries {
		until := claimedUntil
		entry.ClaimedUntil = &until
	}
	return entries, nil
}

// Update persists the delivery fields of entry.
func (m *MySQLQueueRepository) Update(ctx context.Context, entry *deliveryDomain.QueueEntry) error {
	querier := database.GetTx(ctx, m.db)

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal queue entry id")
	}

	query := `UPDATE delivery_queue
			  SET status = ?, failure_reason = ?, sent_at = ?, attempts = ?, claimed_until = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, append(updateArgs(entry), id)...)
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrStorage, "failed to update queue entry")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrStorage, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return deliveryDomain.ErrQueueEntryNotFound
	}
	return nil
}

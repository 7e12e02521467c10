package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/allisson/sealedfields/internal/database"
	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// PostgreSQLQueueRepository implements delivery queue persistence for PostgreSQL.
type PostgreSQLQueueRepository struct {
	db *sql.DB
}

// NewPostgreSQLQueueRepository creates a new PostgreSQL queue repository.
func NewPostgreSQLQueueRepository(db *sql.DB) *PostgreSQLQueueRepository {
	return &PostgreSQLQueueRepository{db: db}
}

// ClaimDue locks due entries with FOR UPDATE SKIP LOCKED so concurrent processors
// never claim the same row, then stamps claimed_until on them. Must run inside
// a transaction for the lock to hold until the stamp commits.
func (p *PostgreSQLQueueRepository) ClaimDue(
	ctx context.Context,
	now, claimedUntil time.Time,
	limit int,
) ([]*deliveryDomain.QueueEntry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + queueColumns + `
			  FROM delivery_queue
			  WHERE status IN ('QUEUED', 'FAILED_RETRYABLE')
			    AND scheduled_at <= $1
			    AND recipient LIKE $2
			    AND (claimed_until IS NULL OR claimed_until < $1)
			  ORDER BY scheduled_at, id
			  LIMIT $3
			  FOR UPDATE SKIP LOCKED`

	rows, err := querier.QueryContext(ctx, query, now, placeholderPattern, limit)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to select due queue entries")
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]*deliveryDomain.QueueEntry, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var row queueRow
		var id uuid.UUID
		if err := rows.Scan(row.targets(&id)...); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan queue entry")
		}
		entry := row.toEntry()
		entry.ID = id
		entries = append(entries, entry)
		ids = append(ids, id.String())
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate queue entries")
	}

	if len(entries) == 0 {
		return entries, nil
	}

	_, err = querier.ExecContext(ctx,
		`UPDATE delivery_queue SET claimed_until = $1 WHERE id = ANY($2::uuid[])`,
		claimedUntil, pq.Array(ids),
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
func (p *PostgreSQLQueueRepository) Update(ctx context.Context, entry *deliveryDomain.QueueEntry) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE delivery_queue
			  SET status = $1, failure_reason = $2, sent_at = $3, attempts = $4, claimed_until = $5, updated_at = $6
			  WHERE id = $7`

	result, err := querier.ExecContext(ctx, query, append(updateArgs(entry), entry.ID)...)
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

package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

var queueColumnNames = []string{
	"id", "project_id", "record", "event_id", "instance", "recipient", "participant_hash",
	"template_id", "scheduled_at", "status", "failure_reason", "sent_at", "attempts", "claimed_until", "updated_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func TestPlaceholderPattern(t *testing.T) {
	assert.Equal(t, `ENC\_%@xx.xx`, placeholderPattern)
}

func TestPostgreSQLQueueRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	until := now.Add(5 * time.Minute)

	t.Run("Success_ClaimsDueEntries", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)
		first := uuid.Must(uuid.NewV7())
		second := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT id, project_id, record, .* FROM delivery_queue WHERE status IN \('QUEUED', 'FAILED_RETRYABLE'\) AND scheduled_at <= \$1 AND recipient LIKE \$2 AND \(claimed_until IS NULL OR claimed_until < \$1\) ORDER BY scheduled_at, id LIMIT \$3 FOR UPDATE SKIP LOCKED`).
			WithArgs(now, `ENC\_%@xx.xx`, 200).
			WillReturnRows(sqlmock.NewRows(queueColumnNames).
				AddRow(first.String(), int64(12), "1001", int64(40), nil, "ENC_abc@xx.xx", "Hx7Kq2",
					int64(3), now.Add(-time.Hour), "QUEUED", nil, nil, 0, nil, now.Add(-time.Hour)).
				AddRow(second.String(), int64(12), "1002", int64(40), int64(2), "ENC_def@xx.xx", "Jk8Lm3",
					int64(3), now.Add(-time.Minute), "FAILED_RETRYABLE", deliveryDomain.ReasonSendFailed, nil, 2,
					now.Add(-time.Second), now.Add(-time.Minute)))
		mock.ExpectExec(`UPDATE delivery_queue SET claimed_until = \$1 WHERE id = ANY\(\$2::uuid\[\]\)`).
			WithArgs(until, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 2))

		entries, err := repo.ClaimDue(ctx, now, until, 200)

		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, first, entries[0].ID)
		assert.Equal(t, recordDomain.NewCoordinate(12, "1001", 40, 1), entries[0].Coordinate)
		assert.Equal(t, deliveryDomain.StatusQueued, entries[0].Status)
		assert.Nil(t, entries[0].FailureReason)
		assert.Equal(t, until, *entries[0].ClaimedUntil)

		assert.Equal(t, second, entries[1].ID)
		assert.Equal(t, 2, entries[1].Coordinate.Instance)
		assert.Equal(t, deliveryDomain.StatusFailedRetryable, entries[1].Status)
		require.NotNil(t, entries[1].FailureReason)
		assert.Equal(t, deliveryDomain.ReasonSendFailed, *entries[1].FailureReason)
		assert.Equal(t, 2, entries[1].Attempts)
		assert.Equal(t, until, *entries[1].ClaimedUntil)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_NothingDueSkipsClaim", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		mock.ExpectQuery(`SELECT .* FROM delivery_queue`).
			WithArgs(now, `ENC\_%@xx.xx`, 200).
			WillReturnRows(sqlmock.NewRows(queueColumnNames))

		entries, err := repo.ClaimDue(ctx, now, until, 200)

		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_SelectFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		mock.ExpectQuery(`SELECT .* FROM delivery_queue`).WillReturnError(errors.New("connection reset"))

		entries, err := repo.ClaimDue(ctx, now, until, 200)

		assert.Nil(t, entries)
		assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
	})

	t.Run("Error_ClaimUpdateFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		mock.ExpectQuery(`SELECT .* FROM delivery_queue`).
			WillReturnRows(sqlmock.NewRows(queueColumnNames).
				AddRow(uuid.Must(uuid.NewV7()).String(), int64(12), "1001", int64(40), nil, "ENC_abc@xx.xx", "Hx7Kq2",
					int64(3), now, "QUEUED", nil, nil, 0, nil, now))
		mock.ExpectExec(`UPDATE delivery_queue SET claimed_until`).WillReturnError(errors.New("deadlock"))

		entries, err := repo.ClaimDue(ctx, now, until, 200)

		assert.Nil(t, entries)
		assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLQueueRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Success_MarkSent", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		entry := &deliveryDomain.QueueEntry{ID: uuid.Must(uuid.NewV7()), Status: deliveryDomain.StatusQueued}
		entry.MarkSent(now)

		mock.ExpectExec(`UPDATE delivery_queue SET status = \$1, failure_reason = \$2, sent_at = \$3, attempts = \$4, claimed_until = \$5, updated_at = \$6 WHERE id = \$7`).
			WithArgs("SENT", sql.NullString{}, sql.NullTime{Time: now, Valid: true}, 0, sql.NullTime{}, now, entry.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_MarkFailed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		entry := &deliveryDomain.QueueEntry{ID: uuid.Must(uuid.NewV7()), Status: deliveryDomain.StatusQueued}
		entry.MarkFailed(deliveryDomain.ReasonDecryptFailed, now)

		mock.ExpectExec(`UPDATE delivery_queue SET`).
			WithArgs("FAILED_RETRYABLE",
				sql.NullString{String: deliveryDomain.ReasonDecryptFailed, Valid: true},
				sql.NullTime{}, 1, sql.NullTime{}, now, entry.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, entry))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_EntryNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		mock.ExpectExec(`UPDATE delivery_queue SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &deliveryDomain.QueueEntry{ID: uuid.Must(uuid.NewV7())})

		assert.ErrorIs(t, err, deliveryDomain.ErrQueueEntryNotFound)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("Error_ExecFails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLQueueRepository(db)

		mock.ExpectExec(`UPDATE delivery_queue SET`).WillReturnError(errors.New("connection reset"))

		err := repo.Update(ctx, &deliveryDomain.QueueEntry{ID: uuid.Must(uuid.NewV7())})

		assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
	})
}

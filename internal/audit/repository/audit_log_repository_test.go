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

	auditDomain "github.com/allisson/sealedfields/internal/audit/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func testAuditLog() *auditDomain.AuditLog {
	return &auditDomain.AuditLog{
		ID:        uuid.Must(uuid.NewV7()),
		Category:  auditDomain.CategoryRecordEncrypt,
		Message:   "encrypted fields [email]",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPostgreSQLAuditLogRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLAuditLogRepository(db)
	auditLog := testAuditLog()

	mock.ExpectExec(`INSERT INTO audit_logs \(id, category, message, created_at\) VALUES \(\$1, \$2, \$3, \$4\)`).
		WithArgs(auditLog.ID, auditLog.Category, auditLog.Message, auditLog.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), auditLog))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLAuditLogRepository_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success_DryRunCounts", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAuditLogRepository(db)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs WHERE created_at < \$1`).
			WithArgs(cutoff).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

		count, err := repo.DeleteOlderThan(ctx, cutoff, true)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Deletes", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAuditLogRepository(db)

		mock.ExpectExec(`DELETE FROM audit_logs WHERE created_at < \$1`).
			WithArgs(cutoff).
			WillReturnResult(sqlmock.NewResult(0, 5))

		count, err := repo.DeleteOlderThan(ctx, cutoff, false)

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})

	t.Run("Error_Storage", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLAuditLogRepository(db)

		mock.ExpectExec(`DELETE FROM audit_logs`).WillReturnError(errors.New("boom"))

		_, err := repo.DeleteOlderThan(ctx, cutoff, false)

		assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
	})
}

func TestMySQLAuditLogRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewMySQLAuditLogRepository(db)
	auditLog := testAuditLog()
	idBinary, err := auditLog.ID.MarshalBinary()
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO audit_logs \(id, category, message, created_at\) VALUES \(\?, \?, \?, \?\)`).
		WithArgs(idBinary, auditLog.Category, auditLog.Message, auditLog.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, category, message, created_at\s+FROM audit_logs`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "message", "created_at"}).
			AddRow(idBinary, auditLog.Category, auditLog.Message, auditLog.CreatedAt))

	require.NoError(t, repo.Create(ctx, auditLog))
	logs, err := repo.List(ctx, 0, 10)

	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, auditLog, logs[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

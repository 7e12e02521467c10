package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

type templateGetter interface {
	Get(ctx context.Context, id int64) (*deliveryDomain.MessageTemplate, error)
}

func TestTemplateRepository_Get(t *testing.T) {
	ctx := context.Background()

	dialects := []struct {
		name  string
		query string
		repo  func(db *sql.DB) templateGetter
	}{
		{
			name:  "PostgreSQL",
			query: `SELECT id, project_id, sender, subject, body FROM message_templates WHERE id = \$1`,
			repo:  func(db *sql.DB) templateGetter { return NewPostgreSQLTemplateRepository(db) },
		},
		{
			name:  "MySQL",
			query: `SELECT id, project_id, sender, subject, body FROM message_templates WHERE id = \?`,
			repo:  func(db *sql.DB) templateGetter { return NewMySQLTemplateRepository(db) },
		},
	}

	for _, dialect := range dialects {
		t.Run(dialect.name+"_Success", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(dialect.query).
				WithArgs(int64(3)).
				WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "sender", "subject", "body"}).
					AddRow(int64(3), int64(12), "study@example.org", "Follow-up", "Please complete [survey-link]"))

			template, err := dialect.repo(db).Get(ctx, 3)

			require.NoError(t, err)
			assert.Equal(t, &deliveryDomain.MessageTemplate{
				ID:        3,
				ProjectID: 12,
				Sender:    "study@example.org",
				Subject:   "Follow-up",
				Body:      "Please complete [survey-link]",
			}, template)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run(dialect.name+"_NotFound", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(dialect.query).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

			template, err := dialect.repo(db).Get(ctx, 9)

			assert.Nil(t, template)
			assert.ErrorIs(t, err, deliveryDomain.ErrTemplateNotFound)
		})

		t.Run(dialect.name+"_StorageError", func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery(dialect.query).WithArgs(int64(9)).WillReturnError(errors.New("connection reset"))

			_, err := dialect.repo(db).Get(ctx, 9)

			assert.True(t, apperrors.Is(err, apperrors.ErrStorage))
		})
	}
}

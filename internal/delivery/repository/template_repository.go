package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/sealedfields/internal/database"
	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// PostgreSQLTemplateRepository reads message templates from PostgreSQL.
type PostgreSQLTemplateRepository struct {
	db *sql.DB
}

// NewPostgreSQLTemplateRepository creates a new PostgreSQL template repository.
func NewPostgreSQLTemplateRepository(db *sql.DB) *PostgreSQLTemplateRepository {
	return &PostgreSQLTemplateRepository{db: db}
}

// Get retrieves a template by id.
func (p *PostgreSQLTemplateRepository) Get(ctx context.Context, id int64) (*deliveryDomain.MessageTemplate, error) {
	return getTemplate(ctx, database.GetTx(ctx, p.db),
		`SELECT id, project_id, sender, subject, body FROM message_templates WHERE id = $1`, id)
}

// MySQLTemplateRepository reads message templates from MySQL.
type MySQLTemplateRepository struct {
	db *sql.DB
}

// NewMySQLTemplateRepository creates a new MySQL template repository.
func NewMySQLTemplateRepository(db *sql.DB) *MySQLTemplateRepository {
	return &MySQLTemplateRepository{db: db}
}

// Get retrieves a template by id.
func (m *MySQLTemplateRepository) Get(ctx context.Context, id int64) (*deliveryDomain.MessageTemplate, error) {
	return getTemplate(ctx, database.GetTx(ctx, m.db),
		`SELECT id, project_id, sender, subject, body FROM message_templates WHERE id = ?`, id)
}

func getTemplate(
	ctx context.Context,
	querier database.Querier,
	query string,
	id int64,
) (*deliveryDomain.MessageTemplate, error) {
	var template deliveryDomain.MessageTemplate
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.ProjectID,
		&template.Sender,
		&template.Subject,
		&template.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, deliveryDomain.ErrTemplateNotFound
		}
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to get message template")
	}
	return &template, nil
}

package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// MySQLFieldMetadataRepository reads field definitions from MySQL.
type MySQLFieldMetadataRepository struct {
	db *sql.DB
}

// NewMySQLFieldMetadataRepository creates a new MySQL field metadata repository.
func NewMySQLFieldMetadataRepository(db *sql.DB) *MySQLFieldMetadataRepository {
	return &MySQLFieldMetadataRepository{db: db}
}

// ListByProject returns the field definitions of a project ordered by field order.
func (m *MySQLFieldMetadataRepository) ListByProject(
	ctx context.Context,
	projectID int64,
) ([]*recordDomain.FieldMetadata, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT project_id, field_name, field_order, annotation
			  FROM field_metadata
			  WHERE project_id = ?
			  ORDER BY field_order ASC`

	rows, err := querier.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to list field metadata")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanFieldMetadata(rows)
}

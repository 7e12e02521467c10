package repository

import (
	"context"
	"database/sql"

	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// PostgreSQLFieldMetadataRepository reads field definitions from PostgreSQL.
type PostgreSQLFieldMetadataRepository struct {
	db *sql.DB
}

// NewPostgreSQLFieldMetadataRepository creates a new PostgreSQL field metadata repository.
func NewPostgreSQLFieldMetadataRepository(db *sql.DB) *PostgreSQLFieldMetadataRepository {
	return &PostgreSQLFieldMetadataRepository{db: db}
}

// ListByProject returns the field definitions of a project ordered by field order.
func (p *PostgreSQLFieldMetadataRepository) ListByProject(
	ctx context.Context,
	projectID int64,
) ([]*recordDomain.FieldMetadata, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT project_id, field_name, field_order, annotation
			  FROM field_metadata
			  WHERE project_id = $1
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

func scanFieldMetadata(rows *sql.Rows) ([]*recordDomain.FieldMetadata, error) {
	var fields []*recordDomain.FieldMetadata
	for rows.Next() {
		var field recordDomain.FieldMetadata
		var annotation sql.NullString
		if err := rows.Scan(&field.ProjectID, &field.FieldName, &field.FieldOrder, &annotation); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan field metadata")
		}
		field.Annotation = annotation.String
		fields = append(fields, &field)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate field metadata")
	}
	return fields, nil
}

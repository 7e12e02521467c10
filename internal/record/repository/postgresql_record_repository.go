// Package repository implements record persistence for PostgreSQL and MySQL.
// Field values live in an entity-attribute-value table, record_data, where the
// first instance of a data set is stored with a NULL instance.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"

	"github.com/lib/pq"

	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// PostgreSQLRecordRepository implements record value persistence for PostgreSQL.
type PostgreSQLRecordRepository struct {
	db *sql.DB
}

// NewPostgreSQLRecordRepository creates a new PostgreSQL record repository.
func NewPostgreSQLRecordRepository(db *sql.DB) *PostgreSQLRecordRepository {
	return &PostgreSQLRecordRepository{db: db}
}

// postgresCoordinateFilter returns the WHERE clause and args selecting coord, with
// placeholders numbered from 1.
func postgresCoordinateFilter(coord recordDomain.Coordinate) (string, []any) {
	clause := "project_id = $1 AND event_id = $2 AND record = $3"
	args := []any{coord.ProjectID, coord.EventID, coord.Record}
	if coord.IsRepeating() {
		clause += " AND instance = $4"
		args = append(args, coord.Instance)
	} else {
		clause += " AND instance IS NULL"
	}
	return clause, args
}

// GetValues reads the values of fields for coord in a single query.
func (p *PostgreSQLRecordRepository) GetValues(
	ctx context.Context,
	coord recordDomain.Coordinate,
	fields []string,
) (recordDomain.Values, error) {
	querier := database.GetTx(ctx, p.db)

	clause, args := postgresCoordinateFilter(coord)
	query := "SELECT field_name, value FROM record_data WHERE " + clause
	if fields != nil {
		args = append(args, pq.Array(fields))
		query += fmt.Sprintf(" AND field_name = ANY($%d)", len(args))
	}

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to get record values")
	}
	defer func() {
		_ = rows.Close()
	}()

	values := make(recordDomain.Values)
	for rows.Next() {
		var name string
		var value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan record value")
		}
		values[name] = value.String
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate record values")
	}

	return values, nil
}

// UpdateValues writes values for exactly coord and returns the total rows affected.
// Only existing rows are updated.
func (p *PostgreSQLRecordRepository) UpdateValues(
	ctx context.Context,
	coord recordDomain.Coordinate,
	values recordDomain.Values,
) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	clause, args := postgresCoordinateFilter(coord)
	query := fmt.Sprintf(
		"UPDATE record_data SET value = $%d WHERE %s AND field_name = $%d",
		len(args)+1,
		clause,
		len(args)+2,
	)

	var total int64
	for _, name := range sortedNames(values) {
		result, err := querier.ExecContext(ctx, query, slices.Concat(args, []any{values[name], name})...)
		if err != nil {
			return total, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to update record value")
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return total, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to get rows affected")
		}
		total += affected
	}

	return total, nil
}

// ListRows returns a page of coordinates of a project with all their values.
func (p *PostgreSQLRecordRepository) ListRows(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*recordDomain.Row, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT d.record, d.event_id, COALESCE(d.instance, 1), d.field_name, d.value
			  FROM record_data d
			  JOIN (
				SELECT DISTINCT record, event_id, COALESCE(instance, 1) AS inst
				FROM record_data
				WHERE project_id = $1
				ORDER BY record, event_id, inst
				LIMIT $2 OFFSET $3
			  ) page ON d.record = page.record AND d.event_id = page.event_id AND COALESCE(d.instance, 1) = page.inst
			  WHERE d.project_id = $1
			  ORDER BY d.record, d.event_id, COALESCE(d.instance, 1), d.field_name`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to list records")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRows(rows, projectID)
}

// scanRows groups (record, event, instance, field, value) tuples into rows.
// The input must be ordered by coordinate.
func scanRows(rows *sql.Rows, projectID int64) ([]*recordDomain.Row, error) {
	var out []*recordDomain.Row
	var current *recordDomain.Row

	for rows.Next() {
		var record, name string
		var eventID int64
		var instance int
		var value sql.NullString
		if err := rows.Scan(&record, &eventID, &instance, &name, &value); err != nil {
			return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to scan record row")
		}

		coord := recordDomain.NewCoordinate(projectID, record, eventID, instance)
		if current == nil || current.Coordinate != coord {
			current = &recordDomain.Row{Coordinate: coord, Values: make(recordDomain.Values)}
			out = append(out, current)
		}
		current.Values[name] = value.String
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to iterate record rows")
	}

	return out, nil
}

func sortedNames(values recordDomain.Values) []string {
	return slices.Sorted(maps.Keys(values))
}

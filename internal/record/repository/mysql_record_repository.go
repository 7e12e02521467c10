package repository

import (
	"context"
	"database/sql"
	"slices"
	"strings"

	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// MySQLRecordRepository implements record value persistence for MySQL.
type MySQLRecordRepository struct {
	db *sql.DB
}

// NewMySQLRecordRepository creates a new MySQL record repository.
func NewMySQLRecordRepository(db *sql.DB) *MySQLRecordRepository {
	return &MySQLRecordRepository{db: db}
}

func mysqlCoordinateFilter(coord recordDomain.Coordinate) (string, []any) {
	clause := "project_id = ? AND event_id = ? AND record = ?"
	args := []any{coord.ProjectID, coord.EventID, coord.Record}
	if coord.IsRepeating() {
		clause += " AND instance = ?"
		args = append(args, coord.Instance)
	} else {
		clause += " AND instance IS NULL"
	}
	return clause, args
}

// GetValues reads the values of fields for coord in a single query.
func (m *MySQLRecordRepository) GetValues(
	ctx context.Context,
	coord recordDomain.Coordinate,
	fields []string,
) (recordDomain.Values, error) {
	querier := database.GetTx(ctx, m.db)

	clause, args := mysqlCoordinateFilter(coord)
	query := "SELECT field_name, value FROM record_data WHERE " + clause
	if fields != nil {
		if len(fields) == 0 {
			return recordDomain.Values{}, nil
		}
		query += " AND field_name IN (?" + strings.Repeat(", ?", len(fields)-1) + ")"
		for _, name := range fields {
			args = append(args, name)
		}
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
//
// MySQL reports rows changed rather than rows matched unless the connection sets
// clientFoundRows, so rewriting an identical value counts as zero.
func (m *MySQLRecordRepository) UpdateValues(
	ctx context.Context,
	coord recordDomain.Coordinate,
	values recordDomain.Values,
) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	clause, args := mysqlCoordinateFilter(coord)
	query := "UPDATE record_data SET value = ? WHERE " + clause + " AND field_name = ?"

	var total int64
	for _, name := range sortedNames(values) {
		result, err := querier.ExecContext(ctx, query, slices.Concat([]any{values[name]}, args, []any{name})...)
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
func (m *MySQLRecordRepository) ListRows(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*recordDomain.Row, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT d.record, d.event_id, COALESCE(d.instance, 1), d.field_name, d.value
			  FROM record_data d
			  JOIN (
				SELECT DISTINCT record, event_id, COALESCE(instance, 1) AS inst
				FROM record_data
				WHERE project_id = ?
				ORDER BY record, event_id, inst
				LIMIT ? OFFSET ?
			  ) page ON d.record = page.record AND d.event_id = page.event_id AND COALESCE(d.instance, 1) = page.inst
			  WHERE d.project_id = ?
			  ORDER BY d.record, d.event_id, COALESCE(d.instance, 1), d.field_name`

	rows, err := querier.QueryContext(ctx, query, projectID, limit, offset, projectID)
	if err != nil {
		return nil, apperrors.WrapAs(err, apperrors.ErrStorage, "failed to list records")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanRows(rows, projectID)
}

// query.go executes model-generated SQL and collects results.
//
// The query text is opaque to this layer: it is run verbatim and the
// result is returned with named columns and stringified row values so
// downstream profiling can re-type them tolerantly. Errors are
// returned, never logged or printed.
package db

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ResultSet holds the output of an executed query.
type ResultSet struct {
	Columns  []string
	Rows     [][]string
	RowCount int
	Status   string // e.g. "(5 rows)"
}

// QueryError indicates the extracted query failed to run.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Execute runs an arbitrary SQL statement and returns results.
func (d *DB) Execute(ctx context.Context, sql string) (*ResultSet, error) {
	sql = strings.TrimSpace(sql)
	if sql == "" {
		return nil, &QueryError{Query: sql, Err: fmt.Errorf("empty query")}
	}

	result, err := d.executeQuery(ctx, sql)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	return result, nil
}

// QueryCell runs a statement and returns the first cell of the first
// row. Used by the in-warehouse completion transport.
func (d *DB) QueryCell(ctx context.Context, sql string) (string, error) {
	var cell string
	if err := d.Pool.QueryRow(ctx, sql).Scan(&cell); err != nil {
		return "", err
	}
	return cell, nil
}

// executeQuery is the internal workhorse for running SQL and collecting results.
func (d *DB) executeQuery(ctx context.Context, sql string, args ...any) (*ResultSet, error) {
	rows, err := d.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &ResultSet{}

	for _, fd := range rows.FieldDescriptions() {
		result.Columns = append(result.Columns, fd.Name)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		result.Rows = append(result.Rows, row)
		result.RowCount++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result.Status = fmt.Sprintf("(%d row%s)", result.RowCount, plural(result.RowCount))
	return result, nil
}

// formatValue renders a driver value as text. Dates keep an
// ISO shape so the column profiler can re-coerce them.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02 15:04:05")
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

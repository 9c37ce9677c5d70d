package store

import (
	"context"
	"fmt"

	"github.com/tarak510605/asana-rl-seed-data/internal/schema"
)

// TableCount pairs a table with its row count.
type TableCount struct {
	Table string
	Rows  int
}

// Result holds a table's contents with a stable column order.
type Result struct {
	Columns []string
	Rows    []map[string]any
}

// CountRows returns the number of rows in one dataset table. The name
// must come from the schema's table list; it is interpolated, not bound.
func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	return s.CountSQL(ctx, "SELECT COUNT(*) FROM "+table)
}

// CountSQL runs a freeform single-value count query.
func (s *Store) CountSQL(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.handle().QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query failed: %w", err)
	}
	return n, nil
}

// Counts returns the row count of every dataset table in dependency
// order.
func (s *Store) Counts(ctx context.Context) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(schema.Tables))
	for _, table := range schema.Tables {
		n, err := s.CountRows(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts = append(counts, TableCount{Table: table, Rows: n})
	}
	return counts, nil
}

// Rows fetches a table's full contents. Byte slices are decoded to
// strings so the result serializes cleanly.
func (s *Store) Rows(ctx context.Context, table string) (*Result, error) {
	rows, err := s.handle().QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", table, err)
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		scans := make([]any, len(columns))
		for i := range values {
			scans[i] = &values[i]
		}
		if err := rows.Scan(scans...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", table, err)
	}

	return result, nil
}

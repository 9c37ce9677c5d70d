// Package export writes a generated dataset out as portable files: one
// JSON snapshot or a directory of per-table CSVs. Tables are read in
// dependency order, so an importer replaying the files top to bottom
// never sees a dangling reference.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tarak510605/asana-rl-seed-data/internal/schema"
	"github.com/tarak510605/asana-rl-seed-data/internal/store"
	"github.com/tarak510605/asana-rl-seed-data/internal/timeutil"
)

// File names carry a timestamp so repeated exports never overwrite.
const stampLayout = "2006-01-02_15-04-05"

// Snapshot is the JSON envelope wrapping every table's rows.
type Snapshot struct {
	GeneratedAt string                      `json:"generated_at"`
	Provider    string                      `json:"provider"`
	Tables      map[string][]map[string]any `json:"tables"`
}

type Exporter struct {
	store  *store.Store
	logger *log.Logger
}

func New(st *store.Store, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Exporter{store: st, logger: logger}
}

type tableData struct {
	name   string
	result *store.Result
}

func (e *Exporter) read(ctx context.Context) ([]tableData, error) {
	out := make([]tableData, 0, len(schema.Tables))
	for _, table := range schema.Tables {
		result, err := e.store.Rows(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", table, err)
		}
		e.logger.Debug("table read", "table", table, "rows", len(result.Rows))
		out = append(out, tableData{name: table, result: result})
	}
	return out, nil
}

// JSON writes the whole dataset into one timestamped file under dir and
// returns its path.
func (e *Exporter) JSON(ctx context.Context, dir string) (string, error) {
	tables, err := e.read(ctx)
	if err != nil {
		return "", err
	}

	snap := Snapshot{
		GeneratedAt: time.Now().Format(timeutil.TimestampLayout),
		Provider:    e.store.Provider(),
		Tables:      make(map[string][]map[string]any, len(tables)),
	}
	for _, t := range tables {
		snap.Tables[t.name] = t.result.Rows
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("export_%s.json", time.Now().Format(stampLayout)))

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.logger.Info("dataset exported", "format", "json", "path", path)
	return path, nil
}

// CSV writes one file per table into a timestamped directory under dir
// and returns the directory path.
func (e *Exporter) CSV(ctx context.Context, dir string) (string, error) {
	tables, err := e.read(ctx)
	if err != nil {
		return "", err
	}

	out := filepath.Join(dir, fmt.Sprintf("export_%s_csv", time.Now().Format(stampLayout)))
	if err := os.MkdirAll(out, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, t := range tables {
		if err := writeCSV(filepath.Join(out, t.name+".csv"), t.result); err != nil {
			return "", err
		}
	}

	e.logger.Info("dataset exported", "format", "csv", "path", out)
	return out, nil
}

// writeCSV writes one table with a header row. Columns keep their
// schema order; NULLs become empty cells.
func writeCSV(path string, result *store.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(result.Columns); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, row := range result.Rows {
		record := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			record[i] = cell(row[col])
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func cell(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

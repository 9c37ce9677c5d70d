// Package store persists the generated dataset. One Store serves all
// supported providers through database/sql; only the driver, the DSN
// and the placeholder format differ per provider.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/tarak510605/asana-rl-seed-data/internal/config"
	"github.com/tarak510605/asana-rl-seed-data/internal/schema"
)

type Store struct {
	db       *sql.DB
	tx       *sql.Tx
	provider string
	qb       squirrel.StatementBuilderType
}

// Open connects to the configured database and verifies the connection.
// The pool is capped at a single connection: the pipeline is a single
// writer, and every statement stays on the connection that carries the
// sqlite pragmas.
func Open(cfg config.Database) (*Store, error) {
	var driverName, dsn string

	switch cfg.Provider {
	case "postgresql", "postgres":
		driverName = "pgx"
		url, err := cfg.URL()
		if err != nil {
			return nil, err
		}
		dsn = url
	case "mysql":
		driverName = "mysql"
		url, err := cfg.URL()
		if err != nil {
			return nil, err
		}
		dsn = url
	case "sqlite", "sqlite3":
		driverName = "sqlite"
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite provider requires database.path")
		}
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", cfg.Provider)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Provider, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Provider, err)
	}

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	if cfg.Provider == "postgresql" || cfg.Provider == "postgres" {
		qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}

	return &Store{db: db, provider: cfg.Provider, qb: qb}, nil
}

func (s *Store) Close() error {
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Provider() string {
	return s.provider
}

type handle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// handle returns the open transaction when one is active, the bare
// connection otherwise.
func (s *Store) handle() handle {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// Begin opens the transaction that spans the insert stages of a run.
func (s *Store) Begin(ctx context.Context) error {
	if s.tx != nil {
		return fmt.Errorf("transaction already open")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	return nil
}

func (s *Store) Commit() error {
	if s.tx == nil {
		return fmt.Errorf("no open transaction")
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the open transaction. Calling it without one is a
// no-op so it can sit in a defer.
func (s *Store) Rollback() {
	if s.tx == nil {
		return
	}
	s.tx.Rollback()
	s.tx = nil
}

// Reset destroys any previous dataset and re-applies the schema. Tables
// are dropped in reverse dependency order so foreign keys never block
// the wipe. DDL runs outside any transaction; MySQL would commit
// implicitly anyway.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range schema.WipeOrder() {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return s.ApplySchema(ctx)
}

// ApplySchema executes the embedded DDL statement by statement.
func (s *Store) ApplySchema(ctx context.Context) error {
	for _, stmt := range schema.Statements() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

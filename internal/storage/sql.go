package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/dbx"
	"github.com/dmitrijs2005/artspace/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type dialect struct {
	driver     string // database/sql driver name
	goose      string
	migrations string

	get    string
	set    string
	delete string
	// lock serializes Updates of one key inside a transaction; empty when
	// the connection pool already does.
	lock string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		driver:     "sqlite",
		goose:      "sqlite3",
		migrations: "migrations/sqlite",
		get:        `SELECT value FROM kv WHERE key = ?`,
		set: `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`,
		delete: `DELETE FROM kv WHERE key = ?`,
	},
	DriverPgx: {
		driver:     "pgx",
		goose:      "postgres",
		migrations: "migrations/postgres",
		get:        `SELECT value FROM kv WHERE key = $1`,
		set: `
			INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`,
		delete: `DELETE FROM kv WHERE key = $1`,
		lock:   `SELECT pg_advisory_xact_lock(hashtext($1))`,
	},
}

// SQLStore keeps values in a single kv table.
type SQLStore struct {
	db *sql.DB
	d  dialect
}

func newSQLStore(db *sql.DB, d dialect) *SQLStore {
	return &SQLStore{db: db, d: d}
}

// OpenSQL connects to the database for driver, creates the kv table and
// returns a ready store.
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	if driver == DriverSQLite {
		if path := sqliteFilePath(dsn); path != "" {
			if err := filex.EnsureParentDir(path); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := runMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}

	return newSQLStore(db, d), nil
}

// sqliteFilePath extracts the database file from a DSN, or "" for an
// in-memory database.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	query := ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, query = path[:i], path[i+1:]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	if q, err := url.ParseQuery(query); err == nil && q.Get("mode") == "memory" {
		return ""
	}
	return path
}

func (s *SQLStore) get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, s.d.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := db.ExecContext(ctx, s.d.set, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.get(ctx, s.db, key)
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	return s.set(ctx, s.db, key, value)
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.d.delete, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if s.d.lock != "" {
			if _, err := tx.ExecContext(ctx, s.d.lock, key); err != nil {
				return fmt.Errorf("failed to lock %s: %w", key, err)
			}
		}
		old, err := s.get(ctx, tx, key)
		if err != nil {
			return err
		}
		next, err := fn(old)
		if err != nil {
			return err
		}
		return s.set(ctx, tx, key, next)
	})
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

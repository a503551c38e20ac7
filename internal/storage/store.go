// Package storage is the persistence adapter: a byte-oriented key/value
// Store with SQL and in-memory implementations, and typed Slots layered on
// top that fall back to a default whenever the medium misbehaves.
package storage

import "context"

// Store persists opaque values under string keys.
type Store interface {
	// Get returns the value stored under key, or nil, nil when the key is missing.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Update replaces the value under key with fn(old) atomically with respect
	// to other Updates of the same key. old is nil when the key is missing.
	// When fn fails nothing is written and its error is returned.
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error

	Ping(ctx context.Context) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
	DriverMemory = "memory"
)

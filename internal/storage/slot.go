package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/artspace/internal/logging"
)

// Slot is a typed value stored as JSON under one key. Reads never fail:
// a missing key, a medium error or undecodable data all yield the default.
type Slot[T any] struct {
	store  Store
	key    string
	def    T
	logger logging.Logger
}

func NewSlot[T any](store Store, key string, def T, logger logging.Logger) *Slot[T] {
	return &Slot[T]{store: store, key: key, def: def, logger: logger.With("key", key)}
}

func (s *Slot[T]) Key() string { return s.key }

func (s *Slot[T]) Get(ctx context.Context) T {
	b, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn(ctx, "storage read failed, using default", "err", err)
		return s.def
	}
	return s.decode(ctx, b)
}

func (s *Slot[T]) decode(ctx context.Context, b []byte) T {
	if b == nil {
		return s.def
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		s.logger.Warn(ctx, "stored value is corrupt, using default", "err", err)
		return s.def
	}
	return v
}

// Set stores v. Medium failures are logged and dropped.
func (s *Slot[T]) Set(ctx context.Context, v T) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(ctx, "encode value", "err", err)
		return
	}
	if err := s.store.Set(ctx, s.key, b); err != nil {
		s.logger.Warn(ctx, "storage write failed", "err", err)
	}
}

// Clear removes the value so that Get returns the default again.
func (s *Slot[T]) Clear(ctx context.Context) {
	if err := s.store.Delete(ctx, s.key); err != nil {
		s.logger.Warn(ctx, "storage delete failed", "err", err)
	}
}

// Update replaces the value with fn(current) atomically. fn's own error is
// returned as is; a medium failure is returned wrapped, since the change
// was not stored.
func (s *Slot[T]) Update(ctx context.Context, fn func(cur T) (T, error)) error {
	var fnErr error
	err := s.store.Update(ctx, s.key, func(old []byte) ([]byte, error) {
		next, err := fn(s.decode(ctx, old))
		if err != nil {
			fnErr = err
			return nil, err
		}
		return json.Marshal(next)
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		s.logger.Warn(ctx, "storage update failed", "err", err)
		return fmt.Errorf("update %s: %w", s.key, err)
	}
	return nil
}

package storage

import (
	"context"

	"github.com/dmitrijs2005/artspace/internal/logging"
)

// Open returns the store for driver. It never fails: when the medium cannot
// be reached or migrated, a warning is logged and an in-memory store is
// returned in its place.
func Open(ctx context.Context, driver, dsn string, logger logging.Logger) Store {
	if driver == DriverMemory {
		return NewMemoryStore()
	}

	s, err := OpenSQL(ctx, driver, dsn)
	if err != nil {
		logger.Warn(ctx, "storage unavailable, falling back to memory", "driver", driver, "err", err)
		return NewMemoryStore()
	}
	logger.Info(ctx, "storage opened", "driver", driver)
	return s
}

// Package app assembles the ArtSpace components from a Config. Both the
// server and the terminal client start from Open and finish with Close.
package app

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/artspace/internal/community"
	"github.com/dmitrijs2005/artspace/internal/config"
	"github.com/dmitrijs2005/artspace/internal/gallery"
	"github.com/dmitrijs2005/artspace/internal/images"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/museum"
	"github.com/dmitrijs2005/artspace/internal/session"
	"github.com/dmitrijs2005/artspace/internal/storage"
)

// Deps is the wired object graph.
type Deps struct {
	Store    storage.Store
	Sessions *session.Manager
	Catalog  *community.Catalog
	Museum   *museum.Client
	Images   images.Store
	Gallery  *gallery.Service
	Logger   logging.Logger
}

// newS3Store is swapped in tests.
var newS3Store = func(ctx context.Context, cfg images.S3Config) (images.Store, error) {
	return images.NewS3Store(ctx, cfg)
}

// Open builds Deps. Storage and image backends degrade to in-memory and
// inline variants when they cannot be reached, so Open itself never fails
// on an unavailable dependency.
func Open(ctx context.Context, cfg *config.Config, notifier gallery.Notifier, logger logging.Logger) *Deps {
	store := storage.Open(ctx, cfg.StorageDriver, cfg.StorageDSN, logger)
	imgs := openImages(ctx, cfg, logger)

	sessions := session.NewManager(store, logger)
	catalog := community.NewCatalog(store, imgs, logger)
	met := museum.NewClient(museum.Config{
		BaseURL:    cfg.MuseumBaseURL,
		SearchTerm: cfg.MuseumSearchTerm,
		Limit:      cfg.MuseumLimit,
		Timeout:    cfg.MuseumTimeout,
	}, museum.NewRandLikes(cfg.LikeSeed), logger)

	return &Deps{
		Store:    store,
		Sessions: sessions,
		Catalog:  catalog,
		Museum:   met,
		Images:   imgs,
		Gallery:  gallery.NewService(sessions, catalog, met, imgs, notifier, logger),
		Logger:   logger,
	}
}

func openImages(ctx context.Context, cfg *config.Config, logger logging.Logger) images.Store {
	if cfg.S3Bucket == "" {
		return images.InlineStore{}
	}

	s, err := newS3Store(ctx, images.S3Config{
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		PresignTTL:   cfg.PresignTTL,
	})
	if err != nil {
		logger.Warn(ctx, "image store unavailable, keeping images inline", "bucket", cfg.S3Bucket, "err", err)
		return images.InlineStore{}
	}

	logger.Info(ctx, "image store opened", "bucket", cfg.S3Bucket)
	return s
}

// Close releases the store.
func (d *Deps) Close() error {
	if d == nil || d.Store == nil {
		return nil
	}
	if err := d.Store.Close(); err != nil {
		return errors.Join(errors.New("close store"), err)
	}
	return nil
}

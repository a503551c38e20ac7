// Package gallery ties the catalogs together for the views: it resolves
// artwork details across sources and decorates artworks with the viewer's
// like state.
package gallery

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/artspace/internal/community"
	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/museum"
)

// RemoteCatalog is the museum API as seen by the gallery.
type RemoteCatalog interface {
	Curated(ctx context.Context) []domain.Artwork
	Object(ctx context.Context, id string) (domain.Artwork, error)
}

// Resolver finds the artwork behind an id: community submissions first,
// then the museum, then a placeholder.
type Resolver struct {
	community *community.Catalog
	remote    RemoteCatalog
	logger    logging.Logger
}

func NewResolver(c *community.Catalog, remote RemoteCatalog, logger logging.Logger) *Resolver {
	return &Resolver{community: c, remote: remote, logger: logger}
}

// Resolve never fails; unknown ids and remote errors become placeholders.
func (r *Resolver) Resolve(ctx context.Context, id string) domain.Artwork {
	if a, ok := r.community.Get(ctx, id); ok {
		return a
	}

	a, err := r.remote.Object(ctx, id)
	switch {
	case err == nil:
		return a
	case errors.Is(err, museum.ErrObjectNotFound):
		return domain.NotFoundArtwork(id)
	default:
		r.logger.Warn(ctx, "artwork lookup failed", "artwork_id", id, "err", err)
		return domain.ErrorArtwork(id)
	}
}

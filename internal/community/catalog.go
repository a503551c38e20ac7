// Package community manages artworks submitted by registered users and the
// per-account like-sets. Every mutation takes the acting user explicitly and
// authorizes it here.
package community

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/images"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/storage"
	"github.com/dmitrijs2005/artspace/internal/validator"
	"github.com/google/uuid"
)

// Catalog is the list of community submissions.
type Catalog struct {
	store  storage.Store
	art    *storage.Slot[[]domain.Artwork]
	images images.Store
	logger logging.Logger

	now   func() time.Time
	newID func() string
}

func NewCatalog(store storage.Store, imgs images.Store, logger logging.Logger) *Catalog {
	if imgs == nil {
		imgs = images.InlineStore{}
	}
	return &Catalog{
		store:  store,
		art:    storage.NewSlot[[]domain.Artwork](store, storage.KeyCommunityArt, nil, logger),
		images: imgs,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
}

// SubmitInput describes a new artwork. The image is either ImageURL (an
// http(s) or data: URL) or raw Image bytes; both may be empty.
type SubmitInput struct {
	Title       string
	Description string
	ImageURL    string
	Image       []byte
	ContentType string
}

// Submit appends a new artwork owned by actor.
func (c *Catalog) Submit(ctx context.Context, actor *domain.User, in SubmitInput) (domain.Artwork, error) {
	if actor == nil {
		return domain.Artwork{}, domain.ErrUnauthenticated
	}

	errs := validator.ValidateSubmission(in.Title, in.Description)
	img, problem := prepareImage(in)
	if problem != "" {
		errs.Add("image", problem)
	}
	if err := errs.Err(); err != nil {
		return domain.Artwork{}, err
	}

	ref := img.url
	if img.data != nil {
		var err error
		if ref, err = c.images.Put(ctx, img.contentType, img.data); err != nil {
			return domain.Artwork{}, fmt.Errorf("store image: %w", err)
		}
	}

	created := c.now()
	a := domain.Artwork{
		ID:          c.newID(),
		Title:       strings.TrimSpace(in.Title),
		Artist:      actor.Username,
		ImageURL:    ref,
		Description: strings.TrimSpace(in.Description),
		UserID:      actor.ID,
		CreatedAt:   &created,
		Source:      domain.SourceCommunity,
	}

	if err := c.art.Update(ctx, func(arts []domain.Artwork) ([]domain.Artwork, error) {
		return append(arts, a), nil
	}); err != nil {
		return domain.Artwork{}, err
	}

	c.logger.Info(ctx, "artwork submitted", "artwork_id", a.ID, "user_id", actor.ID)
	return a, nil
}

// image is a submitted picture: either a URL to keep as is or bytes to hand
// to the image store.
type image struct {
	url         string
	contentType string
	data        []byte
}

// prepareImage validates the submitted image. A non-empty problem is a
// message for the user.
func prepareImage(in SubmitInput) (img image, problem string) {
	switch {
	case len(in.Image) > 0:
		img.contentType, img.data = in.ContentType, in.Image
		if img.contentType == "" {
			img.contentType = http.DetectContentType(img.data)
		}
	case strings.HasPrefix(in.ImageURL, "data:"):
		var err error
		img.contentType, img.data, err = images.ParseDataURL(in.ImageURL)
		if err != nil {
			return image{}, "Image is not a valid data URL"
		}
	case in.ImageURL == "":
		return image{url: domain.PlaceholderImage("No Image")}, ""
	default:
		if !isHTTPURL(in.ImageURL) {
			return image{}, "Image must be an http(s) URL or an uploaded file"
		}
		return image{url: in.ImageURL}, ""
	}

	switch err := images.Check(img.contentType, img.data); {
	case len(img.data) == 0:
		return image{}, "Image is empty"
	case errors.Is(err, images.ErrNotImage):
		return image{}, "Uploaded file is not an image"
	case errors.Is(err, images.ErrTooLarge):
		return image{}, "Image is too large"
	}
	return img, ""
}

// List returns every submission in submission order.
func (c *Catalog) List(ctx context.Context) []domain.Artwork {
	return c.art.Get(ctx)
}

// Get finds a submission by id.
func (c *Catalog) Get(ctx context.Context, id string) (domain.Artwork, bool) {
	arts := c.art.Get(ctx)
	if i := slices.IndexFunc(arts, func(a domain.Artwork) bool { return a.ID == id }); i >= 0 {
		return arts[i], true
	}
	return domain.Artwork{}, false
}

func (c *Catalog) ListByOwner(ctx context.Context, ownerID string) []domain.Artwork {
	return FilterByOwner(c.art.Get(ctx), ownerID)
}

func (c *Catalog) ListByLiked(ctx context.Context, liked domain.LikeSet) []domain.Artwork {
	return FilterByLiked(c.art.Get(ctx), liked)
}

// FilterByOwner keeps the artworks submitted by ownerID.
func FilterByOwner(arts []domain.Artwork, ownerID string) []domain.Artwork {
	out := []domain.Artwork{}
	for _, a := range arts {
		if a.UserID == ownerID {
			out = append(out, a)
		}
	}
	return out
}

// FilterByLiked keeps the artworks whose id is in liked, in catalog order.
func FilterByLiked(arts []domain.Artwork, liked domain.LikeSet) []domain.Artwork {
	out := []domain.Artwork{}
	for _, a := range arts {
		if liked.Has(a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// Delete removes the artwork with id if actor owns it. Unknown ids are a
// no-op.
func (c *Catalog) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor == nil {
		return domain.ErrUnauthenticated
	}

	removed := false
	err := c.art.Update(ctx, func(arts []domain.Artwork) ([]domain.Artwork, error) {
		i := slices.IndexFunc(arts, func(a domain.Artwork) bool { return a.ID == id })
		if i < 0 {
			return arts, nil
		}
		if !arts[i].OwnedBy(actor) {
			return nil, domain.ErrForbidden
		}
		removed = true
		return slices.Delete(arts, i, i+1), nil
	})
	if err != nil {
		return err
	}

	if removed {
		c.logger.Info(ctx, "artwork deleted", "artwork_id", id, "user_id", actor.ID)
	}
	return nil
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

package gallery

import (
	"context"

	"github.com/dmitrijs2005/artspace/internal/domain"
)

// Event types published to a Notifier.
const (
	EventSubmitted = "artwork.submitted"
	EventDeleted   = "artwork.deleted"
	EventLiked     = "artwork.liked"
	EventUnliked   = "artwork.unliked"
)

type Event struct {
	Type      string          `json:"type"`
	ArtworkID string          `json:"artworkId"`
	Likes     *int            `json:"likes,omitempty"`
	Artwork   *domain.Artwork `json:"artwork,omitempty"`
}

// Notifier receives gallery mutations.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Event) {}

package gallery

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/artspace/internal/community"
	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/images"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/session"
)

// Card is an artwork as shown to one viewer.
type Card struct {
	domain.Artwork
	Liked bool `json:"liked"`
}

// Profile is the signed-in user's page.
type Profile struct {
	User        domain.User `json:"user"`
	Submissions []Card      `json:"submissions"`
	Liked       []Card      `json:"liked"`
}

// Share is what a viewer passes on when sharing an artwork.
type Share struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Service is the facade both views use.
type Service struct {
	sessions  *session.Manager
	community *community.Catalog
	remote    RemoteCatalog
	resolver  *Resolver
	images    images.Store
	notifier  Notifier
	logger    logging.Logger
}

func NewService(sessions *session.Manager, catalog *community.Catalog, remote RemoteCatalog,
	imgs images.Store, notifier Notifier, logger logging.Logger) *Service {
	if imgs == nil {
		imgs = images.InlineStore{}
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Service{
		sessions:  sessions,
		community: catalog,
		remote:    remote,
		resolver:  NewResolver(catalog, remote, logger),
		images:    imgs,
		notifier:  notifier,
		logger:    logger,
	}
}

// Session returns the session of a browser profile.
func (s *Service) Session(profile string) *session.Store {
	return s.sessions.For(profile)
}

// Curated returns the museum selection.
func (s *Service) Curated(ctx context.Context, actor *domain.User) []Card {
	return s.cards(ctx, actor, s.remote.Curated(ctx))
}

// Community returns every community submission.
func (s *Service) Community(ctx context.Context, actor *domain.User) []Card {
	return s.cards(ctx, actor, s.community.List(ctx))
}

// Detail resolves one artwork; it always returns something to show.
func (s *Service) Detail(ctx context.Context, actor *domain.User, id string) Card {
	return s.card(ctx, s.resolver.Resolve(ctx, id), s.community.LikeSet(ctx, actor))
}

// Profile lists the actor's submissions and the community artworks they like.
func (s *Service) Profile(ctx context.Context, actor *domain.User) (Profile, error) {
	if actor == nil {
		return Profile{}, domain.ErrUnauthenticated
	}
	liked := s.community.LikeSet(ctx, actor)
	all := s.community.List(ctx)
	return Profile{
		User:        *actor,
		Submissions: s.cardsWith(ctx, community.FilterByOwner(all, actor.ID), liked),
		Liked:       s.cardsWith(ctx, community.FilterByLiked(all, liked), liked),
	}, nil
}

func (s *Service) Like(ctx context.Context, actor *domain.User, id string) (community.LikeResult, error) {
	res, err := s.community.ToggleLike(ctx, actor, id)
	if err != nil {
		return res, err
	}

	e := Event{Type: EventUnliked, ArtworkID: id}
	if res.Liked {
		e.Type = EventLiked
	}
	if res.Counted {
		likes := res.Likes
		e.Likes = &likes
	}
	s.notifier.Notify(ctx, e)
	return res, nil
}

func (s *Service) Submit(ctx context.Context, actor *domain.User, in community.SubmitInput) (Card, error) {
	a, err := s.community.Submit(ctx, actor, in)
	if err != nil {
		return Card{}, err
	}
	c := s.card(ctx, a, nil)
	s.notifier.Notify(ctx, Event{Type: EventSubmitted, ArtworkID: a.ID, Artwork: &c.Artwork})
	return c, nil
}

func (s *Service) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := s.community.Delete(ctx, actor, id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, Event{Type: EventDeleted, ArtworkID: id})
	return nil
}

// ShareOf builds the share message for an artwork reachable at baseURL.
func ShareOf(a domain.Artwork, baseURL string) Share {
	return Share{
		Title: a.Title,
		Text:  fmt.Sprintf("Check out %q by %s on ArtSpace Gallery", a.Title, a.Artist),
		URL:   baseURL + "/artwork/" + url.PathEscape(a.ID),
	}
}

func (s *Service) cards(ctx context.Context, actor *domain.User, arts []domain.Artwork) []Card {
	return s.cardsWith(ctx, arts, s.community.LikeSet(ctx, actor))
}

func (s *Service) cardsWith(ctx context.Context, arts []domain.Artwork, liked domain.LikeSet) []Card {
	out := make([]Card, 0, len(arts))
	for _, a := range arts {
		out = append(out, s.card(ctx, a, liked))
	}
	return out
}

// card resolves the image reference and marks the like state.
func (s *Service) card(ctx context.Context, a domain.Artwork, liked domain.LikeSet) Card {
	u, err := s.images.URL(ctx, a.ImageURL)
	if err != nil {
		s.logger.Warn(ctx, "image reference unresolved", "artwork_id", a.ID, "err", err)
		u = domain.PlaceholderImage("Image Unavailable")
	}
	a.ImageURL = u
	return Card{Artwork: a, Liked: liked.Has(a.ID)}
}

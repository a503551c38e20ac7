package museum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL    = "https://collectionapi.metmuseum.org/public/collection/v1"
	DefaultSearchTerm = "painting"
	DefaultLimit      = 12
	PlaceholderCount  = 8
)

type Config struct {
	BaseURL    string
	SearchTerm string
	Limit      int
	Timeout    time.Duration
}

// Client talks to the collection API.
type Client struct {
	baseURL string
	term    string
	limit   int
	http    *http.Client
	likes   LikeSource
	logger  logging.Logger
}

func NewClient(cfg Config, likes LikeSource, logger logging.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.SearchTerm == "" {
		cfg.SearchTerm = DefaultSearchTerm
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if likes == nil {
		likes = NewRandLikes(0)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		term:    cfg.SearchTerm,
		limit:   cfg.Limit,
		http:    &http.Client{Timeout: cfg.Timeout},
		likes:   likes,
		logger:  logger,
	}
}

// Search returns the ids of objects with images matching term.
func (c *Client) Search(ctx context.Context, term string) ([]int, error) {
	q := url.Values{}
	q.Set("hasImages", "true")
	q.Set("q", term)

	var res searchResult
	if err := c.getJSON(ctx, c.baseURL+"/search?"+q.Encode(), &res); err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}
	return res.ObjectIDs, nil
}

// Object fetches one artwork. Unknown, non-numeric and id-less objects
// yield ErrObjectNotFound.
func (c *Client) Object(ctx context.Context, id string) (domain.Artwork, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Artwork{}, err
	}
	o, err := c.fetchObject(ctx, n)
	if err != nil {
		return domain.Artwork{}, err
	}
	return mapObject(o, c.likes.RandomLikes())
}

// Curated returns the home page selection: the first limit search hits that
// carry an image. Any failure yields placeholder artworks instead.
func (c *Client) Curated(ctx context.Context) []domain.Artwork {
	arts, err := c.curated(ctx)
	if err != nil {
		c.logger.Warn(ctx, "museum fetch failed, serving placeholders", "term", c.term, "err", err)
		return Placeholders(PlaceholderCount, c.likes)
	}
	return arts
}

func (c *Client) curated(ctx context.Context) ([]domain.Artwork, error) {
	ids, err := c.Search(ctx, c.term)
	if err != nil {
		return nil, err
	}
	if len(ids) > c.limit {
		ids = ids[:c.limit]
	}

	records := make([]object, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			o, err := c.fetchObject(gctx, id)
			if err != nil {
				return fmt.Errorf("object %d: %w", id, err)
			}
			records[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	arts := make([]domain.Artwork, 0, len(records))
	for _, o := range records {
		if !o.hasImage() {
			continue
		}
		a, err := mapObject(o, c.likes.RandomLikes())
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", o.ObjectID, err)
		}
		arts = append(arts, a)
	}
	return arts, nil
}

func (c *Client) fetchObject(ctx context.Context, id int) (object, error) {
	var o object
	err := c.getJSON(ctx, c.baseURL+"/objects/"+strconv.Itoa(id), &o)
	return o, err
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrObjectNotFound
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

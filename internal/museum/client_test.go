package museum

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMet serves /search and /objects/{id} from canned bodies.
type fakeMet struct {
	search  string
	objects map[string]string
	status  map[string]int
	calls   atomic.Int32
	lastQ   atomic.Value
}

func (f *fakeMet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	switch {
	case r.URL.Path == "/search":
		f.lastQ.Store(r.URL.RawQuery)
		if code, ok := f.status["search"]; ok {
			w.WriteHeader(code)
			return
		}
		_, _ = w.Write([]byte(f.search))
	case strings.HasPrefix(r.URL.Path, "/objects/"):
		id := strings.TrimPrefix(r.URL.Path, "/objects/")
		if code, ok := f.status[id]; ok {
			w.WriteHeader(code)
			return
		}
		body, ok := f.objects[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not a valid object"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func objectJSON(id int, image string) string {
	return fmt.Sprintf(`{"objectID":%d,"title":"Work %d","artistDisplayName":"Painter %d","primaryImage":%q,"objectDescription":"","classification":"Paintings","objectDate":"1880"}`,
		id, id, id, image)
}

func newTestClient(t *testing.T, f *fakeMet, limit int) *Client {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	return NewClient(Config{BaseURL: ts.URL, Limit: limit, Timeout: 2 * time.Second}, FixedLikes(42), logging.Nop())
}

func TestCurated_MapsAndFiltersInOrder(t *testing.T) {
	f := &fakeMet{
		search: `{"total":5,"objectIDs":[1,2,3,4,5]}`,
		objects: map[string]string{
			"1": objectJSON(1, "https://images.example.org/1.jpg"),
			"2": objectJSON(2, ""),
			"3": objectJSON(3, "http://images.example.org/3.jpg"),
			"4": objectJSON(4, "https://images.example.org/4.jpg"),
			"5": objectJSON(5, "https://images.example.org/5.jpg"),
		},
	}
	c := newTestClient(t, f, 4)

	arts := c.Curated(context.Background())

	require.Len(t, arts, 3)
	assert.Equal(t, []string{"1", "3", "4"}, []string{arts[0].ID, arts[1].ID, arts[2].ID})
	assert.Equal(t, domain.Artwork{
		ID:          "1",
		Title:       "Work 1",
		Artist:      "Painter 1",
		ImageURL:    "https://images.example.org/1.jpg",
		Description: "Paintings",
		Likes:       42,
		Date:        "1880",
		Source:      domain.SourceCurated,
	}, arts[0])
	assert.Equal(t, "hasImages=true&q=painting", f.lastQ.Load())
	// one search plus the first four details
	assert.Equal(t, int32(5), f.calls.Load())
}

func TestCurated_SearchFailureServesPlaceholders(t *testing.T) {
	f := &fakeMet{status: map[string]int{"search": http.StatusInternalServerError}}
	c := newTestClient(t, f, 12)

	arts := c.Curated(context.Background())

	require.Len(t, arts, PlaceholderCount)
	for i, a := range arts {
		assert.Equal(t, fmt.Sprintf("placeholder-%d", i), a.ID)
		assert.Equal(t, fmt.Sprintf("Artwork %d", i+1), a.Title)
		assert.Equal(t, domain.SourcePlaceholder, a.Source)
	}
	assert.Equal(t, "/placeholder.svg?height=600&text=Artwork+1&width=400", arts[0].ImageURL)
}

func TestCurated_SingleDetailFailureServesPlaceholders(t *testing.T) {
	f := &fakeMet{
		search: `{"total":3,"objectIDs":[1,2,3]}`,
		objects: map[string]string{
			"1": objectJSON(1, "https://images.example.org/1.jpg"),
			"3": objectJSON(3, "https://images.example.org/3.jpg"),
		},
		status: map[string]int{"2": http.StatusBadGateway},
	}
	c := newTestClient(t, f, 12)

	arts := c.Curated(context.Background())
	require.Len(t, arts, PlaceholderCount)
	assert.Equal(t, domain.SourcePlaceholder, arts[0].Source)
}

func TestCurated_MalformedDetailServesPlaceholders(t *testing.T) {
	f := &fakeMet{
		search:  `{"total":1,"objectIDs":[1]}`,
		objects: map[string]string{"1": `{"objectID":"one","title":7}`},
	}
	c := newTestClient(t, f, 12)

	arts := c.Curated(context.Background())
	require.Len(t, arts, PlaceholderCount)
}

func TestCurated_NoHits(t *testing.T) {
	f := &fakeMet{search: `{"total":0,"objectIDs":null}`}
	c := newTestClient(t, f, 12)

	assert.Empty(t, c.Curated(context.Background()))
}

func TestObject_Found(t *testing.T) {
	f := &fakeMet{objects: map[string]string{
		"436535": `{"objectID":436535,"title":"","artistDisplayName":"","primaryImage":"ftp://bad/img.jpg","objectDescription":"","classification":""}`,
	}}
	c := newTestClient(t, f, 12)

	a, err := c.Object(context.Background(), "436535")
	require.NoError(t, err)
	assert.Equal(t, "436535", a.ID)
	assert.Equal(t, "Untitled", a.Title)
	assert.Equal(t, "Unknown Artist", a.Artist)
	assert.Equal(t, "No description available", a.Description)
	assert.Equal(t, domain.PlaceholderImage("No Image"), a.ImageURL)
	assert.Equal(t, 42, a.Likes)
}

func TestObject_NotFound(t *testing.T) {
	f := &fakeMet{objects: map[string]string{"7": `{"message":"not here"}`}}
	c := newTestClient(t, f, 12)
	ctx := context.Background()

	_, err := c.Object(ctx, "999")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	_, err = c.Object(ctx, "7")
	assert.ErrorIs(t, err, ErrObjectNotFound)

	before := f.calls.Load()
	_, err = c.Object(ctx, "community-abc")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	_, err = c.Object(ctx, "-3")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.Equal(t, before, f.calls.Load())
}

func TestObject_ServerErrorIsNotNotFound(t *testing.T) {
	f := &fakeMet{status: map[string]int{"5": http.StatusInternalServerError}}
	c := newTestClient(t, f, 12)

	_, err := c.Object(context.Background(), "5")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrObjectNotFound))
}

func TestObject_CanceledContext(t *testing.T) {
	c := newTestClient(t, &fakeMet{}, 12)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Object(ctx, "1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://x/"}, nil, logging.Nop())
	assert.Equal(t, "http://x", c.baseURL)
	assert.Equal(t, DefaultSearchTerm, c.term)
	assert.Equal(t, DefaultLimit, c.limit)
	assert.NotNil(t, c.likes)
}

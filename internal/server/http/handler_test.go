package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/artspace/internal/community"
	"github.com/dmitrijs2005/artspace/internal/gallery"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/museum"
	"github.com/dmitrijs2005/artspace/internal/session"
	"github.com/dmitrijs2005/artspace/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// newMet serves a two-painting collection.
func newMet(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":2,"objectIDs":[1,2]}`))
	})
	mux.HandleFunc("GET /objects/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id != "1" && id != "2" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"objectID":%s,"title":"Work %s","artistDisplayName":"Painter","primaryImage":"https://images.example/%s.jpg"}`, id, id, id)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

func newTestServer(t *testing.T) (*client, func() *client) {
	t.Helper()
	return newTestServerWith(t, storage.NewMemoryStore())
}

func newTestServerWith(t *testing.T, store storage.Store) (*client, func() *client) {
	t.Helper()
	met := newMet(t)
	log := logging.Nop()
	catalog := community.NewCatalog(store, nil, log)
	remote := museum.NewClient(museum.Config{BaseURL: met.URL, Timeout: time.Second}, museum.FixedLikes(5), log)
	svc := gallery.NewService(session.NewManager(store, log), catalog, remote, nil, nil, log)

	router := NewRouter(context.Background(), svc, Options{Secret: testSecret, TokenTTL: time.Hour}, log)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	mk := func() *client {
		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		return &client{t: t, base: srv.URL, http: &http.Client{Jar: jar}}
	}
	return mk(), mk
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	require.NoError(c.t, err)
	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(c.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func register(c *client, username string) {
	c.t.Helper()
	code, body := c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": username, "email": username + "@example.com", "password": "password1",
	})
	require.Equal(c.t, http.StatusCreated, code, body)
}

func TestHealth(t *testing.T) {
	c, _ := newTestServer(t)
	code, body := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestAuthFlow(t *testing.T) {
	c, _ := newTestServer(t)

	code, body := c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["user"])

	register(c, "alice")

	code, body = c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", body["user"].(map[string]any)["username"])
	assert.NotContains(t, body["user"], "passwordHash")

	code, _ = c.do(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, body = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "alice", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(body))

	code, body = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "alice", "password": ""})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(body))

	code, body = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"username": "alice", "password": "password1"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice", body["user"].(map[string]any)["username"])
}

// noUpdateStore refuses every Update, as a full disk would.
type noUpdateStore struct {
	*storage.MemoryStore
}

func (noUpdateStore) Update(context.Context, string, func([]byte) ([]byte, error)) error {
	return errors.New("disk full")
}

func TestRegister_StoreFailureIsInternal(t *testing.T) {
	c, _ := newTestServerWith(t, noUpdateStore{storage.NewMemoryStore()})

	code, body := c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "password1",
	})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL", errorCode(body))

	code, body = c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["user"])
}

func TestRegister_Errors(t *testing.T) {
	c, newClient := newTestServer(t)
	register(c, "alice")

	other := newClient()
	code, body := other.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "alice", "email": "new@example.com", "password": "password1",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "USERNAME_TAKEN", errorCode(body))

	code, body = other.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "carol", "email": "alice@example.com", "password": "password1",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "EMAIL_TAKEN", errorCode(body))

	code, body = other.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "x", "email": "nope", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(body))
	fields := body["error"].(map[string]any)["fields"].(map[string]any)
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")

	req, err := http.NewRequest(http.MethodPost, other.base+"/api/v1/auth/register", strings.NewReader("{"))
	require.NoError(t, err)
	resp, err := other.http.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestArtworks_Lifecycle(t *testing.T) {
	c, newClient := newTestServer(t)

	code, body := c.do(http.MethodPost, "/api/v1/artworks", map[string]string{"title": "Dawn"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(body))

	register(c, "alice")

	code, body = c.do(http.MethodPost, "/api/v1/artworks", map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(body))

	code, body = c.do(http.MethodPost, "/api/v1/artworks", map[string]string{
		"title": "Dawn", "description": "first light", "image": "data:image/png;base64,iVBORw0KGgo=",
	})
	require.Equal(t, http.StatusCreated, code, body)
	id := body["id"].(string)
	assert.Equal(t, "alice", body["artist"])
	assert.Equal(t, "community", body["source"])

	code, body = c.do(http.MethodGet, "/api/v1/artworks?tab=community", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "community", body["tab"])
	assert.Len(t, body["artworks"], 1)

	code, body = c.do(http.MethodPost, "/api/v1/artworks/"+id+"/like", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(1), body["likes"])

	code, body = c.do(http.MethodGet, "/api/v1/artworks/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, "Dawn", body["title"])

	code, body = c.do(http.MethodGet, "/api/v1/profile", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["submissions"], 1)
	assert.Len(t, body["liked"], 1)

	bob := newClient()
	register(bob, "bob")
	code, body = bob.do(http.MethodDelete, "/api/v1/artworks/"+id, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", errorCode(body))

	code, _ = c.do(http.MethodDelete, "/api/v1/artworks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = c.do(http.MethodDelete, "/api/v1/artworks/"+id, nil)
	assert.Equal(t, http.StatusNoContent, code, "deleting an unknown id is a no-op")

	code, body = c.do(http.MethodGet, "/api/v1/artworks/"+id, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Artwork Not Found", body["title"])
}

func TestArtworks_CuratedAndDetail(t *testing.T) {
	c, _ := newTestServer(t)

	code, body := c.do(http.MethodGet, "/api/v1/artworks", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "curated", body["tab"])
	arts := body["artworks"].([]any)
	require.Len(t, arts, 2)
	assert.Equal(t, float64(5), arts[0].(map[string]any)["likes"])

	code, body = c.do(http.MethodGet, "/api/v1/artworks/2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Work 2", body["title"])

	code, body = c.do(http.MethodGet, "/api/v1/artworks?tab=popular", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(body))

	code, body = c.do(http.MethodPost, "/api/v1/artworks/2/like", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(body))

	code, body = c.do(http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(body))
}

func TestShare(t *testing.T) {
	c, _ := newTestServer(t)

	code, body := c.do(http.MethodGet, "/api/v1/artworks/1/share", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Work 1", body["title"])
	assert.Equal(t, `Check out "Work 1" by Painter on ArtSpace Gallery`, body["text"])
	assert.Equal(t, c.base+"/artwork/1", body["url"])
}

func TestSessionsAreIsolatedPerBrowser(t *testing.T) {
	c, newClient := newTestServer(t)
	register(c, "alice")

	other := newClient()
	_, body := other.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Nil(t, body["user"])
}

// Package http is the JSON view of the gallery: routes, the browser profile
// middleware and the server lifecycle.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/artspace/internal/domain"
	"github.com/dmitrijs2005/artspace/internal/gallery"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/server/ws"
	"github.com/dmitrijs2005/artspace/internal/session"
)

// maxBodyBytes bounds JSON bodies; inline images are base64 encoded.
const maxBodyBytes = 8 << 20

type Options struct {
	Secret   []byte
	TokenTTL time.Duration
	// Hub enables GET /ws when set.
	Hub *ws.Hub
}

type Handler struct {
	gallery *gallery.Service
	logger  logging.Logger
}

// NewRouter wires every route behind the logging and browser middleware.
// ctx bounds the lifetime of websocket connections.
func NewRouter(ctx context.Context, g *gallery.Service, opts Options, logger logging.Logger) http.Handler {
	logger = logger.With("module", "http")
	h := &Handler{gallery: g, logger: logger}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /placeholder.svg", Placeholder)

	mux.HandleFunc("GET /api/v1/artworks", h.List)
	mux.HandleFunc("POST /api/v1/artworks", h.Submit)
	mux.HandleFunc("GET /api/v1/artworks/{id}", h.Detail)
	mux.HandleFunc("DELETE /api/v1/artworks/{id}", h.Delete)
	mux.HandleFunc("POST /api/v1/artworks/{id}/like", h.Like)
	mux.HandleFunc("GET /api/v1/artworks/{id}/share", h.Share)

	mux.HandleFunc("POST /api/v1/auth/register", h.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/v1/auth/me", h.Me)
	mux.HandleFunc("GET /api/v1/profile", h.Profile)

	if opts.Hub != nil {
		mux.HandleFunc("GET /ws", ws.ServeWS(ctx, opts.Hub))
	}

	return Logging(logger)(Browser(opts.Secret, opts.TokenTTL, logger)(mux))
}

func (h *Handler) session(r *http.Request) *session.Store {
	return h.gallery.Session(ProfileFrom(r.Context()))
}

func (h *Handler) actor(r *http.Request) *domain.User {
	return h.session(r).Current(r.Context())
}

// fail writes err and logs the ones that are not user errors.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if !writeServiceError(w, err) {
		h.logger.Error(r.Context(), op+" failed", "err", err)
	}
}

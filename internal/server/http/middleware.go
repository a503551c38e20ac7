package http

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/server/auth"
	"github.com/google/uuid"
)

// BrowserCookie names the cookie that carries the signed browser profile.
const BrowserCookie = "artspace_browser"

type contextKey string

const profileKey contextKey = "browser_profile"

// newProfileID is swapped in tests.
var newProfileID = uuid.NewString

// Browser resolves the browser profile of every request. A missing or
// invalid cookie starts a fresh profile and sets a new cookie.
func Browser(secret []byte, ttl time.Duration, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := ""
			if c, err := r.Cookie(BrowserCookie); err == nil {
				profile, err = auth.GetBrowserIDFromToken(c.Value, secret)
				if err != nil {
					logger.Debug(r.Context(), "browser cookie rejected", "err", err)
				}
			}

			if profile == "" {
				profile = newProfileID()
				token, err := auth.GenerateToken(profile, secret, ttl)
				if err != nil {
					logger.Error(r.Context(), "sign browser token", "err", err)
					writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     BrowserCookie,
					Value:    token,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), profileKey, profile)
			ctx = logging.ContextWith(ctx, "profile", profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFrom returns the browser profile stored by Browser.
func ProfileFrom(ctx context.Context) string {
	p, _ := ctx.Value(profileKey).(string)
	return p
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// Hijack lets websocket upgrades pass through the recorder.
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	s.status = http.StatusSwitchingProtocols
	return http.NewResponseController(s.ResponseWriter).Hijack()
}

// Logging writes one line per request.
func Logging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

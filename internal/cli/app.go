package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/app"
	"github.com/dmitrijs2005/artspace/internal/config"
	"github.com/dmitrijs2005/artspace/internal/gallery"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/session"
	"github.com/sirupsen/logrus"
)

type App struct {
	deps    *app.Deps
	gallery *gallery.Service
	session *session.Store
	baseURL string
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the shared storage and binds the REPL to cfg.ProfileID.
// Diagnostics go to stderr as text so they stay apart from REPL output.
func NewApp(ctx context.Context, c *config.Config) *App {
	logger := logging.NewText(os.Stderr, logrus.WarnLevel).With("profile", c.ProfileID)
	deps := app.Open(ctx, c, nil, logger)

	a := newApp(deps.Gallery, c.ProfileID, bufio.NewReader(os.Stdin), os.Stdout)
	a.deps = deps
	a.baseURL = publicURL(c.HTTPAddr)
	return a
}

func newApp(g *gallery.Service, profile string, r *bufio.Reader, w io.Writer) *App {
	return &App{
		gallery: g,
		session: g.Session(profile),
		baseURL: publicURL(""),
		reader:  r,
		out:     w,
	}
}

// publicURL guesses the address the web server answers on.
func publicURL(addr string) string {
	switch {
	case addr == "":
		return "http://localhost:8080"
	case strings.HasPrefix(addr, ":"):
		return "http://localhost" + addr
	default:
		return "http://" + addr
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.deps.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	fmt.Fprintln(a.out, "Welcome to ArtSpace (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader, a.out)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.Current(ctx) != nil
}

func (a *App) status(ctx context.Context) string {
	if u := a.session.Current(ctx); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return "(guest)"
}

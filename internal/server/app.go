// Package server runs the ArtSpace web service: the HTTP API, the websocket
// event hub and the optional gRPC health endpoint, until a signal arrives.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/artspace/internal/app"
	"github.com/dmitrijs2005/artspace/internal/config"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/dmitrijs2005/artspace/internal/server/ws"

	gs "github.com/dmitrijs2005/artspace/internal/server/grpc"
	hs "github.com/dmitrijs2005/artspace/internal/server/http"
)

type App struct {
	config *config.Config
	logger logging.Logger
	hub    *ws.Hub
	deps   *app.Deps
}

func NewApp(ctx context.Context, c *config.Config) *App {
	logger := logging.New(c.LogFormat, os.Stdout).With("service", "artspace")

	hub := ws.NewHub(logger)
	deps := app.Open(ctx, c, ws.NewHubNotifier(hub), logger)

	return &App{config: c, logger: logger, hub: hub, deps: deps}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := hs.NewRouter(ctx, app.deps.Gallery, hs.Options{
		Secret:   []byte(app.config.SecretKey),
		TokenTTL: app.config.BrowserTokenTTL,
		Hub:      app.hub,
	}, app.logger)

	s := hs.NewServer(app.config.HTTPAddr, router, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHealthServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.GRPCHealthAddr, app.logger, app.deps.Store, app.config.HealthInterval)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a signal arrives or a listener fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.hub.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.GRPCHealthAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHealthServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.deps.Close(); err != nil {
		app.logger.Error(context.Background(), "shutdown", "err", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}

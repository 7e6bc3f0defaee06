package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/pkg/browser"

	"devdash/internal/assets"
	"devdash/internal/dashboard/config"
	"devdash/internal/dashboard/handler"
	"devdash/internal/dashboard/server"
	"devdash/internal/launch"
	"devdash/internal/metastore"
)

const assetCacheEntries = 128

type App struct {
	cfg         *config.Config
	server      *server.Server
	openBrowser func(url string) error
}

// New wires the dashboard for cfg. installDir holds the UI files and the
// tags/folders documents.
func New(cfg *config.Config, installDir string) (*App, error) {
	meta := metastore.New(installDir)
	reader, err := assets.NewReader(installDir, assetCacheEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to open install dir: %w", err)
	}
	dispatcher := launch.NewDispatcher(launch.ExecLauncher{}, cfg.Editor)

	h, err := handler.New(cfg, meta, dispatcher, reader)
	if err != nil {
		return nil, err
	}

	// Routing & Server
	mux := server.NewMux(h)
	srv := server.New(cfg.Addr(), mux)

	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &App{
		cfg:         cfg,
		server:      srv,
		openBrowser: browser.OpenURL,
	}, nil
}

// Start binds the port, points the browser at the dashboard and serves until
// Shutdown. When the port is already taken the browser is still opened,
// since the other instance is presumably this dashboard, and
// server.ErrPortInUse is returned without serving.
func (a *App) Start() error {
	err := a.server.Listen()
	a.launchBrowser()
	if err != nil {
		return err
	}
	log.Printf("Dashboard at %s (root: %s). Press ^C to stop.", a.cfg.URL(), a.cfg.Folder)
	return a.server.Serve()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

// IsPortInUse reports whether err came from a port held by another process.
func IsPortInUse(err error) bool {
	return errors.Is(err, server.ErrPortInUse)
}

func (a *App) launchBrowser() {
	if a.openBrowser == nil {
		return
	}
	if err := a.openBrowser(a.cfg.URL()); err != nil {
		log.Printf("could not open browser: %v", err)
	}
}

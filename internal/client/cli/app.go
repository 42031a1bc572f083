// Package cli is the interactive RMS client. It assembles the dependency
// graph (config, platform capabilities, storage scopes, auth store, API
// client, branding cache and gate) and runs a small REPL on top of it.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	evbus "github.com/asaskevich/EventBus"

	"github.com/rmsplatform/rms/internal/client/api"
	"github.com/rmsplatform/rms/internal/client/authstore"
	"github.com/rmsplatform/rms/internal/client/branding"
	"github.com/rmsplatform/rms/internal/client/config"
	"github.com/rmsplatform/rms/internal/client/platform"
	"github.com/rmsplatform/rms/internal/client/storage"
	"github.com/rmsplatform/rms/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	bus       evbus.Bus
	auth      *authstore.Store
	apiClient api.Client
	cache     *branding.Cache
	gate      *branding.Gate
	Mode      Mode
	reader    *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	persistent, err := storage.OpenSQLite(ctx, filepath.Join(c.DataDir, "rms.db"))
	if err != nil {
		log.Printf("error initializing local database: %s", err.Error())
		return nil, err
	}

	caps := platform.NewDesktop(c.Standalone, persistent)
	bus := evbus.New()

	auth := authstore.New(caps, bus, logger)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, auth)

	cache := branding.NewCache(persistent, apiClient, bus, logger)
	gate := branding.NewGateWithTimeout(cache, c.GateTimeout)

	return &App{
		config:    c,
		logger:    logger,
		bus:       bus,
		auth:      auth,
		apiClient: apiClient,
		cache:     cache,
		gate:      gate,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.Token(ctx) != ""
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// mode indicator accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pctx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

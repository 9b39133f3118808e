// Package app provides the dependency injection container for the
// application. It wires configuration, logging, the backend client and
// the mutation coordinator; the CLI and TUI shells only ever talk to
// the container.
package app

import (
	"time"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/grid"
	"github.com/TomasUhiaOtero/Kairos/internal/infra/api"
	"github.com/TomasUhiaOtero/Kairos/internal/infra/config"
	"github.com/TomasUhiaOtero/Kairos/internal/infra/logging"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// Options controls container construction.
type Options struct {
	// Notifier receives the coordinator's user-facing notifications.
	Notifier domain.Notifier
	// ConsoleQuiet suppresses the stderr log sink. Set when the TUI
	// owns the terminal.
	ConsoleQuiet bool
}

// Container holds the application's wired dependencies.
type Container struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Clock         domain.Clock
	Remote        domain.RemoteAPI
	Store         *store.Store
	LogPath       string

	coord    *usecase.Coordinator
	gestures *grid.Gestures
}

// New loads configuration, initializes logging and builds the
// coordinator stack.
func New(opts Options) (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	logPath := logging.Init(logging.Options{
		Level:        cfg.Log.Level,
		Dir:          cfg.Log.Dir,
		ConsoleQuiet: opts.ConsoleQuiet,
	})

	client := api.NewClient(api.Config{
		BaseURL: cfg.Backend.URL,
		Token:   cfg.Backend.Token,
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	})

	st := store.New()
	coord := usecase.NewCoordinator(st, client, opts.Notifier, cfg.Backend.UserID)

	return &Container{
		Config:        cfg,
		ConfigManager: config.NewManager(),
		Clock:         domain.RealClock{},
		Remote:        client,
		Store:         st,
		LogPath:       logPath,
		coord:         coord,
		gestures:      grid.NewGestures(coord),
	}, nil
}

// NewWithBackend builds a container around an existing backend and
// notifier, skipping config and logging setup. Tests use it to wire an
// in-memory remote.
func NewWithBackend(cfg *config.Config, remote domain.RemoteAPI, n domain.Notifier) *Container {
	st := store.New()
	coord := usecase.NewCoordinator(st, remote, n, cfg.Backend.UserID)
	return &Container{
		Config:        cfg,
		ConfigManager: config.NewManager(),
		Clock:         domain.RealClock{},
		Remote:        remote,
		Store:         st,
		coord:         coord,
		gestures:      grid.NewGestures(coord),
	}
}

// Coordinator returns the shared mutation coordinator.
func (c *Container) Coordinator() *usecase.Coordinator {
	return c.coord
}

// CoordinatorWith builds a coordinator over the same store and backend
// but with a different notifier. The TUI uses it to route notifications
// onto its status line instead of stderr.
func (c *Container) CoordinatorWith(n domain.Notifier) *usecase.Coordinator {
	return usecase.NewCoordinator(c.Store, c.Remote, n, c.Config.Backend.UserID)
}

// Gestures returns the grid gesture translator bound to the coordinator.
func (c *Container) Gestures() *grid.Gestures {
	return c.gestures
}

// Package app provides the application context and dependency management
// for the fedcal CLI. It centralizes configuration, logging and the lazily
// created fedcal client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/psuedomagi/fedcal"
	"github.com/psuedomagi/fedcal/cmd/application"
	"github.com/psuedomagi/fedcal/internal/cmd/output"
	"github.com/psuedomagi/fedcal/pkg/errors"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the fedcal application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client (lazy-initialized, singleton)
	mu       sync.RWMutex
	calendar fedcal.Client
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the
// config file, then customized by opts.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detected from the
// terminal when none was set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Calendar returns the fedcal client, creating it lazily if needed.
// This is thread-safe and ensures only one client is created.
func (a *App) Calendar() (fedcal.Client, error) {
	a.mu.RLock()
	if a.calendar != nil {
		cal := a.calendar
		a.mu.RUnlock()
		return cal, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.calendar != nil {
		return a.calendar, nil
	}

	if err := a.config.Validate(); err != nil {
		return nil, err
	}

	cal, err := fedcal.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "calendar", "", err)
	}

	a.calendar = cal
	return cal, nil
}

// Shutdown performs graceful shutdown of the application.
// The client holds no background work, so only a debug line is logged.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	built := a.calendar != nil && a.calendar.Built()
	a.mu.RUnlock()

	a.logger.Debug().Bool("tree_built", built).Msg("Shutting down")
	return nil
}

// clientOptions constructs fedcal options from the app configuration.
func (a *App) clientOptions() []fedcal.Option {
	opts := []fedcal.Option{fedcal.WithLogger(*a.logger)}

	if a.config.DataPath != "" {
		opts = append(opts, fedcal.WithDataPath(a.config.DataPath))
	}

	if a.config.RangeStart != "" && a.config.RangeEnd != "" {
		opts = append(opts, fedcal.WithRange(a.config.RangeStart, a.config.RangeEnd))
	}

	if a.config.EagerBuild {
		opts = append(opts, fedcal.WithEagerBuild(true))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCalendar sets a custom client (useful for testing).
func WithCalendar(cal fedcal.Client) Option {
	return func(a *App) error {
		a.calendar = cal
		return nil
	}
}

// Package cli holds the dependencies shared by the luigi subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/goluigi/internal/cli/styles"
	"github.com/bnema/goluigi/internal/config"
	"github.com/bnema/goluigi/internal/domain/build"
	"github.com/bnema/goluigi/internal/logging"
)

// Options are the persistent flags of the root command.
type Options struct {
	// ConfigFile replaces the XDG config file when set.
	ConfigFile string
	// Watch reloads the config file on change and re-applies the log level.
	Watch bool
}

// App holds CLI dependencies.
type App struct {
	// Config is the configuration as loaded at startup. Manager.Get returns the
	// current one when watching.
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx context.Context
}

// NewApp loads the configuration and builds the logger.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if opts.ConfigFile != "" {
		mgr.UseFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// The logger itself passes everything; the global level is the filter so a
	// config reload can change it in place.
	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	applyLevel(cfg.Logging.Level)
	ctx := logging.WithContext(context.Background(), logger)

	if created := mgr.CreatedFile(); created != "" {
		logger.Info().Str("path", created).Msg("wrote default configuration")
	}

	a := &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     ctx,
	}

	if opts.Watch {
		mgr.OnConfigChange(a.reloaded)
		if err := mgr.Watch(); err != nil {
			logger.Warn().Err(err).Msg("config watching disabled")
		}
	}
	return a, nil
}

// Ctx returns the context carrying the application logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

func (a *App) reloaded(cfg *config.Config) {
	applyLevel(cfg.Logging.Level)
	logging.FromContext(a.ctx).Info().Str("level", cfg.Logging.Level).Msg("configuration reloaded")
}

func applyLevel(level string) {
	zerolog.SetGlobalLevel(logging.ParseLevel(level))
}

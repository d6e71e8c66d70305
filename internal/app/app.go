package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/trulysimple/tsargp/hclopts"
	"github.com/trulysimple/tsargp/internal/ctxlog"
	"github.com/trulysimple/tsargp/msg"
	"github.com/trulysimple/tsargp/option"
	"github.com/trulysimple/tsargp/valid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string
	Program      string
	Width        int
	Color        string
	CheckNames   bool
	LogFormat    string
	LogLevel     string
}

// App encapsulates the viewer's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	msgCfg *msg.Config
	set    *option.Set
}

// NewApp is the constructor for the viewer. It returns a fully initialized
// App instance, including its own isolated logger and the option set loaded
// from the manifest path.
func NewApp(outW io.Writer, config *Config, loader *hclopts.Loader) (*App, error) {
	logger := newLogger(config.LogLevel, config.LogFormat)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	set, err := loader.Load(ctx, config.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	logger.Debug("Manifest loaded and translated into option set.", "options", len(set.Options))

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		msgCfg: &msg.Config{},
		set:    set,
	}, nil
}

// Set returns the loaded option set. This is primarily for testing.
func (a *App) Set() *option.Set {
	return a.set
}

// validate runs the full validation pass over the loaded option set and
// returns any non-fatal warnings. A fatal finding aborts with its error.
func (a *App) validate(ctx context.Context) ([]*msg.Error, error) {
	flags := valid.Flags{CheckNames: a.config.CheckNames}
	_, warnings, err := valid.Validate(ctx, a.set, a.msgCfg, flags)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Option set validation passed.", "warnings", len(warnings))
	return warnings, nil
}

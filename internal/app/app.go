// Package app wires the harness components together behind the CLI
// commands: it owns the configured registry, loader, runner and the
// external ec-cli collaborator, and maps component errors to the
// process outcome.
package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/questbench/internal/config"
	"github.com/agbru/questbench/internal/eccli"
	"github.com/agbru/questbench/internal/input"
	"github.com/agbru/questbench/internal/logging"
	"github.com/agbru/questbench/internal/registry"
	"github.com/agbru/questbench/internal/runner"
	"github.com/agbru/questbench/internal/ui"
)

// Application is one configured harness instance.
type Application struct {
	Config  config.AppConfig
	Solvers *registry.Registry
	Inputs  *input.Loader
	EC      *eccli.Client
	Out     io.Writer
	ErrOut  io.Writer
	Log     logging.Logger
}

// Option configures an Application during construction.
type Option func(*Application)

// WithRegistry sets a custom solver registry, mainly for tests.
func WithRegistry(r *registry.Registry) Option {
	return func(a *Application) { a.Solvers = r }
}

// WithECClient sets a custom ec-cli client, mainly for tests.
func WithECClient(c *eccli.Client) Option {
	return func(a *Application) { a.EC = c }
}

// New creates an Application from the resolved configuration. The
// default registry is the process-wide one populated by the solutions
// package.
func New(cfg config.AppConfig, out, errOut io.Writer, opts ...Option) *Application {
	ui.InitTheme(cfg.NoColor)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a := &Application{
		Config: cfg,
		Out:    out,
		ErrOut: errOut,
		Log:    logging.NewLogger(errOut, "questbench"),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Solvers == nil {
		a.Solvers = registry.Default
	}
	if a.Inputs == nil {
		a.Inputs = input.NewLoader(cfg.DataDir)
	}
	if a.EC == nil {
		a.EC = eccli.New()
	}
	return a
}

// runner builds the Runner for this configuration.
func (a *Application) runner() *runner.Runner {
	out := a.Out
	if a.Config.Quiet {
		out = io.Discard
	}
	return &runner.Runner{
		Iterations: a.Config.Iterations,
		Timeout:    a.Config.Timeout,
		Out:        out,
		Log:        a.Log,
	}
}

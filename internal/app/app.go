package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/answergrid/internal/answers"
	"github.com/specialistvlad/answergrid/internal/component"
	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/specialistvlad/answergrid/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cockpit  *slog.Logger
	config   *Config
	prompter config.Prompter

	definition *component.Application
	answers    answers.Data
	result     *Result
}

// Option customizes an App.
type Option func(*options)

type options struct {
	logW io.Writer
}

// WithLogWriter sends log output to w instead of the output writer.
func WithLogWriter(w io.Writer) Option {
	return func(o *options) {
		o.logW = w
	}
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated loggers. Dry-run artifacts and answers samples go to outW,
// as do logs unless WithLogWriter says otherwise. The prompter is used for
// params that have to be asked for; it may be nil when asking is disabled.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, prompter config.Prompter, opts ...Option) *App {
	o := options{logW: outW}
	for _, opt := range opts {
		opt(&o)
	}

	logger, cockpit := newLoggers(cfg.LogLevel, cfg.LogFormat, o.logW)
	ctxlog.FromContext(ctx).Debug("Handing over to the application logger.")
	logger.Debug("Logger configured successfully.", "format", cfg.LogFormat, "level", cfg.LogLevel)

	return &App{
		outW:     outW,
		logger:   logger,
		cockpit:  cockpit,
		config:   cfg,
		prompter: prompter,
	}
}

// Definition returns the loaded application definition, or nil before
// LoadDefinition has run.
func (a *App) Definition() *component.Application {
	return a.definition
}

// Result returns the outcome of the last Run or GenerateAnswers call.
func (a *App) Result() *Result {
	return a.result
}

// Execute performs the action named in the configuration.
func (a *App) Execute(ctx context.Context) error {
	if a.config.Action == ActionGenAnswers {
		return a.GenerateAnswers(ctx)
	}
	return a.Run(ctx)
}

// withLoggers attaches the app's loggers to a caller supplied context.
func (a *App) withLoggers(ctx context.Context) context.Context {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return ctxlog.WithCockpit(ctx, a.cockpit)
}

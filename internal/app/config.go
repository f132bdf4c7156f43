package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/answergrid/internal/answers"
)

// Actions the App can perform.
const (
	ActionRun        = "run"
	ActionGenAnswers = "genanswers"
)

// Providers lists the provider names an application can be rendered for.
var Providers = []string{"docker", "kubernetes", "openshift", "marathon"}

// LogFormats lists the accepted values of Config.LogFormat.
var LogFormats = []string{"default", "stdout", "json", "cockpit", "none"}

// LogLevels lists the accepted values of Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Action string

	AppPath          string // directory holding the application definition
	AnswersPath      string // explicit answers file; defaults to <AppPath>/answers.conf when present
	WriteAnswersPath string // where to persist the resolved answers after a run
	AnswersFormat    string // format of generated answers samples
	Destination      string // root directory for rendered artifacts

	Provider   string // command-line provider override
	Ask        bool
	SkipAsking bool
	DryRun     bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.AppPath == "" {
		return nil, errors.New("AppPath is a required configuration field and cannot be empty")
	}

	if cfg.Action == "" {
		cfg.Action = ActionRun
	}
	if cfg.Action != ActionRun && cfg.Action != ActionGenAnswers {
		return nil, fmt.Errorf("unknown action %q", cfg.Action)
	}

	if cfg.AnswersFormat == "" {
		cfg.AnswersFormat = string(answers.DefaultFormat)
	}
	format, err := answers.ParseFormat(cfg.AnswersFormat)
	if err != nil {
		return nil, err
	}
	cfg.AnswersFormat = string(format)

	if cfg.Provider != "" && !slices.Contains(Providers, cfg.Provider) {
		return nil, fmt.Errorf("unknown provider %q (supported: %v)", cfg.Provider, Providers)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "default"
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("unknown log format %q (supported: %v)", cfg.LogFormat, LogFormats)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("unknown log level %q (supported: %v)", cfg.LogLevel, LogLevels)
	}

	return &cfg, nil
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/answergrid/internal/answers"
	"github.com/specialistvlad/answergrid/internal/app"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the outcome of a successful Parse.
type Options struct {
	Config *app.Config

	// NonInteractive selects environment variables instead of the terminal
	// for values the answers do not provide.
	NonInteractive bool
}

const usageHeader = `
AnswerGrid - Resolve application parameters from answers, defaults and prompts,
and render provider artifacts with the result.

Usage:
  answergrid run [options] APP_PATH
  answergrid genanswers [options] APP_PATH

Actions:
  run         Resolve every parameter and render the artifacts for the provider.
  genanswers  Write a sample answers file without asking for anything.

Arguments:
  APP_PATH
    Directory containing the .hcl application definition.

Options:
`

// Parse processes command-line arguments. It returns the parsed Options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("answergrid", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, usageHeader)
		fmt.Fprint(output, flagSet.FlagUsages())
	}

	answersFlag := flagSet.StringP("answers", "a", "", "Path to an answers file. Defaults to APP_PATH/answers.conf when present.")
	writeAnswersFlag := flagSet.String("write-answers", "", "Write the resolved answers to this file after the run.")
	formatFlag := flagSet.String("answers-format", string(answers.DefaultFormat), "Format of generated answers: "+joinFormats()+".")
	providerFlag := flagSet.String("provider", "", "Provider to render for, overriding the answers: "+strings.Join(app.Providers, ", ")+".")
	askFlag := flagSet.Bool("ask", false, "Ask for every parameter the answers do not set, even those with a default.")
	noPromptFlag := flagSet.Bool("no-prompt", false, "Never ask; parameters without a value stay empty.")
	nonInteractiveFlag := flagSet.Bool("non-interactive", false, "Read missing values from ANSWERGRID_* environment variables instead of the terminal.")
	destinationFlag := flagSet.String("destination", "", "Directory for rendered artifacts or the generated answers sample.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print rendered artifacts instead of writing them.")
	verboseFlag := flagSet.BoolP("verbose", "v", false, "Verbose output (same as --log-level=debug).")
	quietFlag := flagSet.BoolP("quiet", "q", false, "Quiet output (same as --log-level=warn).")
	logFormatFlag := flagSet.String("log-format", "default", "Log output format: "+strings.Join(app.LogFormats, ", ")+".")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level: "+strings.Join(app.LogLevels, ", ")+".")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No action provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	action := flagSet.Arg(0)
	if action != app.ActionRun && action != app.ActionGenAnswers {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown action %q: must be '%s' or '%s'", action, app.ActionRun, app.ActionGenAnswers)}
	}
	if flagSet.NArg() != 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("%s: exactly one APP_PATH argument is required", action)}
	}
	path := flagSet.Arg(1)
	slog.Debug("Application path determined.", "action", action, "path", path)

	if *verboseFlag && *quietFlag {
		return nil, false, &ExitError{Code: 2, Message: "--verbose and --quiet cannot be combined"}
	}
	if *askFlag && *noPromptFlag {
		return nil, false, &ExitError{Code: 2, Message: "--ask and --no-prompt cannot be combined"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if !flagSet.Changed("log-level") {
		switch {
		case *verboseFlag:
			logLevel = "debug"
		case *quietFlag:
			logLevel = "warn"
		}
	}

	config, err := app.NewConfig(app.Config{
		Action:           action,
		AppPath:          path,
		AnswersPath:      *answersFlag,
		WriteAnswersPath: *writeAnswersFlag,
		AnswersFormat:    *formatFlag,
		Destination:      *destinationFlag,
		Provider:         *providerFlag,
		Ask:              *askFlag,
		SkipAsking:       *noPromptFlag,
		DryRun:           *dryRunFlag,
		LogFormat:        strings.ToLower(*logFormatFlag),
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return &Options{Config: config, NonInteractive: *nonInteractiveFlag}, false, nil
}

func joinFormats() string {
	names := make([]string, len(answers.Formats))
	for i, f := range answers.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

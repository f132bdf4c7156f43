package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/answergrid/internal/app"
	"github.com/specialistvlad/answergrid/internal/cli"
	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/specialistvlad/answergrid/internal/prompt"
)

// main is the entrypoint for the answergrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Rendered output goes to outW; logs and prompts go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) (err error) {
	opts, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	var prompter config.Prompter
	if opts.NonInteractive {
		prompter = prompt.NewEnv(prompt.DefaultEnvPrefix)
	} else {
		terminal := prompt.NewTerminal(errW)
		defer terminal.Close()
		prompter = terminal
	}

	answergridApp := app.NewApp(ctx, outW, opts.Config, prompter, app.WithLogWriter(errW))
	return answergridApp.Execute(ctx)
}

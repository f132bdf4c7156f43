package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/answergrid/internal/answers"
	"github.com/specialistvlad/answergrid/internal/config"
)

// DefaultDestinationDir is the directory, relative to the application, that
// receives rendered artifacts when no destination is configured.
const DefaultDestinationDir = "rendered"

// Run resolves every param of the application, renders the artifacts of the
// selected provider and writes them below the destination directory. With
// DryRun the artifacts are printed instead. The resolved answers are
// persisted when WriteAnswersPath is set.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLoggers(ctx)
	a.logger.Debug("App.Run method started.")
	a.cockpit.Info("Starting run.")

	opts := config.LoadOptions{
		Ask:        a.config.Ask,
		SkipAsking: a.config.SkipAsking,
		Prompter:   a.prompter,
	}
	result, err := a.resolve(ctx, opts, true)
	if err != nil {
		a.cockpit.Error(err.Error())
		return err
	}
	a.result = result

	if a.config.DryRun {
		a.logger.Info("Dry run, artifacts are not written.", "count", len(result.Artifacts))
		for _, art := range result.Artifacts {
			fmt.Fprintf(a.outW, "--- %s ---\n%s\n", art.Target, art.Content)
		}
	} else if err := a.writeArtifacts(result.Artifacts); err != nil {
		a.cockpit.Error(err.Error())
		return err
	}

	if a.config.WriteAnswersPath != "" {
		if err := a.writeAnswers(a.config.WriteAnswersPath, result.Root); err != nil {
			a.cockpit.Error(err.Error())
			return err
		}
	}

	a.logger.Info("🏁 Run finished.", "provider", result.Provider, "artifacts", len(result.Artifacts))
	a.cockpit.Info("Run finished.")
	return nil
}

// destination returns the configured destination or the default one inside
// the application directory.
func (a *App) destination() string {
	if a.config.Destination != "" {
		return a.config.Destination
	}
	return filepath.Join(a.config.AppPath, DefaultDestinationDir)
}

func (a *App) writeArtifacts(artifacts []Artifact) error {
	dest := a.destination()
	for _, art := range artifacts {
		target := filepath.Join(dest, art.Target)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating artifact directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(art.Content), 0o644); err != nil {
			return fmt.Errorf("writing artifact %s: %w", target, err)
		}
		a.logger.Debug("Artifact written.", "namespace", art.Namespace, "path", target)
	}
	return nil
}

// writeAnswers persists the runtime answers of root. The format follows the
// file extension, falling back to the configured answers format.
func (a *App) writeAnswers(path string, root *config.Config) error {
	format, err := answers.FormatFromPath(path)
	if err != nil {
		format = answers.Format(a.config.AnswersFormat)
	}
	if err := answers.WriteFile(path, format, root.RuntimeAnswers()); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	a.logger.Info("Answers written.", "path", path, "format", format)
	return nil
}

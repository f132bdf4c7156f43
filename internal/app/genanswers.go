package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/answergrid/internal/answers"
	"github.com/specialistvlad/answergrid/internal/config"
)

// GenerateAnswers walks the application without asking for anything and
// writes the resulting answers as a sample file. Params without a default
// appear with an empty value for the user to fill in. The sample goes to
// <Destination>/<answers file>.sample, or to the output writer when no
// destination is configured.
func (a *App) GenerateAnswers(ctx context.Context) error {
	ctx = a.withLoggers(ctx)
	a.logger.Debug("App.GenerateAnswers method started.")

	result, err := a.resolve(ctx, config.LoadOptions{SkipAsking: true}, false)
	if err != nil {
		return err
	}
	a.result = result

	format := answers.Format(a.config.AnswersFormat)
	data := result.Root.RuntimeAnswers()

	if a.config.Destination == "" {
		return answers.Write(a.outW, format, data)
	}

	if err := os.MkdirAll(a.config.Destination, 0o755); err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	path := filepath.Join(a.config.Destination, format.FileName()+answers.SampleSuffix)
	if err := answers.WriteFile(path, format, data); err != nil {
		return fmt.Errorf("failed to write answers sample: %w", err)
	}
	a.logger.Info("Answers sample written.", "path", path, "format", format)
	return nil
}

package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/answergrid/internal/answers"
	"github.com/specialistvlad/answergrid/internal/component"
	"github.com/specialistvlad/answergrid/internal/ctxlog"
	"github.com/specialistvlad/answergrid/internal/fsutil"
)

// LoadDefinition parses the application definition from Config.AppPath.
func (a *App) LoadDefinition(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading application definition...", "app_path", a.config.AppPath)

	definition, err := component.LoadApplication(ctx, a.config.AppPath)
	if err != nil {
		return fmt.Errorf("failed to load application: %w", err)
	}
	a.definition = definition
	return nil
}

// LoadAnswers reads the answers file. An explicit Config.AnswersPath must
// exist; otherwise answers.conf in the application directory is used when
// present. No answers file at all is not an error.
func (a *App) LoadAnswers(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	path := a.config.AnswersPath
	if path == "" {
		candidate := filepath.Join(a.config.AppPath, answers.DefaultFileName)
		if !fsutil.FileExists(candidate) {
			logger.Debug("No answers file found, continuing without answers.", "looked_for", candidate)
			a.answers = answers.Data{}
			return nil
		}
		path = candidate
	}

	logger.Debug("Loading answers...", "path", path)
	data, err := answers.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}
	a.answers = data
	logger.Debug("Answers loaded.", "namespaces", len(data))
	return nil
}

package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/answergrid/internal/app"
	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Root is the temporary directory the files were written to.
	Root      string
	LogOutput string
	Output    string
	Err       error
	App       *app.App
}

// WriteFiles writes files (path relative to a fresh temporary directory →
// content) and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	// The test provides relative paths (e.g., "app/artifacts/web.json"),
	// which naturally creates the subdirectory structure within root.
	for name, content := range files {
		filePath := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return root
}

// RunApp provides a standardized harness for running an application through
// app.App using a default background context.
func RunApp(t *testing.T, files map[string]string, cfg app.Config, prompter config.Prompter) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, cfg, prompter)
}

// RunAppWithContext writes files to a temporary directory and executes the
// configured action. Relative paths in cfg are resolved against that
// directory; AppPath defaults to "app".
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, prompter config.Prompter) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	if cfg.AppPath == "" {
		cfg.AppPath = "app"
	}
	cfg.AppPath = under(root, cfg.AppPath)
	cfg.AnswersPath = under(root, cfg.AnswersPath)
	cfg.WriteAnswersPath = under(root, cfg.WriteAnswersPath)
	cfg.Destination = under(root, cfg.Destination)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "stdout"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	logBuffer := &SafeBuffer{}
	output := &SafeBuffer{}
	testApp := app.NewApp(ctx, output, appConfig, prompter, app.WithLogWriter(logBuffer))
	runErr := testApp.Execute(ctx)

	if os.Getenv("AGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Root:      root,
		LogOutput: logBuffer.String(),
		Output:    output.String(),
		Err:       runErr,
		App:       testApp,
	}
}

// under joins a relative path to root; empty and absolute paths are kept.
func under(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ReadResultFile returns the content of a file below the harness root.
func ReadResultFile(t *testing.T, result *HarnessResult, rel string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(result.Root, rel))
	require.NoError(t, err, "expected file %s to exist", rel)
	return string(content)
}

// AssertArtifact checks that a rendered artifact was written below the
// default destination of the application at appDir.
func AssertArtifact(t *testing.T, result *HarnessResult, appDir, target, expected string) {
	t.Helper()

	got := ReadResultFile(t, result, filepath.Join(appDir, "rendered", target))
	require.Equal(t, expected, got, "artifact %s", target)
}

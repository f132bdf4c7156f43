package integration_tests

import (
	"testing"

	"github.com/specialistvlad/answergrid/internal/app"
	"github.com/specialistvlad/answergrid/internal/prompt"
	"github.com/specialistvlad/answergrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnvPrompt_NonInteractiveRun verifies that a non-interactive run takes
// missing values from the environment.
func TestEnvPrompt_NonInteractiveRun(t *testing.T) {
	// --- Arrange ---
	t.Setenv("AGRIDIT_MARIADB__PASSWORD", "from-env")
	files := map[string]string{
		"app/main.hcl":   dbApp,
		"app/secret.txt": "${image}:${password}",
	}

	// --- Act ---
	result := testutil.RunApp(t, files, app.Config{}, prompt.NewEnv("AGRIDIT_"))

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertArtifact(t, result, "app", "kubernetes/mariadb/secret.txt", "mariadb:from-env")
}

// TestEnvPrompt_MissingVariable verifies that the error names the variable to
// set.
func TestEnvPrompt_MissingVariable(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"app/main.hcl":   dbApp,
		"app/secret.txt": "${image}:${password}",
	}

	// --- Act ---
	result := testutil.RunApp(t, files, app.Config{}, prompt.NewEnv("AGRIDIT_MISSING_"))

	// --- Assert ---
	require.Error(t, result.Err)
	var missing *prompt.MissingError
	require.ErrorAs(t, result.Err, &missing)
	assert.Contains(t, result.Err.Error(), "AGRIDIT_MISSING_MARIADB__PASSWORD")
}

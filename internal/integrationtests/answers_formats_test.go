package integration_tests

import (
	"testing"

	"github.com/specialistvlad/answergrid/internal/app"
	"github.com/specialistvlad/answergrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

const formatsApp = `
application "hello" {
  component "web" {
    param "image" {}
    param "replicas" { default = 1 }
    artifacts "kubernetes" { files = ["web.txt"] }
  }
}
`

// TestAnswersFormats verifies that every supported answers format feeds the
// same values into a run.
func TestAnswersFormats(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "ini", file: "answers.ini", content: "[web]\nimage = nginx\nreplicas = 3\n"},
		{name: "json", file: "answers.json", content: `{"web": {"image": "nginx", "replicas": 3, /* comment */}}`},
		{name: "yaml", file: "answers.yaml", content: "web:\n  image: nginx\n  replicas: 3\n"},
		{name: "toml", file: "answers.toml", content: "[web]\nimage = \"nginx\"\nreplicas = 3\n"},
		{name: "hcl", file: "answers.hcl", content: "namespace \"web\" {\n  image    = \"nginx\"\n  replicas = 3\n}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			files := map[string]string{
				"app/main.hcl": formatsApp,
				"app/web.txt":  "${image} x${replicas}",
				tc.file:        tc.content,
			}

			// --- Act ---
			result := testutil.RunApp(t, files, app.Config{AnswersPath: tc.file}, nil)

			// --- Assert ---
			require.NoError(t, result.Err)
			testutil.AssertArtifact(t, result, "app", "kubernetes/web/web.txt", "nginx x3")
		})
	}
}

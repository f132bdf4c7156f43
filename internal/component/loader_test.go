package component

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/answergrid/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles writes files (relative path → content) under a temp dir and
// returns the dir.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestLoadApplication(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"app/main.hcl": `
application "hello" {
  description = "Hello world"

  param "namespace" {
    default = "default"
  }

  component "web" {
    description = "Frontend"

    param "image" {
      description = "Image"
      default     = "centos/httpd"
    }
    param "replicas" {
      default = 2
    }
    param "password" {
      hidden = true
      constraint {
        allowed_pattern = "[a-z]+"
        description     = "lowercase only"
      }
    }

    artifacts "kubernetes" {
      files = ["artifacts/kubernetes/web.json"]
    }
    artifacts "docker" {
      files = ["artifacts/docker/run"]
    }

    component "db" {
      param "user" {}
    }
  }

  component "extras" {
    source = "../extras"
  }
}
`,
		"app/nested/ignored.hcl": `this is not parsed {`,
	})
	dir := filepath.Join(root, "app")

	app, err := LoadApplication(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "hello", app.Name)
	assert.Equal(t, "Hello world", app.Description)
	assert.Equal(t, dir, app.Dir)
	assert.Equal(t, []param.Param{{Name: "namespace", Default: "default"}}, app.Params)
	require.Len(t, app.Components, 2)

	web := app.Components[0]
	expectedParams := []param.Param{
		{Name: "image", Description: "Image", Default: "centos/httpd"},
		{Name: "replicas", Default: 2.0},
		{Name: "password", Hidden: true, Constraints: []param.Constraint{{AllowedPattern: "[a-z]+", Description: "lowercase only"}}},
	}
	if diff := cmp.Diff(expectedParams, web.Params); diff != "" {
		t.Errorf("web params mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Frontend", web.Description)
	assert.Equal(t, []string{"artifacts/kubernetes/web.json"}, web.ArtifactsFor("kubernetes"))
	assert.Equal(t, []string{"artifacts/docker/run"}, web.ArtifactsFor("docker"))
	assert.Empty(t, web.ArtifactsFor("openshift"))
	assert.False(t, web.IsExternal())

	require.Len(t, web.Components, 1)
	assert.Equal(t, "db", web.Components[0].Name)
	assert.Equal(t, []param.Param{{Name: "user"}}, web.Components[0].Params)

	extras := app.Components[1]
	assert.True(t, extras.IsExternal())
	assert.Equal(t, filepath.Join(root, "extras"), extras.Source)
}

func TestApplication_Walk(t *testing.T) {
	app := &Application{Components: []*Component{
		{Name: "web", Components: []*Component{{Name: "db"}, {Name: "cache"}}},
		{Name: "worker"},
	}}

	var visited []string
	err := app.Walk(func(path []string, c *Component) error {
		visited = append(visited, filepath.Join(path...))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"web", filepath.Join("web", "db"), filepath.Join("web", "cache"), "worker"}, visited)
}

func TestLoadApplication_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		files       map[string]string
		expectedErr string
	}{
		{
			name:        "no application block",
			files:       map[string]string{"main.hcl": ``},
			expectedErr: "no application block",
		},
		{
			name: "two application blocks across files",
			files: map[string]string{
				"a.hcl": `application "a" {}`,
				"b.hcl": `application "b" {}`,
			},
			expectedErr: "Duplicate \"application\" block",
		},
		{
			name:        "syntax error",
			files:       map[string]string{"main.hcl": `application "a" {`},
			expectedErr: "failed to parse HCL file",
		},
		{
			name: "duplicate param",
			files: map[string]string{"main.hcl": `
application "a" {
  param "x" {}
  param "x" {}
}`},
			expectedErr: "Duplicate param definition",
		},
		{
			name: "duplicate component",
			files: map[string]string{"main.hcl": `
application "a" {
  component "web" {}
  component "web" {}
}`},
			expectedErr: "Duplicate component definition",
		},
		{
			name: "invalid component name",
			files: map[string]string{"main.hcl": `
application "a" {
  component "web.db" {}
}`},
			expectedErr: "Invalid component name",
		},
		{
			name: "reserved component name",
			files: map[string]string{"main.hcl": `
application "a" {
  component "general" {}
}`},
			expectedErr: "Invalid component name",
		},
		{
			name: "invalid param name",
			files: map[string]string{"main.hcl": `
application "a" {
  param "1st" {}
}`},
			expectedErr: "Invalid param name",
		},
		{
			name: "duplicate artifacts",
			files: map[string]string{"main.hcl": `
application "a" {
  component "web" {
    artifacts "docker" { files = ["a"] }
    artifacts "docker" { files = ["b"] }
  }
}`},
			expectedErr: "Duplicate artifacts definition",
		},
		{
			name: "artifacts without files",
			files: map[string]string{"main.hcl": `
application "a" {
  component "web" {
    artifacts "docker" {}
  }
}`},
			expectedErr: "files",
		},
		{
			name: "bad constraint pattern",
			files: map[string]string{"main.hcl": `
application "a" {
  param "x" {
    constraint { allowed_pattern = "(" }
  }
}`},
			expectedErr: "Invalid constraint",
		},
		{
			name: "default violates constraint",
			files: map[string]string{"main.hcl": `
application "a" {
  param "x" {
    default = "ABC"
    constraint { allowed_pattern = "[a-z]+" }
  }
}`},
			expectedErr: "Default violates constraint",
		},
		{
			name: "external component with artifacts",
			files: map[string]string{"main.hcl": `
application "a" {
  component "ext" {
    source = "../ext"
    artifacts "docker" { files = ["a"] }
  }
}`},
			expectedErr: "Invalid external component",
		},
		{
			name: "unknown attribute",
			files: map[string]string{"main.hcl": `
application "a" {
  image = "x"
}`},
			expectedErr: "Unsupported argument",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeFiles(t, tc.files)

			_, err := LoadApplication(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestLoadApplication_MissingDir(t *testing.T) {
	_, err := LoadApplication(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

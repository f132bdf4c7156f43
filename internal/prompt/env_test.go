package prompt

import (
	"context"
	"testing"

	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestEnv_Keys(t *testing.T) {
	env := &Env{Prefix: DefaultEnvPrefix}

	assert.Equal(t, []string{"ANSWERGRID_DB_PASSWORD"}, env.Keys(namespace.Global, "db-password"))
	assert.Equal(t, []string{"ANSWERGRID_WEB_DB__IMAGE", "ANSWERGRID_IMAGE"}, env.Keys("web.db", "image"))
}

func TestEnv_AskFor(t *testing.T) {
	testCases := []struct {
		name        string
		vars        map[string]string
		param       param.Param
		expected    any
		expectedErr bool
	}{
		{
			name:     "namespaced variable wins",
			vars:     map[string]string{"ANSWERGRID_WEB__IMAGE": "nginx", "ANSWERGRID_IMAGE": "httpd"},
			param:    param.Param{Name: "image"},
			expected: "nginx",
		},
		{
			name:     "plain variable",
			vars:     map[string]string{"ANSWERGRID_IMAGE": "httpd"},
			param:    param.Param{Name: "image"},
			expected: "httpd",
		},
		{
			name:     "empty variable falls back to default",
			vars:     map[string]string{"ANSWERGRID_IMAGE": ""},
			param:    param.Param{Name: "image", Default: "centos/httpd"},
			expected: "centos/httpd",
		},
		{
			name:        "missing",
			vars:        map[string]string{},
			param:       param.Param{Name: "image"},
			expectedErr: true,
		},
		{
			name:        "constraint violation",
			vars:        map[string]string{"ANSWERGRID_IMAGE": "UPPER"},
			param:       param.Param{Name: "image", Constraints: []param.Constraint{{AllowedPattern: "[a-z]+"}}},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := &Env{Prefix: DefaultEnvPrefix, Lookup: lookupFrom(tc.vars)}

			value, err := env.AskFor(context.Background(), "web", tc.param.Name, tc.param)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestEnv_MissingErrorNamesVariable(t *testing.T) {
	env := &Env{Prefix: DefaultEnvPrefix, Lookup: lookupFrom(nil)}

	_, err := env.AskFor(context.Background(), "web", "image", param.Param{Name: "image"})
	var missing *MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ANSWERGRID_WEB__IMAGE", missing.Source)
	assert.Contains(t, err.Error(), "ANSWERGRID_WEB__IMAGE")
}

func TestEnv_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("AGRIDTEST_IMAGE", "from-env")
	env := NewEnv("AGRIDTEST_")

	value, err := env.AskFor(context.Background(), "", "image", param.Param{Name: "image"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

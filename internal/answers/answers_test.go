package answers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() Data {
	return Data{
		"general": {"namespace": "default", "provider": "kubernetes"},
		"web":     {"image": "centos/httpd", "port": "80"},
		"web.db":  {"password": "s3cret #1"},
	}
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, f, sampleData()))

			got, err := Load(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(sampleData(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s\noutput:\n%s", diff, buf.String())
			}
		})
	}
}

func TestWrite_IsDeterministic(t *testing.T) {
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var first, second bytes.Buffer
			require.NoError(t, Write(&first, f, sampleData()))
			require.NoError(t, Write(&second, f, sampleData()))
			assert.Equal(t, first.String(), second.String())

			out := first.String()
			assert.Less(t, strings.Index(out, "general"), strings.Index(out, "web"), "namespaces are sorted")
			assert.Less(t, strings.Index(out, "image"), strings.Index(out, "port"), "keys are sorted")
		})
	}
}

func TestLoad_INI(t *testing.T) {
	src := `
; answers for hello
top = level

[general]
provider = openshift

[web]
image = nginx
empty =

[web.db]
user = admin
# passwords and URLs may contain comment characters
password = abc#123
url = http://x;y
`
	got, err := Load(strings.NewReader(src), INI)
	require.NoError(t, err)
	assert.Equal(t, Data{
		"general": {"top": "level", "provider": "openshift"},
		"web":     {"image": "nginx", "empty": ""},
		"web.db":  {"user": "admin", "password": "abc#123", "url": "http://x;y"},
	}, got)
}

func TestLoad_JSONWithComments(t *testing.T) {
	src := `{
  // global values
  "general": {"provider": "docker", "replicas": 2,},
  "web": {"labels": {"tier": "web"}},
  "empty": {},
  "nothing": null,
}`
	got, err := Load(strings.NewReader(src), JSON)
	require.NoError(t, err)
	assert.Equal(t, Data{
		"general": {"provider": "docker", "replicas": 2.0},
		"web":     {"labels": map[string]any{"tier": "web"}},
	}, got)
}

func TestLoad_YAML(t *testing.T) {
	src := `
general:
  provider: kubernetes
web:
  replicas: 3
  ports: [80, 443]
db:
`
	got, err := Load(strings.NewReader(src), YAML)
	require.NoError(t, err)
	assert.Equal(t, Data{
		"general": {"provider": "kubernetes"},
		"web":     {"replicas": 3, "ports": []any{80, 443}},
	}, got)
}

func TestLoad_TOML(t *testing.T) {
	src := `
[general]
provider = "marathon"

["web.db"]
replicas = 2
debug = true
`
	got, err := Load(strings.NewReader(src), TOML)
	require.NoError(t, err)
	assert.Equal(t, Data{
		"general": {"provider": "marathon"},
		"web.db":  {"replicas": int64(2), "debug": true},
	}, got)
}

func TestLoad_HCL(t *testing.T) {
	src := `
namespace "general" {
  provider = "docker"
}

namespace "web.db" {
  replicas = 2
  labels   = { tier = "db" }
  secret   = null
}
`
	got, err := Load(strings.NewReader(src), HCL)
	require.NoError(t, err)
	assert.Equal(t, Data{
		"general": {"provider": "docker"},
		"web.db":  {"replicas": 2.0, "labels": map[string]any{"tier": "db"}, "secret": nil},
	}, got)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		format Format
		src    string
	}{
		{INI, "[general\nprovider = x"},
		{JSON, `{"general": "not a section"}`},
		{YAML, "general: [1, 2"},
		{TOML, "[general\n"},
		{HCL, `namespace "a" {`},
		{HCL, `general { a = 1 }`},
		{HCL, "namespace \"a\" {}\nnamespace \"a\" {}\n"},
		{YAML, "web..db:\n  image: nginx\n"},
		{JSON, `{"web db": {"image": "nginx"}}`},
	}
	for _, tc := range testCases {
		t.Run(string(tc.format), func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.src), tc.format)
			assert.Error(t, err)
		})
	}

	_, err := Load(strings.NewReader(""), Format("xml"))
	assert.Error(t, err)
}

func TestWrite_NilAndCompositeValues(t *testing.T) {
	data := Data{"web": {"password": nil, "labels": map[string]any{"tier": "web"}, "replicas": 2.0}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, INI, data))
	got, err := Load(&buf, INI)
	require.NoError(t, err)
	assert.Equal(t, Data{"web": {"password": "", "labels": `{"tier":"web"}`, "replicas": "2"}}, got)

	buf.Reset()
	require.NoError(t, Write(&buf, TOML, data))
	got, err = Load(&buf, TOML)
	require.NoError(t, err)
	assert.NotContains(t, got["web"], "password", "toml cannot hold nil values")
	assert.Equal(t, map[string]any{"tier": "web"}, got["web"]["labels"])
}

func TestWriteFile_LoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, f.FileName())
			require.NoError(t, WriteFile(path, f, sampleData()))

			got, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, sampleData(), got)
		})
	}

	_, err := LoadFile(filepath.Join(dir, "missing.conf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(filepath.Join(dir, "answers.xml"))
	assert.Error(t, err)
}

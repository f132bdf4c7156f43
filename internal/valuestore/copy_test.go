package valuestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopySection_IsDeep(t *testing.T) {
	original := map[string]any{
		"image": "centos/httpd",
		"ports": []any{80, 443},
		"labels": map[string]any{
			"tier": "web",
		},
		"hosts": []string{"a", "b"},
		"env":   map[string]string{"K": "V"},
	}

	copied := CopySection(original)
	assert.Equal(t, original, copied)

	copied["ports"].([]any)[0] = 8080
	copied["labels"].(map[string]any)["tier"] = "db"
	copied["hosts"].([]string)[0] = "z"
	copied["env"].(map[string]string)["K"] = "changed"

	assert.Equal(t, 80, original["ports"].([]any)[0])
	assert.Equal(t, "web", original["labels"].(map[string]any)["tier"])
	assert.Equal(t, "a", original["hosts"].([]string)[0])
	assert.Equal(t, "V", original["env"].(map[string]string)["K"])
}

func TestCopyValue_Scalars(t *testing.T) {
	assert.Equal(t, "x", CopyValue("x"))
	assert.Equal(t, 3, CopyValue(3))
	assert.Nil(t, CopyValue(nil))
}

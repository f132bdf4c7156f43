package hclutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestToNative(t *testing.T) {
	testCases := []struct {
		name     string
		input    cty.Value
		expected any
	}{
		{name: "null", input: cty.NullVal(cty.String), expected: nil},
		{name: "unknown", input: cty.UnknownVal(cty.String), expected: nil},
		{name: "string", input: cty.StringVal("nginx"), expected: "nginx"},
		{name: "number", input: cty.NumberIntVal(3), expected: 3.0},
		{name: "bool", input: cty.True, expected: true},
		{
			name:     "tuple",
			input:    cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}),
			expected: []any{"a", 1.0},
		},
		{
			name: "object",
			input: cty.ObjectVal(map[string]cty.Value{
				"tier":   cty.StringVal("web"),
				"nested": cty.MapVal(map[string]cty.Value{"k": cty.StringVal("v")}),
			}),
			expected: map[string]any{"tier": "web", "nested": map[string]any{"k": "v"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToNative(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("ToNative() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromNative_RoundTrip(t *testing.T) {
	input := map[string]any{
		"image":    "nginx",
		"replicas": 2.0,
		"debug":    false,
		"ports":    []any{80.0, "443"},
		"labels":   map[string]any{"tier": "web"},
		"empty":    map[string]any{},
	}

	val, err := FromNative(input)
	require.NoError(t, err)

	got, err := ToNative(val)
	require.NoError(t, err)
	if diff := cmp.Diff(input, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromNative_Scalars(t *testing.T) {
	val, err := FromNative(3)
	require.NoError(t, err)
	assert.True(t, val.RawEquals(cty.NumberIntVal(3)))

	val, err = FromNative(nil)
	require.NoError(t, err)
	assert.True(t, val.IsNull())

	val, err = FromNative([]string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, val.Type().IsListType())
}

func TestFindUniqueBlock(t *testing.T) {
	src := `
application "a" {}
application "b" {}
other {}
`
	file, diags := hclsyntax.ParseConfig([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors())
	content, diags := file.Body.Content(&hcl.BodySchema{Blocks: []hcl.BlockHeaderSchema{
		{Type: "application", LabelNames: []string{"name"}},
		{Type: "other"},
	}})
	require.False(t, diags.HasErrors())

	block, diags := FindUniqueBlock(content.Blocks, "other")
	assert.False(t, diags.HasErrors())
	require.NotNil(t, block)

	_, diags = FindUniqueBlock(content.Blocks, "application")
	assert.True(t, diags.HasErrors())

	block, diags = FindUniqueBlock(content.Blocks, "missing")
	assert.Nil(t, block)
	assert.Empty(t, diags)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}

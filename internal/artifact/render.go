// Package artifact renders a component's artifact templates with the values
// resolved for its namespace.
//
// Templates reference values as ${name} or $name; $$ produces a literal $.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// referencePattern matches $$, ${name} and $name. Braced names may also
// contain dashes.
var referencePattern = regexp.MustCompile(`\$(?:(\$)|\{([A-Za-z_][A-Za-z0-9_-]*)\}|([A-Za-z_][A-Za-z0-9_]*))`)

// UnresolvedError lists the references a template uses that have no value.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return "unresolved template variables: " + strings.Join(e.Names, ", ")
}

// Render substitutes every reference in template with its value from values.
// A nil value counts as missing. All missing names are reported together in
// an *UnresolvedError, sorted and without duplicates.
func Render(template string, values map[string]any) (string, error) {
	missing := make(map[string]struct{})

	result := referencePattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := referencePattern.FindStringSubmatch(match)
		if groups[1] != "" {
			return "$"
		}
		name := groups[2]
		if name == "" {
			name = groups[3]
		}
		value, exists := values[name]
		if !exists || value == nil {
			missing[name] = struct{}{}
			return match
		}
		return format(value)
	})

	if len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", &UnresolvedError{Names: names}
	}
	return result, nil
}

// RenderFile reads the template at path and renders it.
func RenderFile(path string, values map[string]any) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading artifact %s: %w", path, err)
	}
	rendered, err := Render(string(raw), values)
	if err != nil {
		return "", fmt.Errorf("rendering artifact %s: %w", path, err)
	}
	return rendered, nil
}

// format turns a resolved value into template text. Whole floats print
// without a fraction so that numeric answers read back as written.
func format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	default:
		return fmt.Sprint(v)
	}
}

// internal/namespace/parser.go
package namespace

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single component name, e.g., `web` or `mariadb-centos7`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidSegmentName checks for undesirable but technically valid names.
func isValidSegmentName(name string) bool {
	if name == "-" || name == "_" || name == Global {
		return false
	}
	return true
}

// ValidateName reports whether name can be used as a single namespace segment.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("component name cannot be empty")
	}
	if !segmentRegex.MatchString(name) {
		return fmt.Errorf("invalid component name format: %q", name)
	}
	if !isValidSegmentName(name) {
		return fmt.Errorf("invalid component name: %q", name)
	}
	return nil
}

// Parse creates a new Path by parsing its canonical string representation.
func Parse(raw string) (*Path, error) {
	if raw == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	path := &Path{}
	for _, segment := range strings.Split(raw, Separator) {
		if segment == "" {
			return nil, fmt.Errorf("namespace %q contains empty segment", raw)
		}
		if err := ValidateName(segment); err != nil {
			return nil, err
		}
		path.Segments = append(path.Segments, segment)
	}

	return path, nil
}

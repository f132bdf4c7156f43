// internal/namespace/address.go
package namespace

import (
	"reflect"
	"strings"
)

// String serializes the Path into its canonical dotted representation.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	return strings.Join(p.Segments, Separator)
}

// Equal checks for deep equality between two Path pointers.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	return reflect.DeepEqual(p.Segments, other.Segments)
}

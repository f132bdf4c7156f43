// internal/namespace/split.go
package namespace

import "strings"

// Global is the namespace above all components. The empty namespace is an
// alias for it.
const Global = "general"

// Separator joins the segments of a namespace.
const Separator = "."

// Normalize maps the empty namespace to Global and returns any other
// namespace unchanged.
func Normalize(ns string) string {
	if ns == "" {
		return Global
	}
	return ns
}

// Split derives the parent and current parts of a namespace. A root namespace
// is never decomposed: its parent is empty and its current part is the whole
// string. Otherwise the split happens on the last separator.
func Split(ns string, isRoot bool) (parent, current string) {
	if isRoot {
		return "", ns
	}
	i := strings.LastIndex(ns, Separator)
	if i < 0 {
		return "", ns
	}
	return ns[:i], ns[i+len(Separator):]
}

// Join appends a child name to a parent namespace. Children of the empty or
// Global namespace are top-level and carry no prefix.
func Join(parent, child string) string {
	if parent == "" || parent == Global {
		return child
	}
	return parent + Separator + child
}

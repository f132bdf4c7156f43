// internal/namespace/types.go
package namespace

// Path is the validated, structured form of a namespace.
type Path struct {
	Segments []string
}

// NewPath creates a path from already validated segments.
func NewPath(segments ...string) *Path {
	return &Path{Segments: append([]string(nil), segments...)}
}

// Depth returns the number of segments in the path.
func (p *Path) Depth() int {
	if p == nil {
		return 0
	}
	return len(p.Segments)
}

// Name returns the last segment, or an empty string for an empty path.
func (p *Path) Name() string {
	if p.Depth() == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// Parent returns the path without its last segment. The parent of a
// top-level path is nil.
func (p *Path) Parent() *Path {
	if p.Depth() <= 1 {
		return nil
	}
	return NewPath(p.Segments[:len(p.Segments)-1]...)
}

// Child returns a new path with name appended.
func (p *Path) Child(name string) *Path {
	if p == nil {
		return NewPath(name)
	}
	return NewPath(append(append([]string(nil), p.Segments...), name)...)
}

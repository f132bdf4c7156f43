package prompt

import (
	"context"

	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/param"
)

// Static answers from a fixed set of values keyed by namespace, then param
// name. Values in the Global section apply to every namespace.
type Static map[string]map[string]any

var _ config.Prompter = Static(nil)

// AskFor implements config.Prompter.
func (s Static) AskFor(ctx context.Context, ns, name string, p param.Param) (any, error) {
	for _, section := range []string{namespace.Normalize(ns), namespace.Global} {
		if value, ok := s[section][name]; ok {
			if err := p.Validate(value); err != nil {
				return nil, err
			}
			return value, nil
		}
	}
	return nil, &MissingError{Namespace: ns, Name: name}
}

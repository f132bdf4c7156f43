package prompt

import (
	"context"
	"os"
	"strings"

	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/param"
)

// DefaultEnvPrefix prefixes every variable read by Env.
const DefaultEnvPrefix = "ANSWERGRID_"

// Env answers from environment variables. For param "image" in namespace
// "web.db" it reads ANSWERGRID_WEB_DB__IMAGE, then ANSWERGRID_IMAGE.
type Env struct {
	Prefix string
	Lookup func(key string) (string, bool)
}

var _ config.Prompter = (*Env)(nil)

// NewEnv creates an Env reading the process environment.
func NewEnv(prefix string) *Env {
	return &Env{Prefix: prefix, Lookup: os.LookupEnv}
}

// Keys returns the variable names consulted for a param, most specific first.
func (e *Env) Keys(ns, name string) []string {
	plain := e.Prefix + envName(name)
	if ns == "" || ns == namespace.Global {
		return []string{plain}
	}
	return []string{e.Prefix + envName(ns) + "__" + envName(name), plain}
}

// AskFor implements config.Prompter.
func (e *Env) AskFor(ctx context.Context, ns, name string, p param.Param) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	keys := e.Keys(ns, name)
	for _, key := range keys {
		value, ok := lookup(key)
		if !ok || value == "" {
			continue
		}
		if err := p.Validate(value); err != nil {
			return nil, err
		}
		return value, nil
	}
	if p.HasDefault() {
		return p.Default, nil
	}
	return nil, &MissingError{Namespace: ns, Name: name, Source: keys[0]}
}

// envName upper-cases s and replaces everything but letters and digits with
// underscores.
func envName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

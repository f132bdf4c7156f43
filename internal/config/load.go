package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/answergrid/internal/ctxlog"
	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/param"
)

// ErrNoPrompter is returned by Load when a parameter has to be asked for but
// no Prompter was supplied.
var ErrNoPrompter = errors.New("no prompter available to ask for missing parameter")

// Prompter asks an external actor (usually a human) for the value of a
// parameter. Implementations may block.
type Prompter interface {
	AskFor(ctx context.Context, ns, name string, p param.Param) (any, error)
}

// PrompterFunc adapts an ordinary function to the Prompter interface.
type PrompterFunc func(ctx context.Context, ns, name string, p param.Param) (any, error)

// AskFor calls f.
func (f PrompterFunc) AskFor(ctx context.Context, ns, name string, p param.Param) (any, error) {
	return f(ctx, ns, name, p)
}

// LoadOptions controls how Load treats parameters without an answer.
type LoadOptions struct {
	// Ask prompts for every unanswered parameter, even those with a default.
	Ask bool

	// SkipAsking never prompts for parameters without a default; they are
	// committed as nil instead. Ask takes precedence.
	SkipAsking bool

	// Prompter collects values from the user.
	Prompter Prompter
}

// Load resolves every declared parameter and stores the result in this
// namespace's data. Parameters are processed in declaration order. For each
// one the answers are searched in this namespace, the parent namespace, then
// Global. Without an answer the Prompter is asked when opts.Ask is set or when
// the parameter has no default and opts.SkipAsking is not set; otherwise the
// default (possibly nil) is used.
//
// Errors from the Prompter are returned unchanged apart from being wrapped
// with the parameter name; parameters stored before the failure remain
// stored.
func (c *Config) Load(ctx context.Context, opts LoadOptions) error {
	logger := ctxlog.FromContext(ctx)
	cockpit := ctxlog.CockpitFromContext(ctx)
	ns := c.Namespace()
	logger.Debug("Loading params.", "namespace", ns, "count", len(c.params))

	for _, p := range c.params {
		value, found := lookup(c.answers, p.Name, ns, c.parentNamespace, namespace.Global)

		switch {
		case !found && (opts.Ask || (!p.HasDefault() && !opts.SkipAsking)):
			cockpit.Info(fmt.Sprintf("%s is missing in answers.", p.Name), "namespace", ns)
			if opts.Prompter == nil {
				return fmt.Errorf("param '%s' in namespace '%s': %w", p.Name, ns, ErrNoPrompter)
			}
			asked, err := opts.Prompter.AskFor(ctx, ns, p.Name, p)
			if err != nil {
				return fmt.Errorf("asking for param '%s' in namespace '%s': %w", p.Name, ns, err)
			}
			value = asked
		case !found:
			value = p.Default
		}

		logger.Debug("Param resolved.", "namespace", ns, "param", p.Name, "from_answers", found)
		c.data.Set(ns, p.Name, value)
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/answergrid/internal/artifact"
	"github.com/specialistvlad/answergrid/internal/component"
	"github.com/specialistvlad/answergrid/internal/config"
	"github.com/specialistvlad/answergrid/internal/ctxlog"
	"github.com/specialistvlad/answergrid/internal/inmemorystore"
	"github.com/specialistvlad/answergrid/internal/namespace"
)

// Result is what a walk over the application produced.
type Result struct {
	// Provider is the provider the application was resolved for.
	Provider string

	// Root is the Config of the Global namespace. All component Configs share
	// its stores, so Root.RuntimeAnswers() reflects every resolved value.
	Root *config.Config

	// Artifacts are the rendered templates in walk order.
	Artifacts []Artifact
}

// Artifact is one rendered template.
type Artifact struct {
	Namespace string
	// Source is the template file.
	Source string
	// Target is the output path relative to the destination directory:
	// <provider>/<namespace>/<file name>.
	Target  string
	Content string
}

// walker resolves every component of an application in depth-first order.
type walker struct {
	provider string
	opts     config.LoadOptions
	render   bool
	result   *Result
}

// resolve loads the definition and answers, selects the provider and walks
// the component tree. Artifacts are only rendered when render is set.
func (a *App) resolve(ctx context.Context, opts config.LoadOptions, render bool) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := a.LoadDefinition(ctx); err != nil {
		return nil, err
	}
	if err := a.LoadAnswers(ctx); err != nil {
		return nil, err
	}

	cli := inmemorystore.New()
	if a.config.Provider != "" {
		cli.Set(namespace.Global, config.ProviderKey, a.config.Provider)
	}
	root := config.New(namespace.Global,
		config.WithParams(a.definition.Params...),
		config.WithAnswers(inmemorystore.NewFrom(a.answers)),
		config.WithData(inmemorystore.New()),
		config.WithCLI(cli),
	)

	provider, err := selectProvider(root)
	if err != nil {
		return nil, err
	}
	logger.Info("Provider selected.", "provider", provider)

	w := &walker{
		provider: provider,
		opts:     opts,
		render:   render,
		result:   &Result{Provider: provider, Root: root},
	}
	if err := w.load(ctx, root); err != nil {
		return nil, err
	}
	if err := w.walk(ctx, root, namespace.Global, a.definition.Components); err != nil {
		return nil, err
	}
	return w.result, nil
}

// selectProvider applies the command-line override, falling back to the
// provider the root Config resolves. The choice is written back into data.
func selectProvider(root *config.Config) (string, error) {
	var provider string
	if v, ok := root.CLI().Get(namespace.Global, config.ProviderKey); ok {
		provider, _ = v.(string)
	}
	if provider == "" {
		provider = root.Provider()
	}
	if !slices.Contains(Providers, provider) {
		return "", fmt.Errorf("unknown provider %q (supported: %v)", provider, Providers)
	}
	root.Set(config.ProviderKey, provider)
	return provider, nil
}

func (w *walker) walk(ctx context.Context, parent *config.Config, parentNS string, components []*component.Component) error {
	logger := ctxlog.FromContext(ctx)
	cockpit := ctxlog.CockpitFromContext(ctx)

	for _, c := range components {
		ns := namespace.Join(parentNS, c.Name)

		if c.IsExternal() {
			logger.Debug("Loading external application.", "namespace", ns, "source", c.Source)
			external, err := component.LoadApplication(ctx, c.Source)
			if err != nil {
				return fmt.Errorf("component '%s': %w", ns, err)
			}
			params := append(slices.Clone(c.Params), external.Params...)
			cfg := config.New(ns,
				config.WithRoot(),
				config.WithAnswers(parent.Answers()),
				config.WithData(parent.Data()),
				config.WithCLI(parent.CLI()),
				config.WithParams(params...),
			)
			if err := w.load(ctx, cfg); err != nil {
				return err
			}
			if err := w.walk(ctx, cfg, ns, external.Components); err != nil {
				return err
			}
			continue
		}

		cfg := parent.Clone(ns, config.WithParams(c.Params...))
		if err := w.load(ctx, cfg); err != nil {
			return err
		}
		if w.render {
			if err := w.renderArtifacts(cfg, c); err != nil {
				return err
			}
		}
		cockpit.Info(fmt.Sprintf("Component %s resolved.", ns))
		logger.Debug("Component resolved.", "namespace", ns, "params", len(c.Params))

		if err := w.walk(ctx, cfg, ns, c.Components); err != nil {
			return err
		}
	}
	return nil
}

// load resolves the params of one namespace and checks their constraints.
// Only the value stored for this namespace is checked; values inherited from
// the parent or Global namespace are validated where they were declared.
func (w *walker) load(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Load(ctx, w.opts); err != nil {
		return fmt.Errorf("loading namespace '%s': %w", cfg.Namespace(), err)
	}
	for _, p := range cfg.Params() {
		value, _ := cfg.Data().Get(cfg.Namespace(), p.Name)
		if err := p.Validate(value); err != nil {
			return fmt.Errorf("namespace '%s': %w", cfg.Namespace(), err)
		}
	}
	return nil
}

func (w *walker) renderArtifacts(cfg *config.Config, c *component.Component) error {
	files := c.ArtifactsFor(w.provider)
	if len(files) == 0 {
		return nil
	}
	values := cfg.Context()
	for _, file := range files {
		source := file
		if !filepath.IsAbs(source) {
			source = filepath.Join(c.Dir, file)
		}
		content, err := artifact.RenderFile(source, values)
		if err != nil {
			return fmt.Errorf("component '%s': %w", cfg.Namespace(), err)
		}
		w.result.Artifacts = append(w.result.Artifacts, Artifact{
			Namespace: cfg.Namespace(),
			Source:    source,
			Target:    filepath.Join(w.provider, cfg.Namespace(), filepath.Base(file)),
			Content:   content,
		})
	}
	return nil
}

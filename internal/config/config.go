package config

import (
	"reflect"

	"github.com/specialistvlad/answergrid/internal/inmemorystore"
	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/param"
	"github.com/specialistvlad/answergrid/internal/valuestore"
)

// DefaultProvider is the provider used when neither the answers nor the
// resolved data name one.
const DefaultProvider = "kubernetes"

// ProviderKey is the Global key holding the selected provider name.
const ProviderKey = "provider"

// Config stores configuration for one component of an application.
type Config struct {
	namespace        string
	isRoot           bool
	parentNamespace  string
	currentNamespace string
	params           []param.Param

	answers valuestore.Store
	data    valuestore.Store
	cli     valuestore.Store

	defaultProvider string

	context     map[string]any
	provider    string
	providerSet bool
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithParams sets the parameter descriptors loaded by Load.
func WithParams(params ...param.Param) Option {
	return func(c *Config) {
		c.params = append([]param.Param(nil), params...)
	}
}

// WithAnswers shares an answers store with the new Config.
func WithAnswers(store valuestore.Store) Option {
	return func(c *Config) {
		c.answers = store
	}
}

// WithData shares a data store with the new Config.
func WithData(store valuestore.Store) Option {
	return func(c *Config) {
		c.data = store
	}
}

// WithCLI shares a command-line overrides store with the new Config.
func WithCLI(store valuestore.Store) Option {
	return func(c *Config) {
		c.cli = store
	}
}

// WithRoot marks the Config as the root of an application tree. Its namespace
// is not split into parent and current parts.
func WithRoot() Option {
	return func(c *Config) {
		c.isRoot = true
	}
}

// WithDefaultProvider overrides DefaultProvider for this Config.
func WithDefaultProvider(name string) Option {
	return func(c *Config) {
		c.defaultProvider = name
	}
}

// New creates a Config for namespace ns. Stores that are not supplied start
// empty.
func New(ns string, opts ...Option) *Config {
	c := &Config{
		namespace:       ns,
		defaultProvider: DefaultProvider,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.answers == nil {
		c.answers = inmemorystore.New()
	}
	if c.data == nil {
		c.data = inmemorystore.New()
	}
	if c.cli == nil {
		c.cli = inmemorystore.New()
	}
	c.parentNamespace, c.currentNamespace = namespace.Split(c.namespace, c.isRoot)
	return c
}

// Namespace returns the normalized namespace of this Config. The empty
// namespace is reported as namespace.Global.
func (c *Config) Namespace() string {
	return namespace.Normalize(c.namespace)
}

// ParentNamespace returns the namespace one level up, or an empty string when
// there is none.
func (c *Config) ParentNamespace() string {
	return c.parentNamespace
}

// CurrentNamespace returns the last segment of the namespace (the whole
// namespace for a root Config).
func (c *Config) CurrentNamespace() string {
	return c.currentNamespace
}

// IsRoot reports whether this Config is the root of an application tree.
func (c *Config) IsRoot() bool {
	return c.isRoot
}

// Params returns the declared parameters of this Config.
func (c *Config) Params() []param.Param {
	return append([]param.Param(nil), c.params...)
}

// Answers returns the shared answers store.
func (c *Config) Answers() valuestore.Store {
	return c.answers
}

// Data returns the shared data store.
func (c *Config) Data() valuestore.Store {
	return c.data
}

// CLI returns the shared command-line overrides store.
func (c *Config) CLI() valuestore.Store {
	return c.cli
}

// Clone creates a Config for namespace ns that shares the answers, data and
// CLI stores of c. Params and cached views are not inherited; opts may supply
// params for the new Config.
func (c *Config) Clone(ns string, opts ...Option) *Config {
	shared := []Option{
		WithAnswers(c.answers),
		WithData(c.data),
		WithCLI(c.cli),
		WithDefaultProvider(c.defaultProvider),
	}
	return New(ns, append(shared, opts...)...)
}

// Equal reports whether both Configs have the same namespace and hold equal
// answers, data and CLI values.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c == other {
		return true
	}
	return c.namespace == other.namespace &&
		reflect.DeepEqual(c.answers.Snapshot(), other.answers.Snapshot()) &&
		reflect.DeepEqual(c.data.Snapshot(), other.data.Snapshot()) &&
		reflect.DeepEqual(c.cli.Snapshot(), other.cli.Snapshot())
}

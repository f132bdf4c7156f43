package config

import (
	"reflect"

	"github.com/specialistvlad/answergrid/internal/namespace"
	"github.com/specialistvlad/answergrid/internal/valuestore"
)

// defaultAnswers seeds every set of runtime answers.
var defaultAnswers = map[string]map[string]any{
	namespace.Global: {"namespace": "default"},
}

// present reports whether v counts as a usable value. Nil, empty strings,
// false, numeric zero and empty collections are all treated as unset, so an
// explicitly stored empty value never shadows a lower-precedence source.
func present(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

// lookup walks namespaces in order and returns the first present value.
// Empty namespaces are skipped.
func lookup(store valuestore.Store, key string, namespaces ...string) (any, bool) {
	for _, ns := range namespaces {
		if ns == "" {
			continue
		}
		if v, ok := store.Get(ns, key); ok && present(v) {
			return v, true
		}
	}
	return nil, false
}

// Get resolves key from the data accessible to this namespace. The order is:
//
//  1. data[namespace]
//  2. data[parent namespace]
//  3. data[Global]
//  4. answers[namespace]
//  5. answers[parent namespace]
//  6. answers[Global]
//
// The boolean is false when no source holds a present value. CLI overrides
// are not consulted.
func (c *Config) Get(key string) (any, bool) {
	ns := c.Namespace()
	if v, ok := lookup(c.data, key, ns, c.parentNamespace, namespace.Global); ok {
		return v, true
	}
	return lookup(c.answers, key, ns, c.parentNamespace, namespace.Global)
}

// GetString is Get for callers that only deal in strings. Absent and
// non-string values yield an empty string.
func (c *Config) GetString(key string) string {
	v, ok := c.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set stores value for key in this namespace's data.
func (c *Config) Set(key string, value any) {
	c.data.Set(c.Namespace(), key, value)
}

// Context returns the flattened values used to render this component's
// artifacts: data[Global], data[namespace], answers[Global] and
// answers[namespace], later layers overriding earlier ones. Parent namespace
// values are not included.
//
// The result is computed once and cached for the lifetime of the Config;
// later writes to the stores are not reflected.
func (c *Config) Context() map[string]any {
	if c.context != nil {
		return c.context
	}
	ns := c.Namespace()
	ctx := make(map[string]any)
	for _, section := range []map[string]any{
		c.data.Section(namespace.Global),
		c.data.Section(ns),
		c.answers.Section(namespace.Global),
		c.answers.Section(ns),
	} {
		for k, v := range section {
			ctx[k] = v
		}
	}
	c.context = ctx
	return c.context
}

// Provider returns the provider selected for the application. It is read
// from data, then answers, in the Global namespace; when neither holds one the
// default provider is written into data and returned. The result is cached.
func (c *Config) Provider() string {
	if c.providerSet {
		return c.provider
	}
	c.providerSet = true
	if v, ok := lookup(c.data, ProviderKey, namespace.Global); ok {
		if s, isString := v.(string); isString {
			c.provider = s
			return c.provider
		}
	}
	if v, ok := lookup(c.answers, ProviderKey, namespace.Global); ok {
		if s, isString := v.(string); isString {
			c.provider = s
			return c.provider
		}
	}
	c.data.Set(namespace.Global, ProviderKey, c.defaultProvider)
	c.provider = c.defaultProvider
	return c.provider
}

// Globals returns the merged Global values: answers, then data, then CLI
// overrides.
func (c *Config) Globals() map[string]any {
	out := make(map[string]any)
	for _, section := range []map[string]any{
		c.answers.Section(namespace.Global),
		c.data.Section(namespace.Global),
		c.cli.Section(namespace.Global),
	} {
		for k, v := range section {
			out[k] = v
		}
	}
	return out
}

// RuntimeAnswers returns everything resolved so far in answers-file shape:
// the default answers, the selected provider, then every answers section with
// the matching data section merged on top. Empty sections are dropped.
func (c *Config) RuntimeAnswers() map[string]map[string]any {
	out := make(map[string]map[string]any)
	merge := func(sections map[string]map[string]any) {
		for ns, section := range sections {
			if out[ns] == nil {
				out[ns] = make(map[string]any)
			}
			for k, v := range section {
				out[ns][k] = valuestore.CopyValue(v)
			}
		}
	}

	merge(defaultAnswers)
	merge(map[string]map[string]any{namespace.Global: {ProviderKey: c.Provider()}})
	merge(c.answers.Snapshot())
	merge(c.data.Snapshot())

	for ns, section := range out {
		if len(section) == 0 {
			delete(out, ns)
		}
	}
	return out
}

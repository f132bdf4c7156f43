// Package valuestore defines the interface for the namespace-indexed value
// stores that back configuration resolution.
//
// # Why Value Store Exists
//
// Every component of an application gets its own configuration view, but all
// of those views must read and write the same underlying values: a provider
// name resolved by one component has to be visible to its siblings and to its
// parent. The store is that shared backing. Configuration views hold a handle
// to a Store and never copy it; the namespace is the only discriminator
// between the entries of different components.
//
// Three stores take part in a deployment:
//   - **Answers**: values supplied by the user in an answers file
//   - **Data**: values computed or collected while resolving parameters
//   - **CLI**: overrides given on the command line
//
// # Lifecycle
//
// Stores are created once per run, populated while the component tree is
// walked, snapshotted to persist the resolved answers, and discarded.
package valuestore

// Store is a two-level map: namespace → key → value.
//
// # Thread-Safety Requirements
//
// Implementations MUST be safe for concurrent use. The component walk is
// sequential today, but every Config sharing a Store writes through the same
// handle, and locking in the store keeps that invariant if the walk is ever
// parallelized.
//
// # Typical Implementation
//
// See internal/inmemorystore for the in-memory implementation.
type Store interface {
	// Get returns the value stored for key in namespace ns. The boolean
	// reports whether the key exists at all; it says nothing about whether
	// the value is empty.
	Get(ns, key string) (any, bool)

	// Set stores value for key in namespace ns, overwriting silently.
	Set(ns, key string, value any)

	// Delete removes key from namespace ns. Deleting a missing key is a no-op.
	Delete(ns, key string)

	// Section returns a copy of every entry in namespace ns. A namespace that
	// was never written yields an empty, non-nil map.
	Section(ns string) map[string]any

	// Namespaces returns the names of all non-empty namespaces, sorted.
	Namespaces() []string

	// Snapshot returns a deep copy of all non-empty namespaces. Mutating the
	// result never affects the store.
	Snapshot() map[string]map[string]any
}

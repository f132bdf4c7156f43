package inmemorystore

import (
	"sort"
	"sync"

	"github.com/specialistvlad/answergrid/internal/valuestore"
)

// Store implements valuestore.Store using nested maps and a mutex for
// thread-safe concurrent access.
type Store struct {
	mu       sync.RWMutex
	sections map[string]map[string]any // Key: namespace, Value: key → value
}

// New creates a new, empty in-memory value store.
func New() *Store {
	return &Store{
		sections: make(map[string]map[string]any),
	}
}

// NewFrom creates a store pre-populated with a deep copy of sections.
func NewFrom(sections map[string]map[string]any) *Store {
	s := New()
	for ns, section := range sections {
		if section == nil {
			continue
		}
		s.sections[ns] = valuestore.CopySection(section)
	}
	return s
}

var _ valuestore.Store = (*Store)(nil)

// Get retrieves the value of key in namespace ns.
func (s *Store) Get(ns, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, ok := s.sections[ns]
	if !ok {
		return nil, false
	}
	value, ok := section[key]
	return value, ok
}

// Set stores value for key in namespace ns, creating the section if needed.
func (s *Store) Set(ns, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, ok := s.sections[ns]
	if !ok {
		section = make(map[string]any)
		s.sections[ns] = section
	}
	section[key] = value
}

// Delete removes key from namespace ns.
func (s *Store) Delete(ns, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, ok := s.sections[ns]
	if !ok {
		return
	}
	delete(section, key)
	if len(section) == 0 {
		delete(s.sections, ns)
	}
}

// Section returns a deep copy of namespace ns.
func (s *Store) Section(ns string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return valuestore.CopySection(s.sections[ns])
}

// Namespaces returns the sorted names of all non-empty namespaces.
func (s *Store) Namespaces() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.sections))
	for ns, section := range s.sections {
		if len(section) > 0 {
			names = append(names, ns)
		}
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a deep copy of all non-empty namespaces.
func (s *Store) Snapshot() map[string]map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]any, len(s.sections))
	for ns, section := range s.sections {
		if len(section) == 0 {
			continue
		}
		out[ns] = valuestore.CopySection(section)
	}
	return out
}

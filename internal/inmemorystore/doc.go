// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the valuestore.Store interface.
//
// # Purpose
//
// This package implements the answers, data and CLI stores for a single run.
// A store is created fresh for each run and shared by handle between every
// configuration view produced while walking the component tree.
//
// # Concurrency Model
//
// A single sync.RWMutex guards the nested maps. Sections are created lazily on
// first write and never handed out directly: readers always receive copies,
// so no caller can mutate a section without holding the lock.
package inmemorystore

// SPDX-License-Identifier: MIT
//
// File: guarded.go
// Role: Guarded, a single-lock boundary for sharing a GraphLike across goroutines.
// Concurrency:
//   - One sync.RWMutex guards every operation on the wrapped graph.
//   - Every method acquires the lock and releases it with defer, so the lock
//     is dropped on normal return, early return and panic alike.
//   - Mutations take the write lock; queries take the read lock.

package core

import "sync"

// Guarded serialises access to a GraphLike. The wrapped value must not be
// used directly once it has been handed to NewGuarded.
type Guarded struct {
	mu sync.RWMutex
	g  GraphLike
}

// compile-time check
var _ GraphLike = (*Guarded)(nil)

// NewGuarded wraps g. Returns ErrNilGraph if g is nil.
func NewGuarded(g GraphLike) (*Guarded, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Guarded{g: g}, nil
}

// VertexCount returns the wrapped graph's vertex count.
func (s *Guarded) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.VertexCount()
}

// EdgeCount returns the wrapped graph's edge count.
func (s *Guarded) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.EdgeCount()
}

// AddEdge inserts {u,v} under the write lock.
func (s *Guarded) AddEdge(u, v int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddEdge(u, v)
}

// HasEdge queries {u,v} under the read lock.
func (s *Guarded) HasEdge(u, v int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.HasEdge(u, v)
}

// Degree returns v's degree under the read lock.
func (s *Guarded) Degree(v int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Degree(v)
}

// Neighbors returns v's neighbour list under the read lock.
func (s *Guarded) Neighbors(v int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Neighbors(v)
}

// HasEulerianCycle runs the whole decision under one read lock, so the
// verdict reflects a single consistent state of the graph.
func (s *Guarded) HasEulerianCycle() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return EulerianCycle(s.g)
}

// IsConnected runs Connected under one read lock.
func (s *Guarded) IsConnected() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Connected(s.g)
}

// Do runs fn with exclusive access to the wrapped graph, for callers that
// need several operations to be atomic. fn must not retain g.
func (s *Guarded) Do(fn func(g GraphLike) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.g)
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: GraphLike capability interface, policy getters and the Stats snapshot.
// Policy:
//   - No algorithms here; decision procedures live in connectivity.go.
//   - Every representation (sparse Graph, matrix.Dense) satisfies GraphLike,
//     so Connected/EulerianCycle work on all of them unchanged.

package core

// GraphLike is the capability set the decision procedures need from a graph
// representation. Implementations must report vertex IDs as 0..VertexCount()-1
// and reject anything else with an error wrapping ErrVertexOutOfRange.
//
// Degree must count a self-loop twice. Neighbors must list a self-loop once
// and every other incident edge once per parallel copy.
type GraphLike interface {
	VertexCount() int
	EdgeCount() int
	AddEdge(u, v int) error
	HasEdge(u, v int) (bool, error)
	Degree(v int) (int, error)
	Neighbors(v int) ([]int, error)
}

// compile-time check
var _ GraphLike = (*Graph)(nil)

// Looped reports whether self-loops are accepted by AddEdge.
//
// Complexity: O(1).
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are accepted by AddEdge.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Stats is a read-only snapshot of structural counters.
type Stats struct {
	VertexCount    int // fixed vertex count
	EdgeCount      int // successful insertions
	IsolatedCount  int // vertices of degree 0
	OddDegreeCount int // vertices of odd degree
	LoopCount      int // self-loops across all vertices
	MaxDegree      int // largest degree, 0 for an edgeless graph
}

// Stats produces a Stats snapshot of g.
//
// Implementation:
//   - Stage 1: copy the O(1) counters.
//   - Stage 2: scan every vertex once, classifying by degree.
//
// Complexity: O(V).
func (g *Graph) Stats() Stats {
	s := Stats{
		VertexCount: g.vertexCount,
		EdgeCount:   g.edgeCount,
	}

	var d int
	for v := 0; v < g.vertexCount; v++ {
		d = g.degree(v)
		switch {
		case d == 0:
			s.IsolatedCount++
		case d%2 != 0:
			s.OddDegreeCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		s.LoopCount += g.loops[v]
	}

	return s
}

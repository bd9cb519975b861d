// File: methods_vertices.go
// Role: Vertex queries: VertexCount/Degree/Neighbors and range validation.
//
// Degree policy:
//   - Every non-loop incident edge counts 1 (parallel copies count separately).
//   - A self-loop counts 2, although it occupies a single adjacency entry.

package core

import "fmt"

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.vertexCount
}

// Degree returns the number of edge endpoints incident to v.
//
// Implementation:
//   - Stage 1: validate v.
//   - Stage 2: len(adjacency[v]) plus one extra per self-loop on v.
//
// Errors:
//   - ErrVertexOutOfRange if v is invalid.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", v, err)
	}

	return g.degree(v), nil
}

// degree is Degree without range checks.
func (g *Graph) degree(v int) int {
	return len(g.adjacency[v]) + g.loops[v]
}

// Neighbors returns a copy of v's neighbour list in insertion order.
// A self-loop appears once; a parallel edge appears once per copy.
//
// Errors:
//   - ErrVertexOutOfRange if v is invalid.
//
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, err)
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// checkVertex returns an error wrapping ErrVertexOutOfRange unless 0 <= v < n.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.vertexCount {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.vertexCount, ErrVertexOutOfRange)
	}

	return nil
}

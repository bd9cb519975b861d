// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/EdgeCount/Edges.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbour lists grow in insertion order; nothing is ever re-sorted.
// Failure atomicity:
//   - AddEdge validates both endpoints and the insertion policy before it
//     touches adjacency storage, so a failed call leaves g unchanged.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v}.
//
// Steps:
//  1. Validate u and v against [0, VertexCount()).
//  2. Reject u == v if the graph was built WithoutLoops.
//  3. Reject an existing {u,v} if the graph was built WithoutMultiEdges.
//  4. Append v to adjacency[u]; for u != v also append u to adjacency[v],
//     otherwise record the loop so Degree counts it twice.
//  5. Increment the edge counter and append to the insertion log.
//
// With the default policy nothing is de-duplicated: inserting {u,v} twice
// doubles both adjacency entries and EdgeCount.
//
// Complexity: O(1) amortized; O(deg u) when multi-edges are disallowed.
func (g *Graph) AddEdge(u, v int) error {
	// 1) Input validation
	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, err)
	}

	// 2) Policy checks
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.allowMulti && g.hasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}

	// 3) Link adjacency
	g.adjacency[u] = append(g.adjacency[u], v)
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], u) // mirror, undirected
	} else {
		g.loops[u]++
	}

	// 4) Book-keeping
	g.edgeCount++
	g.edges = append(g.edges, Edge{U: u, V: v})

	return nil
}

// HasEdge reports whether v appears in u's neighbour list.
//
// This is a list-membership test, so it costs O(deg u). Because AddEdge
// mirrors every edge, HasEdge(u,v) == HasEdge(v,u) for edges inserted through
// AddEdge.
//
// Errors:
//   - ErrVertexOutOfRange if either index is invalid.
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.checkVertex(u); err != nil {
		return false, fmt.Errorf("HasEdge(%d,%d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return false, fmt.Errorf("HasEdge(%d,%d): %w", u, v, err)
	}

	return g.hasEdge(u, v), nil
}

// hasEdge is HasEdge without range checks.
func (g *Graph) hasEdge(u, v int) bool {
	for _, w := range g.adjacency[u] {
		if w == v {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of successful AddEdge calls.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Edges returns a copy of the insertion log: one Edge per successful AddEdge,
// oldest first, endpoints as passed by the caller.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

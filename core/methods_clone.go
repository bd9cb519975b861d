// File: methods_clone.go
// Role: Deep copies of Graph instances.
// Determinism:
//   - The clone keeps neighbour order and the insertion log, so every query
//     (Neighbors, Edges, traversal order) answers identically on both copies.

package core

// Clone returns a deep copy of g: policy flags, vertex count, adjacency lists,
// loop counters and the insertion log. Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		allowLoops:  g.allowLoops,
		allowMulti:  g.allowMulti,
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
		adjacency:   make([][]int, g.vertexCount),
		loops:       make([]int, g.vertexCount),
		edges:       make([]Edge, len(g.edges)),
	}
	// Copy adjacency lists one vertex at a time; empty lists stay nil.
	for v, nbs := range g.adjacency {
		if len(nbs) == 0 {
			continue
		}
		clone.adjacency[v] = append([]int(nil), nbs...)
	}
	copy(clone.loops, g.loops)
	copy(clone.edges, g.edges)

	return clone
}

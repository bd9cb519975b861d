// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Traversal-based decision procedures over any GraphLike:
//       Connected, EulerianCycle, ComponentCount, OddDegreeVertices,
//       plus the Graph methods that delegate to them.
// Determinism:
//   - The traversal root is always the lowest-numbered non-isolated vertex.
//   - OddDegreeVertices returns IDs ascending.
// Complexity:
//   - O(V + total adjacency entries) for every traversal-based function.

package core

import "fmt"

// Connected reports whether every non-isolated vertex of g is reachable from
// the first non-isolated vertex. Isolated vertices (degree 0) never affect the
// verdict and a graph without edges is vacuously connected.
//
// Implementation:
//   - Stage 1: find the root (first v with Degree(v) > 0); none ⇒ true.
//   - Stage 2: explicit-stack DFS from the root marking visited vertices.
//   - Stage 3: any unvisited vertex with Degree > 0 ⇒ false.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - Any error returned by g's Degree/Neighbors (none for well-formed graphs).
func Connected(g GraphLike) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}

	// Stage 1: root selection
	root, err := firstNonIsolated(g)
	if err != nil {
		return false, err
	}
	if root < 0 {
		return true, nil
	}

	// Stage 2: traversal
	visited := make([]bool, g.VertexCount())
	if err = reachFrom(g, root, visited); err != nil {
		return false, err
	}

	// Stage 3: every vertex with an incident edge must have been reached
	var d int
	for v := range visited {
		if visited[v] {
			continue
		}
		if d, err = g.Degree(v); err != nil {
			return false, fmt.Errorf("Connected: %w", err)
		}
		if d > 0 {
			return false, nil
		}
	}

	return true, nil
}

// EulerianCycle reports whether g has a closed walk that uses every edge
// exactly once: g must be Connected and every vertex must have even degree.
// The degree scan runs only when the connectivity check passes.
//
// An edgeless graph (including the empty graph) is accepted: the empty walk
// uses all zero edges.
//
// Errors:
//   - ErrNilGraph if g is nil.
func EulerianCycle(g GraphLike) (bool, error) {
	ok, err := Connected(g)
	if err != nil || !ok {
		return false, err
	}

	var d int
	for v := 0; v < g.VertexCount(); v++ {
		if d, err = g.Degree(v); err != nil {
			return false, fmt.Errorf("EulerianCycle: %w", err)
		}
		if d%2 != 0 {
			return false, nil
		}
	}

	return true, nil
}

// ComponentCount returns the number of connected components formed by the
// non-isolated vertices of g. Isolated vertices are not counted, so an
// edgeless graph has zero components and Connected(g) ⇔ ComponentCount(g) <= 1.
//
// Errors:
//   - ErrNilGraph if g is nil.
func ComponentCount(g GraphLike) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	var (
		count   int
		d       int
		err     error
		visited = make([]bool, g.VertexCount())
	)
	for v := range visited {
		if visited[v] {
			continue
		}
		if d, err = g.Degree(v); err != nil {
			return 0, fmt.Errorf("ComponentCount: %w", err)
		}
		if d == 0 {
			continue
		}
		if err = reachFrom(g, v, visited); err != nil {
			return 0, err
		}
		count++
	}

	return count, nil
}

// OddDegreeVertices returns the vertices of odd degree in ascending order.
// By the handshake lemma the result always has even length.
//
// Errors:
//   - ErrNilGraph if g is nil.
func OddDegreeVertices(g GraphLike) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var (
		out []int
		d   int
		err error
	)
	for v := 0; v < g.VertexCount(); v++ {
		if d, err = g.Degree(v); err != nil {
			return nil, fmt.Errorf("OddDegreeVertices: %w", err)
		}
		if d%2 != 0 {
			out = append(out, v)
		}
	}

	return out, nil
}

// firstNonIsolated returns the lowest vertex with Degree > 0, or -1.
func firstNonIsolated(g GraphLike) (int, error) {
	for v := 0; v < g.VertexCount(); v++ {
		d, err := g.Degree(v)
		if err != nil {
			return -1, fmt.Errorf("Connected: %w", err)
		}
		if d > 0 {
			return v, nil
		}
	}

	return -1, nil
}

// reachFrom marks every vertex reachable from root in visited.
// Iterative (explicit stack) so deep graphs cannot overflow the goroutine stack.
func reachFrom(g GraphLike, root int, visited []bool) error {
	stack := []int{root}
	visited[root] = true

	var (
		v   int
		nbs []int
		err error
	)
	for len(stack) > 0 {
		// pop
		v = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if nbs, err = g.Neighbors(v); err != nil {
			return fmt.Errorf("reach: %w", err)
		}
		for _, w := range nbs {
			if !visited[w] {
				visited[w] = true
				stack = append(stack, w)
			}
		}
	}

	return nil
}

//–– Graph methods –––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// IsConnected reports whether all non-isolated vertices lie in one component.
// See Connected.
func (g *Graph) IsConnected() bool {
	ok, err := Connected(g)

	return err == nil && ok
}

// HasEulerianCycle reports whether g is connected and every vertex has even
// degree. See EulerianCycle.
func (g *Graph) HasEulerianCycle() bool {
	ok, err := EulerianCycle(g)

	return err == nil && ok
}

// Components returns the number of components among non-isolated vertices.
// See ComponentCount.
func (g *Graph) Components() int {
	n, err := ComponentCount(g)
	if err != nil {
		return 0
	}

	return n
}

// OddVertices returns the odd-degree vertices in ascending order.
// It is empty whenever every degree is even.
func (g *Graph) OddVertices() []int {
	out, err := OddDegreeVertices(g)
	if err != nil {
		return nil
	}

	return out
}

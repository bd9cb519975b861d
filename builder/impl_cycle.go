// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// impl_cycle.go - implementation of the Cycle(n) and DisjointCycles(k, n) constructors.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); the graph must have ≥ k·n vertices.
//   • Cycle uses vertices 0..n-1; DisjointCycles uses block j·n..(j+1)·n-1 for ring j.
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(k·n) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/eulergraph/core"

// Cycle returns a Constructor that builds the simple cycle C_n on vertices
// 0..n-1. Every vertex of C_n has degree 2, so C_n alone is Eulerian.
func Cycle(n int) Constructor {
	return func(g core.GraphLike, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := validateFits(methodCycle, g, n); err != nil {
			return err
		}

		return addRing(methodCycle, g, 0, n)
	}
}

// DisjointCycles returns a Constructor that builds k vertex-disjoint copies of
// C_n. For k ≥ 2 every degree is even but the graph is disconnected, which
// makes it the canonical non-Eulerian even-degree fixture.
func DisjointCycles(k, n int) Constructor {
	return func(g core.GraphLike, cfg builderConfig) error {
		if err := validateMin(methodDisjointCycles, k, minCycleCount); err != nil {
			return err
		}
		if err := validateMin(methodDisjointCycles, n, minCycleNodes); err != nil {
			return err
		}
		if err := validateFits(methodDisjointCycles, g, k*n); err != nil {
			return err
		}

		for j := 0; j < k; j++ {
			if err := addRing(methodDisjointCycles, g, j*n, n); err != nil {
				return err
			}
		}

		return nil
	}
}

// addRing links offset+i to offset+(i+1)%n for i = 0..n-1.
func addRing(method string, g core.GraphLike, offset, n int) error {
	for i := 0; i < n; i++ {
		if err := addEdge(method, g, offset+i, offset+(i+1)%n); err != nil {
			return err
		}
	}

	return nil
}

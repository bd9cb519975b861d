// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); the graph must have ≥ n vertices.
//   • Emits every unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity:
//   • Time: O(n²) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/eulergraph/core"

// Complete returns a Constructor that builds K_n on vertices 0..n-1.
// Every vertex has degree n-1, so K_n is Eulerian exactly when n is odd.
func Complete(n int) Constructor {
	return func(g core.GraphLike, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := validateFits(methodComplete, g, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

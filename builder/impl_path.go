// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); the graph must have ≥ n vertices.
//   • Emits edges in stable order i -> i+1 for i=0..n-2.
//
// Complexity:
//   • Time: O(n) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/eulergraph/core"

// Path returns a Constructor that builds the simple path P_n on vertices
// 0..n-1. Its two endpoints have degree 1, so P_n is never Eulerian.
func Path(n int) Constructor {
	return func(g core.GraphLike, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := validateFits(methodPath, g, n); err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

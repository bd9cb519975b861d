// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each helper returns a sentinel wrapped with the method name when its
// precondition is violated.
package builder

import (
	"fmt"

	"github.com/katalvlaran/eulergraph/core"
)

// validateMin ensures that got ≥ min.
// Returns "<method>: n=<got> < min=<min>: builder: parameter too small" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateFits ensures that the topology needs no more than the vertices g has.
//
// Complexity: O(1) time and space.
func validateFits(method string, g core.GraphLike, need int) error {
	if have := g.VertexCount(); need > have {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, need, have, ErrTooFewVertices)
	}

	return nil
}

// addEdge inserts {u,v} and wraps failures with method context.
func addEdge(method string, g core.GraphLike, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

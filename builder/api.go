// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(g, bopts, cons...). BuildGraph allocates g first.
//   - Topology factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/eulergraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Touch only vertices in [0, g.VertexCount()).
//   - Preserve determinism for the same config and call order.
type Constructor func(g core.GraphLike, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices and graph options gopts,
// resolves the builder configuration from bopts, and applies all constructors
// in order. Any constructor error is wrapped with "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - O(n) allocation + Σ cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Build applies constructors to an existing graph, e.g. a matrix.Dense or a
// core.Guarded. Errors are wrapped with "Build: %w"; edges inserted before
// the failing constructor stay in g.
func Build(g core.GraphLike, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	return nil
}

// apply runs cons sequentially against g.
func apply(g core.GraphLike, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		// Reject a nil constructor instead of panicking on the call.
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// RandomGraph builds a simple graph with exactly edges edges over vertices
// vertices, chosen by seeded rejection sampling (see Random).
//
// Validation happens before any work:
//   - vertices <= 0 ⇒ ErrTooFewVertices.
//   - edges < 0     ⇒ ErrNegativeEdges.
//
// edges > MaxSimpleEdges(vertices) is accepted but never terminates on its
// own; ctx is polled while sampling and its error is returned (wrapped) once
// it is done. Extra options are applied after the seed and context, so a
// caller may add WithProgress or override the RNG with WithRand.
func RandomGraph(ctx context.Context, vertices, edges int, seed int64, opts ...BuilderOption) (*core.Graph, error) {
	if vertices < minRandomGraphVertices {
		return nil, fmt.Errorf("%s: vertices=%d < min=%d: %w",
			methodRandomGraph, vertices, minRandomGraphVertices, ErrTooFewVertices)
	}
	if edges < 0 {
		return nil, fmt.Errorf("%s: edges=%d: %w", methodRandomGraph, edges, ErrNegativeEdges)
	}

	bopts := make([]BuilderOption, 0, len(opts)+2)
	bopts = append(bopts, WithSeed(seed), WithContext(ctx))
	bopts = append(bopts, opts...)

	return BuildGraph(vertices, nil, bopts, Random(edges))
}

// MaxSimpleEdges returns n(n-1)/2, the edge count of the complete simple
// graph K_n, or 0 for n < 2.
func MaxSimpleEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

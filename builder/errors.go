// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the constructor
//     name: "Random: edges=-1: builder: negative edge count".
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum for
// the requested constructor, or that the target graph has too few vertices to
// host the requested topology.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNegativeEdges indicates a negative edge count was requested.
var ErrNegativeEdges = errors.New("builder: negative edge count")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not run at all
// (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"context"
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithContext sets the context polled by long-running constructors.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) BuilderOption {
	return func(c *builderConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithProgress installs an observer that Random calls periodically with the
// number of draws so far and the number of edges inserted so far, and once
// more when it finishes. Panics on nil.
func WithProgress(fn func(attempts, inserted int)) BuilderOption {
	if fn == nil {
		panic("builder: WithProgress(nil)")
	}
	return func(c *builderConfig) {
		c.progress = fn
	}
}

// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil                   (stochastic constructors fail with ErrNeedRandSource)
//   • ctx      = context.Background()  (never cancelled)
//   • progress = nil                   (no observer)

package builder

import (
	"context"
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Cancellation for long-running constructors.
	ctx context.Context
	// Observer for sampling progress; nil disables reporting.
	progress func(attempts, inserted int)
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng: nil,                  // no RNG unless explicitly set
		ctx: context.Background(), // never done
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// report forwards to the progress observer if one is installed.
func (c builderConfig) report(attempts, inserted int) {
	if c.progress != nil {
		c.progress(attempts, inserted)
	}
}

// SPDX-License-Identifier: MIT
// Package: eulergraph/builder
//
// impl_random.go - implementation of the Random(edges) constructor.
//
// Canonical model:
//   - Rejection sampling: draw u, then v, uniformly from [0, n).
//   - Accept iff u != v and g has no {u,v} edge yet; otherwise discard both draws.
//   - Stop once `edges` draws have been accepted.
//
// Contract:
//   - edges ≥ 0 (else ErrNegativeEdges).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for edges == 0.
//   - n == 0 with edges > 0 has nothing to draw from (ErrTooFewVertices).
//   - Never inserts a self-loop or a duplicate, so the added edges form a simple graph.
//   - No internal cap: edges > n(n-1)/2 loops until cfg.ctx is done.
//
// Complexity:
//   - With k simple edges present, a draw is accepted with probability
//     (n(n-1) - 2k)/n², so expected draws blow up as k approaches n(n-1)/2.
//     Each draw costs one O(deg u) HasEdge.
//   - Space: O(1) extra.
//
// Determinism:
//   - Exactly two rng.Intn(n) calls per draw, u first, so a fixed seed fixes
//     both the edge set and the insertion order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eulergraph/core"
)

// Random returns a Constructor that inserts exactly edges new simple edges
// into g by rejection sampling over all of g's vertices.
func Random(edges int) Constructor {
	// The returned closure captures edges; BuildGraph supplies (g, cfg).
	return func(g core.GraphLike, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if edges < 0 {
			return fmt.Errorf("%s: edges=%d: %w", methodRandom, edges, ErrNegativeEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandom, ErrNeedRandSource)
		}
		n := g.VertexCount()
		if n == 0 && edges > 0 {
			return fmt.Errorf("%s: edges=%d on empty graph: %w", methodRandom, edges, ErrTooFewVertices)
		}

		// 2) Sample until the target is reached.
		var (
			rng      = cfg.rng
			inserted int
			attempts int
			u, v     int
			has      bool
			err      error
		)
		for inserted < edges {
			// Poll for cancellation without paying for it on every draw.
			if attempts%ctxCheckInterval == 0 {
				if err = cfg.ctx.Err(); err != nil {
					cfg.report(attempts, inserted)
					return fmt.Errorf("%s: stopped after %d draws, %d/%d edges: %w",
						methodRandom, attempts, inserted, edges, err)
				}
			}
			if attempts > 0 && attempts%progressInterval == 0 {
				cfg.report(attempts, inserted)
			}
			attempts++

			u = rng.Intn(n)
			v = rng.Intn(n)
			if u == v {
				continue // self-loop, discard
			}
			if has, err = g.HasEdge(u, v); err != nil {
				return fmt.Errorf("%s: HasEdge(%d,%d): %w", methodRandom, u, v, err)
			}
			if has {
				continue // duplicate, discard
			}
			if err = addEdge(methodRandom, g, u, v); err != nil {
				return err
			}
			inserted++
		}

		// 3) Success: final report.
		cfg.report(attempts, inserted)

		return nil
	}
}

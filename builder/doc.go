// Package builder provides reusable “functional-options”-style building blocks
// that populate core graphs: the seeded random generator used for Eulerian
// experiments and a handful of deterministic topologies used as fixtures.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:  create a core.Graph of n vertices and run constructors in order.
//     – Build:       run constructors against any existing core.GraphLike.
//     – RandomGraph: the one-call generator (vertices, edges, seed).
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG used by stochastic constructors.
//     – WithContext:   cancellation for long rejection-sampling loops.
//     – WithProgress:  observer called while sampling (attempts, inserted).
//   - Constructors:
//     – Random(edges):          rejection-sampled simple edges.
//     – Cycle(n), Path(n), Complete(n), DisjointCycles(k, n).
//
// Guarantees:
//
//   - Determinism: same vertex count, options, seed and constructor order
//     ⇒ identical edge set and identical insertion order.
//   - Random never inserts a self-loop or a duplicate edge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (sentinels wrapped with the constructor name)
//     for invalid build parameters; constructors never panic.
//
// Non-termination hazard: Random keeps drawing until it has inserted the
// requested number of edges. Asking for more than n(n-1)/2 edges on an n-vertex
// graph (see MaxSimpleEdges) can never succeed, and requests close to that
// bound take very long. There is deliberately no internal cap; pass a context
// with a deadline (WithContext) to bound the wait.
package builder

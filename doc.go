// Package eulergraph is a small in-memory toolkit for undirected graphs and
// the Eulerian-cycle question: does a closed walk exist that uses every edge
// exactly once?
//
// What is inside:
//
//	core/          - Graph (sparse adjacency lists), GraphLike, Guarded lock
//	                 wrapper, connectivity and Eulerian decision procedures
//	matrix/        - Dense: the same contract over an n×n multiplicity matrix
//	builder/       - functional-options constructors: seeded Random sampling,
//	                 Cycle, Path, Complete, DisjointCycles
//	internal/cli/  - the eulercheck command (cobra, charmbracelet/log, lipgloss)
//	cmd/eulercheck - main
//
// The decision rule (Euler): a graph has an Eulerian cycle iff every vertex
// has even degree and all vertices with at least one edge lie in a single
// connected component. An edgeless graph qualifies vacuously.
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	represents a square: four vertices of degree 2, one component, Eulerian.
//	Adding the chord 0─2 makes vertices 0 and 2 odd, and the answer flips.
//
// Reproducibility: builder.RandomGraph(ctx, n, m, seed) draws with
// math/rand seeded by seed, so the same triple always yields the same graph.
//
//	go run ./cmd/eulercheck -v 5 -e 4 -s 42
package eulergraph

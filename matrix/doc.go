// Package matrix offers a dense adjacency-matrix representation of the
// undirected multigraphs handled by core.
//
// Dense stores an n×n matrix of edge multiplicities in a single row-major
// buffer (index i*n + j). It satisfies core.GraphLike, so core.Connected,
// core.EulerianCycle and friends work on it unchanged:
//
//   - HasEdge is O(1) instead of O(deg u).
//   - Degree is O(n) (row sum, diagonal counted twice).
//   - Neighbors lists columns ascending, repeating parallel edges.
//   - Memory is O(n²), so Dense suits small or dense graphs.
//
// FromGraph replays any GraphLike into a Dense, which makes it easy to cross
// check verdicts between representations.
package matrix

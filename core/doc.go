// Package core provides a compact undirected multigraph over dense integer
// vertex IDs and the decision procedure for Eulerian-cycle existence.
//
// The Graph G = (V,E) is sized once at construction (V = {0..n-1}) and grows
// only by edge insertion:
//
//   - Adjacency lists: adjacency[v] holds every neighbour of v, in insertion order.
//   - Undirected storage: AddEdge(u,v) appends v to adjacency[u] and u to adjacency[v].
//   - Multigraph by default: parallel edges and self-loops are accepted unless
//     the graph was built WithoutMultiEdges / WithoutLoops / WithSimple.
//   - Degree convention: a self-loop is stored once but contributes 2 to Degree.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	AddEdge(u, v int) error                                // O(1) amortized (O(deg u) WithoutMultiEdges)
//	HasEdge(u, v int) (bool, error)                        // O(deg u), list membership
//	VertexCount() int / EdgeCount() int                    // O(1)
//	Degree(v int) (int, error)                             // O(1)
//	Neighbors(v int) ([]int, error)                        // O(deg v), copy
//	Edges() []Edge                                         // O(E), insertion order
//	IsConnected() bool                                     // O(V+E)
//	HasEulerianCycle() bool                                // O(V+E)
//	Components() int / OddVertices() []int                 // O(V+E) / O(V)
//	Clone() *Graph / Stats() Stats                         // O(V+E) / O(V)
//
// Connectivity ignores isolated vertices: the graph is connected when every
// vertex with at least one incident edge is reachable from the first such
// vertex. An edgeless graph is vacuously connected.
//
// HasEulerianCycle applies Euler's theorem: a connected undirected multigraph
// has a closed walk using every edge exactly once iff every vertex has even
// degree. Connectivity is checked first and the degree scan is skipped when it
// fails.
//
// The same procedures are available as package functions over any GraphLike
// (Connected, EulerianCycle, ComponentCount, OddDegreeVertices), so alternative
// representations such as matrix.Dense reuse them unchanged.
//
// Concurrency: Graph is not safe for concurrent use. Guarded wraps any
// GraphLike behind a single sync.RWMutex for callers that share an instance.
//
// Errors:
//
//	ErrVertexOutOfRange    – index < 0 or >= VertexCount()
//	ErrNegativeVertexCount – NewGraph(n<0)
//	ErrLoopNotAllowed      – self-loop on a graph built WithoutLoops
//	ErrMultiEdgeNotAllowed – parallel edge on a graph built WithoutMultiEdges
//	ErrNilGraph            – nil GraphLike passed to a package function
package core

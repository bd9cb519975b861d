// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Policy:
//   - Vertices are dense integer IDs 0..n-1 fixed at construction.
//   - Edges are undirected and only ever appended; there is no removal.
//   - The Graph carries no locks; wrap it in Guarded for shared use.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeVertexCount indicates NewGraph was asked for fewer than zero vertices.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph built WithoutLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted on a graph built WithoutMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNilGraph indicates a nil GraphLike was handed to a package-level algorithm.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is one successful AddEdge call, recorded in call order.
// U and V are kept exactly as passed; an undirected edge has no orientation
// beyond that record.
type Edge struct {
	U int
	V int
}

// GraphOption configures insertion policy before the Graph is used.
type GraphOption func(g *Graph)

// WithoutLoops makes AddEdge(v, v) fail with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithoutMultiEdges makes a second AddEdge between the same endpoints fail
// with ErrMultiEdgeNotAllowed.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// WithSimple restricts the Graph to simple graphs (no loops, no parallel edges).
func WithSimple() GraphOption {
	return func(g *Graph) {
		g.allowLoops = false
		g.allowMulti = false
	}
}

// Graph is an undirected multigraph over the vertices 0..n-1 stored as
// adjacency lists.
//
// adjacency[v] lists every neighbour of v in insertion order. An edge {u,v}
// with u != v appends one entry to each side; a self-loop {v,v} appends a
// single entry to adjacency[v] and is counted in loops[v] so that Degree can
// add it twice.
//
// By default the Graph accepts self-loops and parallel edges; the
// WithoutLoops / WithoutMultiEdges options narrow that policy.
type Graph struct {
	// Configuration flags
	allowLoops bool // permit u == v
	allowMulti bool // permit repeated {u,v}

	// Storage
	vertexCount int     // fixed at construction
	edgeCount   int     // successful AddEdge calls
	adjacency   [][]int // vertex -> neighbours, insertion ordered
	loops       []int   // vertex -> number of self-loops
	edges       []Edge  // insertion log
}

// NewGraph creates a Graph with n isolated vertices and no edges.
//
// Errors:
//   - ErrNegativeVertexCount if n < 0.
//
// Complexity: O(n) time and space.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrNegativeVertexCount)
	}

	g := &Graph{
		allowLoops:  true,
		allowMulti:  true,
		vertexCount: n,
		adjacency:   make([][]int, n),
		loops:       make([]int, n),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

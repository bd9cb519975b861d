// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for eulergraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures (cycles, paths, disjoint cycles).
//   - Keep fixture construction in one place so test bodies read as assertions.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulergraph/core"
)

// Common vertex IDs used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4

	VNegative = -1
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NSquare    = 4
	NTriangle  = 3
	NTwoSquare = 8

	NConcurrentAdds = 200
	NReaders        = 50
)

// MustGraph RETURNS an empty graph of n vertices or fails the test.
func MustGraph(t testing.TB, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err, "NewGraph(%d)", n)

	return g
}

// MustEdges INSERTS every pair of edges into g or fails the test.
func MustEdges(t testing.TB, g *core.Graph, edges ...[2]int) {
	t.Helper()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%d,%d)", e[0], e[1])
	}
}

// CycleEdges RETURNS the ring offset, offset+1, …, offset+n-1, offset.
func CycleEdges(offset, n int) [][2]int {
	out := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, [2]int{offset + i, offset + (i+1)%n})
	}

	return out
}

// NewSquare RETURNS the 4-cycle 0-1-2-3-0 (every degree 2, connected).
func NewSquare(t testing.TB) *core.Graph {
	t.Helper()
	g := MustGraph(t, NSquare)
	MustEdges(t, g, CycleEdges(0, NSquare)...)

	return g
}

// NewPath3 RETURNS the path 0-1-2 (degrees 1,2,1).
func NewPath3(t testing.TB) *core.Graph {
	t.Helper()
	g := MustGraph(t, NTriangle)
	MustEdges(t, g, [2]int{V0, V1}, [2]int{V1, V2})

	return g
}

// NewTwoSquares RETURNS two disjoint 4-cycles on 0..3 and 4..7.
func NewTwoSquares(t testing.TB) *core.Graph {
	t.Helper()
	g := MustGraph(t, NTwoSquare)
	MustEdges(t, g, CycleEdges(0, NSquare)...)
	MustEdges(t, g, CycleEdges(NSquare, NSquare)...)

	return g
}

// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in symmetric insertion, counting and range validation.
//   - Fix the documented degree convention for loops and parallel edges.
//   - Provide anchors for insertion-order guarantees (Neighbors, Edges).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulergraph/core"
)

// TestGraph_AddEdgeSymmetry VERIFIES that every insertion is visible from both
// endpoints and bumps EdgeCount by exactly one.
func TestGraph_AddEdgeSymmetry(t *testing.T) {
	g := MustGraph(t, 5)
	pairs := [][2]int{{0, 1}, {3, 1}, {4, 2}, {2, 0}}

	for i, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
		assert.Equal(t, i+1, g.EdgeCount(), "EdgeCount after %d inserts", i+1)

		uv, err := g.HasEdge(p[0], p[1])
		require.NoError(t, err)
		vu, err := g.HasEdge(p[1], p[0])
		require.NoError(t, err)
		assert.True(t, uv, "HasEdge(%d,%d)", p[0], p[1])
		assert.True(t, vu, "HasEdge(%d,%d)", p[1], p[0])
	}

	// A pair never inserted stays absent.
	has, err := g.HasEdge(V3, V4)
	require.NoError(t, err)
	assert.False(t, has)
}

// TestGraph_OutOfRange VERIFIES that AddEdge and HasEdge reject exactly the
// indices outside [0, n) and never anything else.
func TestGraph_OutOfRange(t *testing.T) {
	const n = 3
	tests := []struct {
		name    string
		u, v    int
		wantErr bool
	}{
		{"both valid", 0, 2, false},
		{"upper bound valid", n - 1, n - 1, false},
		{"u negative", VNegative, 1, true},
		{"v negative", 1, VNegative, true},
		{"u == n", n, 0, true},
		{"v == n", 0, n, true},
		{"both far out", 100, -100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGraph(t, n)

			_, herr := g.HasEdge(tt.u, tt.v)
			aerr := g.AddEdge(tt.u, tt.v)
			if tt.wantErr {
				assert.ErrorIs(t, herr, core.ErrVertexOutOfRange)
				assert.ErrorIs(t, aerr, core.ErrVertexOutOfRange)
				assert.Equal(t, 0, g.EdgeCount(), "failed AddEdge must not count")
				return
			}
			assert.NoError(t, herr)
			assert.NoError(t, aerr)
			assert.Equal(t, 1, g.EdgeCount())
		})
	}
}

// TestGraph_OutOfRangeAccessors VERIFIES that Degree and Neighbors share the range contract.
func TestGraph_OutOfRangeAccessors(t *testing.T) {
	g := MustGraph(t, NTriangle)

	_, err := g.Degree(NTriangle)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(VNegative)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	nbs, err := g.Neighbors(NTriangle)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Nil(t, nbs)
}

// TestGraph_EmptyGraphRejectsEverything VERIFIES that a zero-vertex graph has no valid index.
func TestGraph_EmptyGraphRejectsEverything(t *testing.T) {
	g := MustGraph(t, 0)
	assert.ErrorIs(t, g.AddEdge(0, 0), core.ErrVertexOutOfRange)
	_, err := g.HasEdge(0, 0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestGraph_DuplicateEdges VERIFIES the default multigraph policy: a repeated
// insertion doubles both adjacency entries and EdgeCount.
func TestGraph_DuplicateEdges(t *testing.T) {
	g := MustGraph(t, 2)
	MustEdges(t, g, [2]int{V0, V1}, [2]int{V1, V0})

	assert.Equal(t, 2, g.EdgeCount())
	nbs0, err := g.Neighbors(V0)
	require.NoError(t, err)
	nbs1, err := g.Neighbors(V1)
	require.NoError(t, err)
	assert.Equal(t, []int{V1, V1}, nbs0)
	assert.Equal(t, []int{V0, V0}, nbs1)

	d, err := g.Degree(V0)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	// Two vertices joined by a double edge: connected, both degrees even.
	assert.True(t, g.HasEulerianCycle())
}

// TestGraph_SelfLoopDegree VERIFIES that a self-loop is stored once and counted twice.
func TestGraph_SelfLoopDegree(t *testing.T) {
	g := MustGraph(t, NTriangle)
	require.NoError(t, g.AddEdge(V1, V1))

	nbs, err := g.Neighbors(V1)
	require.NoError(t, err)
	assert.Equal(t, []int{V1}, nbs, "loop occupies a single adjacency entry")

	d, err := g.Degree(V1)
	require.NoError(t, err)
	assert.Equal(t, 2, d, "loop contributes 2 to degree")

	has, err := g.HasEdge(V1, V1)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 1, g.EdgeCount())

	// A lone loop is a closed walk over its only edge.
	assert.True(t, g.HasEulerianCycle())

	// Loop + pendant edge: vertex 1 has degree 3, vertex 0 degree 1.
	require.NoError(t, g.AddEdge(V0, V1))
	assert.False(t, g.HasEulerianCycle())
	assert.Equal(t, []int{V0, V1}, g.OddVertices())
}

// TestGraph_NeighborsOrderAndCopy VERIFIES insertion order and that callers get a copy.
func TestGraph_NeighborsOrderAndCopy(t *testing.T) {
	g := MustGraph(t, 5)
	MustEdges(t, g, [2]int{V2, V4}, [2]int{V2, V0}, [2]int{V3, V2})

	nbs, err := g.Neighbors(V2)
	require.NoError(t, err)
	assert.Equal(t, []int{V4, V0, V3}, nbs)

	// Mutating the returned slice must not reach the graph.
	nbs[0] = 99
	again, err := g.Neighbors(V2)
	require.NoError(t, err)
	assert.Equal(t, []int{V4, V0, V3}, again)
}

// TestGraph_EdgesLog VERIFIES that Edges reports endpoints as passed, oldest first.
func TestGraph_EdgesLog(t *testing.T) {
	g := MustGraph(t, 4)
	MustEdges(t, g, [2]int{V3, V0}, [2]int{V1, V2}, [2]int{V2, V2})

	assert.Equal(t, []core.Edge{{U: V3, V: V0}, {U: V1, V: V2}, {U: V2, V: V2}}, g.Edges())

	// Failed inserts leave no trace in the log.
	require.Error(t, g.AddEdge(V0, 9))
	assert.Len(t, g.Edges(), 3)
}

// TestGraph_Stats VERIFIES the snapshot counters on a mixed fixture.
func TestGraph_Stats(t *testing.T) {
	g := MustGraph(t, 6)
	// 0-1-2 path, loop on 3, 4 and 5 isolated.
	MustEdges(t, g, [2]int{V0, V1}, [2]int{V1, V2}, [2]int{V3, V3})

	assert.Equal(t, core.Stats{
		VertexCount:    6,
		EdgeCount:      3,
		IsolatedCount:  2,
		OddDegreeCount: 2,
		LoopCount:      1,
		MaxDegree:      2,
	}, g.Stats())
}

// TestGraph_CloneIndependence VERIFIES that Clone is deep.
func TestGraph_CloneIndependence(t *testing.T) {
	g := NewPath3(t)
	c := g.Clone()

	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Stats(), c.Stats())

	require.NoError(t, c.AddEdge(V2, V0))
	assert.Equal(t, 2, g.EdgeCount(), "original untouched")
	assert.Equal(t, 3, c.EdgeCount())

	has, err := g.HasEdge(V2, V0)
	require.NoError(t, err)
	assert.False(t, has)
	assert.False(t, g.HasEulerianCycle())
	assert.True(t, c.HasEulerianCycle(), "closing the path yields a triangle")
}

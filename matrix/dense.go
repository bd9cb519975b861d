// SPDX-License-Identifier: MIT

// Package matrix - Dense multigraph storage (row-major) & GraphLike surface.
//
// Purpose:
//   - Keep edge multiplicities in one flat buffer with index formula i*n + j.
//   - Guarantee safety at the public surface: every indexer returns an error
//     instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; AddEdge/HasEdge/At: O(1); Degree/Neighbors: O(n).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/eulergraph/core"
)

// ---------- error context tags ----------

const (
	ctxAddEdge   = "AddEdge"
	ctxHasEdge   = "HasEdge"
	ctxDegree    = "Degree"
	ctxNeighbors = "Neighbors"
	ctxAt        = "At"
)

// Dense is an undirected multigraph stored as a symmetric n×n count matrix.
//
// data[u*n+v] is the number of {u,v} edges. A self-loop increments the
// diagonal once and contributes 2 to Degree, matching core.Graph.
type Dense struct {
	n         int   // vertex count
	edgeCount int   // successful AddEdge calls
	data      []int // row-major multiplicities, len n*n
}

// compile-time check
var _ core.GraphLike = (*Dense)(nil)

// NewDense allocates an edgeless n-vertex Dense.
// Returns ErrBadShape if n < 0.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// denseErrorf attaches method context and the offending index to
// ErrOutOfRange and core.ErrVertexOutOfRange.
func denseErrorf(method string, idx, n int) error {
	return fmt.Errorf("Dense.%s: %d not in [0,%d): %w: %w", method, idx, n, ErrOutOfRange, core.ErrVertexOutOfRange)
}

// check validates every index against [0, n).
func (m *Dense) check(method string, idx ...int) error {
	for _, i := range idx {
		if i < 0 || i >= m.n {
			return denseErrorf(method, i, m.n)
		}
	}

	return nil
}

// VertexCount returns n. O(1).
func (m *Dense) VertexCount() int { return m.n }

// EdgeCount returns the number of successful AddEdge calls. O(1).
func (m *Dense) EdgeCount() int { return m.edgeCount }

// AddEdge increments the {u,v} multiplicity (mirrored for u != v).
// Parallel edges and self-loops are accepted.
func (m *Dense) AddEdge(u, v int) error {
	if err := m.check(ctxAddEdge, u, v); err != nil {
		return err
	}
	m.data[u*m.n+v]++
	if u != v {
		m.data[v*m.n+u]++
	}
	m.edgeCount++

	return nil
}

// HasEdge reports whether at least one {u,v} edge exists. O(1).
func (m *Dense) HasEdge(u, v int) (bool, error) {
	if err := m.check(ctxHasEdge, u, v); err != nil {
		return false, err
	}

	return m.data[u*m.n+v] > 0, nil
}

// At returns the {u,v} multiplicity.
func (m *Dense) At(u, v int) (int, error) {
	if err := m.check(ctxAt, u, v); err != nil {
		return 0, err
	}

	return m.data[u*m.n+v], nil
}

// Degree returns the row sum of v with the diagonal counted twice. O(n).
func (m *Dense) Degree(v int) (int, error) {
	if err := m.check(ctxDegree, v); err != nil {
		return 0, err
	}
	row := m.data[v*m.n : (v+1)*m.n]
	d := row[v] // loops count twice: once here, once in the sum
	for _, c := range row {
		d += c
	}

	return d, nil
}

// Neighbors lists the columns of row v ascending, each repeated by its
// multiplicity. A self-loop appears once per loop. O(n + deg v).
func (m *Dense) Neighbors(v int) ([]int, error) {
	if err := m.check(ctxNeighbors, v); err != nil {
		return nil, err
	}
	row := m.data[v*m.n : (v+1)*m.n]
	out := make([]int, 0, len(row))
	for w, c := range row {
		for k := 0; k < c; k++ {
			out = append(out, w)
		}
	}

	return out, nil
}

// IsConnected reports core.Connected(m).
func (m *Dense) IsConnected() bool {
	ok, err := core.Connected(m)

	return err == nil && ok
}

// HasEulerianCycle reports core.EulerianCycle(m).
func (m *Dense) HasEulerianCycle() bool {
	ok, err := core.EulerianCycle(m)

	return err == nil && ok
}

// FromGraph replays g into a new Dense with the same vertex count.
//
// Every non-loop edge appears in both endpoint lists, so only the copy seen
// from the lower endpoint is replayed; self-loops are listed once and replayed
// once. For graphs built solely through AddEdge the result has the same
// EdgeCount, degrees and verdicts as g.
func FromGraph(g core.GraphLike) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, err := NewDense(g.VertexCount())
	if err != nil {
		return nil, err
	}

	var nbs []int
	for u := 0; u < m.n; u++ {
		if nbs, err = g.Neighbors(u); err != nil {
			return nil, fmt.Errorf("FromGraph: %w", err)
		}
		for _, w := range nbs {
			if w < u {
				continue
			}
			if err = m.AddEdge(u, w); err != nil {
				return nil, fmt.Errorf("FromGraph: %w", err)
			}
		}
	}

	return m, nil
}

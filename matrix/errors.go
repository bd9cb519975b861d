// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Index errors
// additionally wrap core.ErrVertexOutOfRange so callers written against
// core.GraphLike can match them without knowing the representation.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilGraph is returned by FromGraph when the source is nil.
	ErrNilGraph = errors.New("matrix: graph is nil")
)

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels and tests
// match them via errors.Is. Public methods never panic on caller input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Context is attached at the outer boundary with %w; callers still match
// with errors.Is.

var (
	// ErrBadShape is returned when a negative vertex count is requested.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	// Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrGraphNil indicates that a nil gonum graph was passed into FromGraph.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a gonum node ID does not fall into the
	// dense 0..n-1 range required by the index-based representation.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)

// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// impl_cycle.go — implementation of Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3 (else ErrTooFewVertices); edges {i, (i+1)%n}.
//   • Path:  n ≥ 1 (else ErrTooFewVertices); edges {i, i+1} for i < n-1.
//
// Reference optima (minimum clique partition):
//   • C_3 = K_3 → 1; C_n for n ≥ 4 → ⌈n/2⌉.
//   • P_n → ⌈n/2⌉.
//
// Complexity:
//   • Time O(n) edges on top of the O(n²) matrix allocation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

const (
	minCycleNodes = 3
	minPathNodes  = 1
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(methodCycle, n, true)
	}
}

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return ring(methodPath, n, false)
	}
}

// ring links consecutive indices, and closes {n-1, 0} when closed is set.
func ring(method string, n int, closed bool) (*matrix.Adjacency, error) {
	a, err := newOrder(method, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = link(method, a, i, i+1); err != nil {
			return nil, err
		}
	}
	if closed {
		if err = link(method, a, n-1, 0); err != nil {
			return nil, err
		}
	}

	return a, nil
}

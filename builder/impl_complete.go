// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • 0 ≤ n ≤ MaxVertices (else ErrTooFewVertices / ErrTooManyVertices).
//   • Emits each unordered pair {i,j}, i<j, exactly once; no loops.
//
// Complexity:
//   • Time O(n²), Space O(n²) for the matrix itself.

package builder

import "github.com/katalvlaran/cliquecover/matrix"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		a, err := newOrder(methodComplete, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(methodComplete, a, i, j); err != nil {
					return nil, err
				}
			}
		}

		return a, nil
	}
}

// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// impl_star.go — implementation of Star(n) and CompleteBipartite(n1,n2).
//
// Contract:
//   • Star: n ≥ 2 total vertices; center is index 0, leaves 1..n-1.
//   • CompleteBipartite: n1, n2 ≥ 1; left block 0..n1-1, right block n1..n1+n2-1.
//
// Reference optima (minimum clique partition):
//   • Star with n vertices → n-1 (one leaf pairs with the center).
//   • K_{n1,n2} → max(n1, n2) (a triangle-free graph needs a matching cover).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

const minStarNodes = 2

// Star returns a Constructor for the star K_{1,n-1} on n vertices.
func Star(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		a, err := newOrder(methodStar, n)
		if err != nil {
			return nil, err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err = link(methodStar, a, 0, leaf); err != nil {
				return nil, err
			}
		}

		return a, nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n1 < minPartSize || n2 < minPartSize {
			return nil, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}

		a, err := newOrder(methodCompleteBipartite, n1+n2)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err = link(methodCompleteBipartite, a, i, j); err != nil {
					return nil, err
				}
			}
		}

		return a, nil
	}
}

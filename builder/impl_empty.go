// SPDX-License-Identifier: MIT
// Package: cliquecover/builder

package builder

import "github.com/katalvlaran/cliquecover/matrix"

// Empty returns a Constructor for the edgeless graph on n vertices (n ≥ 0).
// Every clique partition of it has exactly n cliques.
func Empty(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		return newOrder(methodEmpty, n)
	}
}

// SPDX-License-Identifier: MIT
// Package: cliquecover
//
// validate.go — partition validity checks.
//
// A partition is valid for adj when:
//  1. every member is in [0, n)                 (ErrVertexOutOfRange)
//  2. no clique is empty                         (ErrEmptyClique)
//  3. every vertex appears at most once          (ErrVertexRepeated)
//  4. every vertex appears at least once         (ErrVertexMissing)
//  5. members of one clique are pairwise adjacent (ErrNotClique)
//
// Checks run in that priority order; the first violation is returned.

package cliquecover

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

// Validate reports whether p is a clique partition of adj.
//
// Complexity: O(n + Σ|C|²).
func Validate(adj *matrix.Adjacency, p Partition) error {
	if adj == nil {
		return ErrNilGraph
	}

	n := adj.Order()
	seen := make([]bool, n)
	for ci, c := range p {
		if len(c) == 0 {
			return fmt.Errorf("clique %d: %w", ci, ErrEmptyClique)
		}
		for _, v := range c {
			if v < 0 || v >= n {
				return fmt.Errorf("clique %d: vertex %d with n=%d: %w", ci, v, n, ErrVertexOutOfRange)
			}
			if seen[v] {
				return fmt.Errorf("clique %d: vertex %d: %w", ci, v, ErrVertexRepeated)
			}
			seen[v] = true
		}
	}
	for v, ok := range seen {
		if !ok {
			return fmt.Errorf("vertex %d: %w", v, ErrVertexMissing)
		}
	}
	for ci, c := range p {
		for k, u := range c {
			for _, w := range c[k+1:] {
				if !adj.Has(u, w) {
					return fmt.Errorf("clique %d: {%d,%d}: %w", ci, u, w, ErrNotClique)
				}
			}
		}
	}

	return nil
}

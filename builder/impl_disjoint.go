// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// impl_disjoint.go — disjoint union of complete graphs.
//
// Disjoint(3,2,1) lays out K_3 on {0,1,2}, K_2 on {3,4} and K_1 on {5}.
// The union's minimum clique partition has exactly len(sizes) cliques, which
// makes it the reference fixture for partition quality.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

// Disjoint returns a Constructor for K_{s1} ∪ K_{s2} ∪ ... on consecutive
// index blocks. Every size must be ≥ 1 and the total must fit MaxVertices.
func Disjoint(sizes ...int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		var total int
		for k, s := range sizes {
			if s < minPartSize {
				return nil, fmt.Errorf("%s: sizes[%d]=%d < min=%d: %w", methodDisjoint, k, s, minPartSize, ErrTooFewVertices)
			}
			total += s
		}

		a, err := newOrder(methodDisjoint, total)
		if err != nil {
			return nil, err
		}
		var base int
		for _, s := range sizes {
			for i := base; i < base+s; i++ {
				for j := i + 1; j < base+s; j++ {
					if err = link(methodDisjoint, a, i, j); err != nil {
						return nil, err
					}
				}
			}
			base += s
		}

		return a, nil
	}
}

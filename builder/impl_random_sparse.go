// SPDX-License-Identifier: MIT
// Package: cliquecover/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n,p); each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - 0 ≤ n ≤ MaxVertices, 0 ≤ p ≤ 1.
//   - cfg.rng is required only for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and consumes no randomness.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j>i). Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/matrix"
)

// RandomSparse returns a Constructor sampling G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if err := validateOrder(methodRandomSparse, n); err != nil {
			return nil, err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return nil, err
		}
		if p == probMin {
			return newOrder(methodRandomSparse, n)
		}
		if p == probMax {
			return Complete(n)(cfg)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		a, err := newOrder(methodRandomSparse, n)
		if err != nil {
			return nil, err
		}
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// Float64 ∈ [0,1): strict < keeps the Bernoulli(p) semantics exact.
				if rng.Float64() < p {
					if err = link(methodRandomSparse, a, i, j); err != nil {
						return nil, err
					}
				}
			}
		}

		return a, nil
	}
}

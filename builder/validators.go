// SPDX-License-Identifier: MIT
// Package: cliquecover/builder

package builder

import "fmt"

// validateOrder checks minVertices ≤ n ≤ MaxVertices.
func validateOrder(method string, n int) error {
	if n < minVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minVertices, ErrTooFewVertices)
	}
	if n > MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, MaxVertices, ErrTooManyVertices)
	}

	return nil
}

// validateProbability checks p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

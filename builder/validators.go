// SPDX-License-Identifier: MIT

package builder

import "fmt"

// validateMin returns ErrTooFewVertices when n < min.
func validateMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability when p is outside [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

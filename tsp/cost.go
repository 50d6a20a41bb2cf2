// SPDX-License-Identifier: MIT
//
// File: cost.go
// Role: weight of an open path.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// PathCost sums m[seq[k-1]][seq[k]] for k = 1..len(seq)-1. The path is open,
// so no edge from the last entry back to the first is added. Missing edges
// contribute their stored value (0).
//
// An empty sequence costs 0 even when m is nil.
//
// Errors:
//   - ErrNonSquare for a non-square matrix.
//   - ErrVertexOutOfRange for any id outside 0..n-1.
//
// Complexity: O(len(seq)).
func PathCost(m matrix.Matrix, seq []int) (int, error) {
	n, err := order(m)
	if err != nil {
		return 0, fmt.Errorf("PathCost: %w", err)
	}
	for k, id := range seq {
		if id < 0 || id >= n {
			return 0, fmt.Errorf("PathCost: seq[%d]=%d with n=%d: %w", k, id, n, ErrVertexOutOfRange)
		}
	}

	var (
		sum, w int
		k      int
	)
	for k = 1; k < len(seq); k++ {
		if w, err = m.At(seq[k-1], seq[k]); err != nil {
			return 0, fmt.Errorf("PathCost: %w", err)
		}
		sum += w
	}

	return sum, nil
}

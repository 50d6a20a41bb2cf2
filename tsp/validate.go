// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: shape checks shared by NearestNeighbor and PathCost.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// order returns n for an n×n matrix, 0 for nil or 0×0, and ErrNonSquare
// otherwise. Entry values are not inspected; the walk only ever follows
// positive weights.
//
// Complexity: O(1).
func order(m matrix.Matrix) (int, error) {
	if m == nil {
		return 0, nil
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 && c == 0 {
		return 0, nil
	}
	if r != c {
		return 0, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare)
	}

	return r, nil
}

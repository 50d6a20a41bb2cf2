// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_grid.go - Grid(cols) constructor: city blocks.
//
// Contract:
//   • cols ≥ 1 and n ≥ 1 (else ErrTooFewVertices).
//   • Nodes fill rows of width cols in row-major order: node k sits at
//     (k/cols, k%cols). The last row may be partial.
//   • Every node is joined to its right neighbour (same row) and to the node
//     below it, where those exist.
//
// Complexity: O(n) writes.
//
// Determinism:
//   • Stable edge order: for each k ascending, Right then Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// Grid returns a Constructor that lays the n nodes out as street blocks
// cols wide.
func Grid(cols int) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if cols < MinGridCols {
			return fmt.Errorf("%s: cols=%d < min=%d: %w", MethodGrid, cols, MinGridCols, ErrTooFewVertices)
		}
		if err := validateMin(MethodGrid, n, MinGridNodes); err != nil {
			return err
		}

		var k int
		for k = 0; k < n; k++ {
			if k%cols+1 < cols && k+1 < n {
				if err := connect(MethodGrid, m, cfg, k, k+1); err != nil {
					return err
				}
			}
			if k+cols < n {
				if err := connect(MethodGrid, m, cfg, k, k+cols); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

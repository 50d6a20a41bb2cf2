// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_path.go - Path() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Writes edges i-(i+1) for i = 0..n-2 in ascending order.
//
// Complexity: O(n) writes.

package builder

import "github.com/katalvlaran/citysweep/matrix"

// Path returns a Constructor that writes the simple path P_n.
func Path() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		var i int
		for i = 0; i+1 < n; i++ {
			if err := connect(MethodPath, m, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

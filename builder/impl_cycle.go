// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_cycle.go - Cycle() constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Writes i-(i+1)%n for i = 0..n-1; the last step closes the ring.
//
// Complexity: O(n) writes.

package builder

import "github.com/katalvlaran/citysweep/matrix"

// Cycle returns a Constructor that writes the simple cycle C_n.
func Cycle() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		var i int
		for i = 0; i < n; i++ {
			if err := connect(MethodCycle, m, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

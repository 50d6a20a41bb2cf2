// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_wheel.go - Wheel() constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Spokes 0-i first, then the rim 1-2-...-(n-1)-1.
//
// Complexity: O(n) writes.

package builder

import "github.com/katalvlaran/citysweep/matrix"

// Wheel returns a Constructor that writes W_n: a hub at node 0 plus a rim
// cycle over nodes 1..n-1.
func Wheel() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		if err := spokes(MethodWheel, m, cfg, n); err != nil {
			return err
		}
		var (
			rim  = n - 1
			k    int
			u, v int
		)
		for k = 0; k < rim; k++ {
			u = 1 + k
			v = 1 + (k+1)%rim
			if err := connect(MethodWheel, m, cfg, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

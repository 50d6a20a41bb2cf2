// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_complete.go - Complete() constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 has no edges.
//   • Writes every pair i<j, i ascending then j ascending.
//
// Complexity: O(n²) writes.

package builder

import "github.com/katalvlaran/citysweep/matrix"

// Complete returns a Constructor that writes the complete graph K_n.
func Complete() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := connect(MethodComplete, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_star.go - Star() constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is node 0; writes 0-i for i = 1..n-1.
//
// Complexity: O(n) writes.

package builder

import "github.com/katalvlaran/citysweep/matrix"

// Star returns a Constructor that joins HubNode to every other node.
func Star() Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		return spokes(MethodStar, m, cfg, n)
	}
}

// spokes writes HubNode-i for every i != HubNode.
func spokes(method string, m *matrix.Dense, cfg builderConfig, n int) error {
	var i int
	for i = 0; i < n; i++ {
		if i == HubNode {
			continue
		}
		if err := connect(method, m, cfg, HubNode, i); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Model: Erdős–Rényi-like; every unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be set when 0 < p < 1 (else ErrNeedRandSource). For p = 0
//     nothing is written and for p = 1 every pair is written, without draws.
//
// Complexity: O(n²) trials.
//
// Determinism: trials run i ascending, j ascending; one Float64 draw per pair,
// followed by the weight draw when the pair is kept.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// RandomSparse returns a Constructor that samples edges with probability p.
func RandomSparse(p float64) Constructor {
	return func(m *matrix.Dense, cfg builderConfig) error {
		n := m.Order()
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if p == MinProbability {
			return nil
		}

		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if cfg.rng == nil {
					keep = true // p == 1
				} else {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := connect(MethodRandomSparse, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

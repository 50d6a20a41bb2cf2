// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// api.go - the Build orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: Build(n, opts, cons...). Allocates the matrix,
//     resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical matrices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// Constructor writes one topology into m using the resolved config.
// Constructors validate early, write symmetric positive weights only and
// return sentinel errors instead of panicking.
type Constructor func(m *matrix.Dense, cfg builderConfig) error

// Build creates an n×n zero matrix, resolves opts and applies cons in order.
// The first constructor error is wrapped with "Build: %w" and returned; the
// partially built matrix is discarded.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel.
//
// Complexity: O(n²) for the allocation plus the constructors' own cost.
func Build(n int, opts []Option, cons ...Constructor) (*matrix.Dense, error) {
	if err := validateMin(MethodBuild, n, 1); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", MethodBuild, ErrConstructFailed, err)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	return m, nil
}

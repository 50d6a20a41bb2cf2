// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                      (no randomness unless seeded)
//   • weightFn = DefaultWeightFn          (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for every written edge.
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextWeight draws one weight and enforces the positive-weight rule.
func (c builderConfig) nextWeight() (int, error) {
	w := c.weightFn(c.rng)
	if w < 1 {
		return 0, ErrBadWeight
	}

	return w, nil
}

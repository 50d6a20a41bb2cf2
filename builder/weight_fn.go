// SPDX-License-Identifier: MIT

// Package builder provides the edge-weight distributions used by constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int { return value }
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Panics if min < 1 or max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int {
		if rng == nil || span == 1 {
			return min
		}

		return min + rng.Intn(span)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ~ U{min..max} via UniformWeightFn.
func WithUniformWeight(min, max int) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

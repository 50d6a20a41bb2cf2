// SPDX-License-Identifier: MIT
// Package: citysweep/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a Build call by mutating builderConfig before any
// constructor runs.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// SPDX-License-Identifier: MIT

// Package builder generates adjacency-matrix fixtures for tests, examples and
// the `sweep -generate` command.
//
// Build allocates an n×n zero matrix and applies Constructors in order. Every
// constructor writes symmetric, strictly positive weights, so the output is
// always a valid input for core.Graph.Load and tsp.NearestNeighbor:
//
//   - Path()            0-1-2-...-(n-1)                     n ≥ 2
//   - Cycle()           Path plus the closing edge (n-1)-0  n ≥ 3
//   - Star()            hub 0 joined to every other node     n ≥ 2
//   - Wheel()           Star plus the rim cycle 1..n-1       n ≥ 4
//   - Complete()        every unordered pair                 n ≥ 1
//   - Grid(cols)        street blocks cols wide, row-major   n ≥ 1
//   - RandomSparse(p)   each pair independently with prob p  n ≥ 1
//
// Constructors compose: a later one overwrites the weight of any pair it
// touches, so Build(n, opts, Cycle(), RandomSparse(0.3)) is a ring with random
// chords on top.
//
// Options:
//
//   - WithSeed / WithRand      RNG for RandomSparse and random weights.
//   - WithWeightFn             custom per-edge weight source.
//   - WithConstantWeight(w)    every edge gets w (default 1).
//   - WithUniformWeight(a, b)  integer weights uniform in [a, b].
//
// Option constructors panic on meaningless values (nil functions, weights
// below 1). Constructors themselves never panic; they return the sentinels in
// errors.go wrapped with the method name.
//
// Determinism: the same n, options, seed and constructor order always give
// the same matrix. Pairs are visited i ascending, then j ascending with j > i.
package builder

// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the matrix constructors.
package builder

// Constructor names, used as error context.
const (
	MethodBuild        = "Build"
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
	MethodGrid         = "Grid"
)

// Minimum orders per topology.
const (
	MinPathNodes         = 2
	MinCycleNodes        = 3
	MinStarNodes         = 2
	MinWheelNodes        = 4
	MinCompleteNodes     = 1
	MinRandomSparseNodes = 1
	MinGridNodes         = 1
	MinGridCols          = 1
)

// HubNode is the centre of Star and Wheel. Placing it at index 0 makes the
// greedy walk start on the hub.
const HubNode = 0

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DefaultEdgeWeight is used when no weight option is given.
const DefaultEdgeWeight = 1

// SPDX-License-Identifier: MIT

// Package citysweep draws a city road network loaded from an adjacency
// matrix and finds a route that visits every intersection, using the greedy
// "nearest unvisited neighbour first" rule from a fixed depot at node 0.
//
// The route is a heuristic, not an optimum: the walk always takes the
// cheapest road to a node it has not visited yet, breaks ties toward the
// lowest id, and stops at the first dead end.
//
// Layout:
//
//	matrix/        Dense adjacency matrix, validation, text loader/writer
//	layout/        evenly spaced circle placement inside a viewport
//	core/          Graph Model: nodes, edges and the highlight view, thread-safe
//	tsp/           NearestNeighbor walk, PathCost, HighlightPath
//	bfs/           reachability from the depot, to explain partial walks
//	builder/       fixture matrices: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse
//	report/        text summary and ';' separated CSV of a walk
//	session/       the "select graph" / "find shortest path" actions
//	render/        Fyne widget painting a core.Scene
//	config/        optional HCL settings file
//	logging/       slog construction and context carriage
//	cli/           flag parsing and exit codes
//	cmd/citysweep  desktop application
//	cmd/sweep      batch solver and fixture generator
//
// Quick ASCII example (weights on the roads, walk from 0):
//
//	   [0]──1──[1]
//	     \      │
//	      4     2
//	       \    │
//	        ──[2]
//
//	walk 0 → 1 → 2, length 3.
package citysweep

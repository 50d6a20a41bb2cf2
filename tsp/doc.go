// SPDX-License-Identifier: MIT

// Package tsp builds a visitation path over an adjacency matrix with the
// greedy nearest-unvisited-neighbour rule.
//
// NearestNeighbor is a heuristic, not a shortest-path or TSP solver:
//
//   - The walk always starts at node 0.
//   - From the current node it moves to the unvisited node with the smallest
//     positive weight. The scan runs in ascending index order and only a
//     strictly smaller weight replaces the candidate, so the lowest index
//     wins a tie.
//   - When no unvisited node is reachable from the current one the walk
//     stops. The partial path is a normal result, not an error; use
//     Result.Covers to tell the two apart.
//   - TotalWeight is the sum of the weights between consecutive entries. The
//     path is open: there is no closing edge back to node 0.
//
// A nil or 0×0 matrix yields the zero Result (empty sequence, weight 0).
//
// HighlightPath hands a Result to anything that implements Highlighter
// (core.Graph does), resetting the previous highlight first.
//
// Complexity: NearestNeighbor is O(n²) time and O(n) extra space.
package tsp

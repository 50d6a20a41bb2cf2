// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an adjacency matrix,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - A positive entry m[u][v] is an arc u→v; zero means "no road". Rows are
//     read the same way the greedy walk reads them, so an asymmetric matrix
//     is searched in its row direction.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per node (-1 when unreached)
//   - Parent: predecessor in the BFS tree (-1 for the root and unreached nodes)
//   - Supports an OnVisit hook (may abort with an error), a MaxDepth limit
//     and context cancellation.
//
// Why
//
//   - The greedy walk stops at a dead end. Reachability from node 0 tells a
//     dead end caused by the greedy policy apart from a graph that is simply
//     not connected.
//
// Determinism
//
//	Neighbours are scanned in ascending column order, so the visit sequence
//	is fully reproducible.
//
// Complexity (N = matrix order)
//
//   - Time:   O(N²)  (every row is scanned once)
//   - Memory: O(N)
package bfs

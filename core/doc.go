// SPDX-License-Identifier: MIT

// Package core holds the Graph Model: the nodes and edges derived from the
// currently loaded adjacency matrix, plus the highlight view for the latest
// visitation path.
//
// A Graph is rebuilt wholesale on every Load:
//
//   - Nodes get IDs 0..N-1 in matrix index order and a position from
//     layout.Circle computed with the viewport recorded at that moment.
//   - Edges come from the upper triangle: one Edge{From: i, To: j} with i < j
//     for every m[i][j] > 0, in row-major scan order. The lower triangle is
//     never read, so asymmetric input silently uses the upper values.
//   - Any previous highlight is dropped.
//
// A failed Load leaves the previous graph (if any) fully in place.
//
// Highlight state is not stored on Node or Edge. The Graph keeps a set of
// node IDs and a set of normalized {min,max} pairs; callers observe it via
// HighlightedNodes, HighlightedEdges, or a Scene snapshot. Every value
// returned by the Graph is a copy, so renderers never alias model state.
//
// Positions are frozen at load time. SetViewport only affects the next Load.
//
// Concurrency:
//
//	One sync.RWMutex guards the matrix, nodes, edges and highlight sets.
//	Queries take the read lock; Load, SetViewport and the highlight
//	mutators take the write lock. All methods are safe for concurrent use.
//
// Errors:
//
//	ErrNoGraph      - Matrix() called before any successful Load.
//	ErrUnknownNode  - ApplyHighlight got an id outside 0..N-1.
//	matrix.ErrInvalidInput (with a specific matrix sentinel) - Load rejected
//	                  a nil, empty, non-square or negative matrix.
package core

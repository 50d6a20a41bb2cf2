// SPDX-License-Identifier: MIT

// Package session binds the graph model, the path engine and the highlight
// view into the two user actions of the application: selecting a graph and
// finding the shortest visitation path.
//
// Both shells drive a Session. The desktop shell calls it from button
// callbacks and draws its Scene; the batch solver calls it once per run.
//
// Failures never disturb the active graph: a rejected file leaves the
// previously loaded graph, its layout and its highlight in place.
package session

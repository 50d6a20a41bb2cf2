// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters. Every slice returned is a fresh copy.

package core

import (
	"github.com/katalvlaran/citysweep/layout"
	"github.com/katalvlaran/citysweep/matrix"
)

// Loaded reports whether a graph has been loaded successfully.
func (g *Graph) Loaded() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj != nil
}

// Matrix returns a copy of the active adjacency matrix, or ErrNoGraph.
// Complexity: O(N²).
func (g *Graph) Matrix() (*matrix.Dense, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.adj == nil {
		return nil, ErrNoGraph
	}

	return g.adj.Copy(), nil
}

// Viewport returns the viewport the next Load will lay out against.
func (g *Graph) Viewport() layout.Viewport {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vp
}

// NodeCount returns N, or 0 when nothing is loaded.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Nodes returns the nodes in id order.
// Complexity: O(N).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the edges in upper-triangle scan order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether an edge joins a and b, in either order.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeIndex[newPairKey(a, b)]

	return ok
}

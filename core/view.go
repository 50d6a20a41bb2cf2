// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: renderer-facing snapshot of the graph and its highlight view.
// Determinism:
//   - Nodes in id order, edges in upper-triangle scan order.
// Concurrency:
//   - Taken under one read lock, so nodes, edges and flags are mutually consistent.

package core

import "github.com/katalvlaran/citysweep/layout"

// NodeView is one node as a renderer sees it.
type NodeView struct {
	ID          int
	Pos         layout.Point
	Highlighted bool
}

// EdgeView is one edge with its endpoint positions resolved.
type EdgeView struct {
	From, To    int
	A, B        layout.Point
	Weight      int
	Highlighted bool
}

// Scene is an immutable snapshot. It shares no memory with the Graph.
type Scene struct {
	Nodes []NodeView
	Edges []EdgeView
}

// Empty reports whether the scene has nothing to draw.
func (s Scene) Empty() bool { return len(s.Nodes) == 0 }

// HighlightedNodeCount counts highlighted nodes in the snapshot.
func (s Scene) HighlightedNodeCount() int {
	c := 0
	for _, nv := range s.Nodes {
		if nv.Highlighted {
			c++
		}
	}

	return c
}

// Scene builds a snapshot of the current graph.
// Complexity: O(N + E).
func (g *Graph) Scene() Scene {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Scene{
		Nodes: make([]NodeView, len(g.nodes)),
		Edges: make([]EdgeView, len(g.edges)),
	}
	var ok bool
	for i, nd := range g.nodes {
		_, ok = g.hlNodes[nd.ID]
		s.Nodes[i] = NodeView{ID: nd.ID, Pos: nd.Pos, Highlighted: ok}
	}
	for i, e := range g.edges {
		_, ok = g.hlEdges[pairKey{u: e.From, v: e.To}]
		s.Edges[i] = EdgeView{
			From:        e.From,
			To:          e.To,
			A:           g.nodes[e.From].Pos,
			B:           g.nodes[e.To].Pos,
			Weight:      e.Weight,
			Highlighted: ok,
		}
	}

	return s
}

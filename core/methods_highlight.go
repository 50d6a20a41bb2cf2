// SPDX-License-Identifier: MIT
//
// File: methods_highlight.go
// Role: the derived highlight view (node id set + normalized pair set).

package core

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// ResetHighlights clears every node and edge highlight. Idempotent.
// Complexity: O(1) amortized.
func (g *Graph) ResetHighlights() {
	g.mu.Lock()
	g.resetHighlightsLocked()
	g.mu.Unlock()
}

// resetHighlightsLocked assumes g.mu is held for writing.
func (g *Graph) resetHighlightsLocked() {
	g.hlNodes = make(map[int]struct{})
	g.hlEdges = make(map[pairKey]struct{})
}

// ApplyHighlight marks every node in seq and every existing edge joining two
// consecutive entries of seq. Edges between non-consecutive members stay
// unmarked even when they exist. Existing highlights are kept; pair it with
// ResetHighlights to show exactly one path.
//
// Errors:
//   - ErrUnknownNode if any id is outside 0..N-1; nothing is marked then.
//
// Complexity: O(len(seq)).
func (g *Graph) ApplyHighlight(seq []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.nodes)
	for k, id := range seq {
		if id < 0 || id >= n {
			return fmt.Errorf("core: ApplyHighlight: seq[%d]=%d with %d nodes: %w", k, id, n, ErrUnknownNode)
		}
	}

	var (
		k   int
		key pairKey
	)
	for k = 0; k < len(seq); k++ {
		g.hlNodes[seq[k]] = struct{}{}
		if k == 0 {
			continue
		}
		key = newPairKey(seq[k-1], seq[k])
		if _, ok := g.edgeIndex[key]; ok {
			g.hlEdges[key] = struct{}{}
		}
	}

	return nil
}

// HighlightedNodes returns the highlighted node ids in ascending order.
// Complexity: O(H log H).
func (g *Graph) HighlightedNodes() []int {
	g.mu.RLock()
	ids := maps.Keys(g.hlNodes)
	g.mu.RUnlock()
	slices.Sort(ids)

	return ids
}

// HighlightedEdges returns the highlighted edges in scan order.
// Complexity: O(E).
func (g *Graph) HighlightedEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.hlEdges))
	for _, e := range g.edges {
		if _, ok := g.hlEdges[pairKey{u: e.From, v: e.To}]; ok {
			out = append(out, e)
		}
	}

	return out
}

// IsNodeHighlighted reports whether id is part of the highlight.
func (g *Graph) IsNodeHighlighted(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.hlNodes[id]

	return ok
}

// IsEdgeHighlighted reports whether the edge joining a and b is highlighted.
func (g *Graph) IsEdgeHighlighted(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.hlEdges[newPairKey(a, b)]

	return ok
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Load pipeline (validate, clone, layout, edge scan) and viewport control.

package core

import (
	"fmt"

	"github.com/katalvlaran/citysweep/layout"
	"github.com/katalvlaran/citysweep/matrix"
)

const (
	ctxLoad     = "core: Load"
	ctxLoadRows = "core: LoadRows"
)

// Load replaces the active graph with one derived from m.
//
// Implementation:
//   - Stage 1: validate m (non-nil, non-empty, square, non-negative) without
//     touching the current state.
//   - Stage 2: copy m into a private Dense so later caller mutations are invisible.
//   - Stage 3: lay out N nodes on the circle for the recorded viewport.
//   - Stage 4: scan the upper triangle for edges, index them by pair.
//   - Stage 5: swap everything in under the write lock and clear highlights.
//
// Errors:
//   - matrix.ErrInvalidInput joined with ErrNilMatrix, ErrEmpty, ErrNonSquare
//     or ErrNegativeWeight. The previous graph stays active.
//
// Complexity: O(N²) time and memory.
func (g *Graph) Load(m matrix.Matrix) error {
	n, err := matrix.ValidateAdjacency(m)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxLoad, err)
	}

	adj, err := matrix.NewDense(n)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxLoad, err)
	}
	var (
		i, j, w int
		edges   = make([]Edge, 0, n)
		index   = make(map[pairKey]int, n)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w, err = m.At(i, j); err != nil {
				return fmt.Errorf("%s: %w", ctxLoad, err)
			}
			if err = adj.Set(i, j, w); err != nil {
				return fmt.Errorf("%s: %w", ctxLoad, err)
			}
			if j > i && w > 0 {
				index[pairKey{u: i, v: j}] = len(edges)
				edges = append(edges, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pts := layout.Circle(n, g.vp)
	nodes := make([]Node, n)
	for i = 0; i < n; i++ {
		nodes[i] = Node{ID: i, Pos: pts[i]}
	}

	g.adj = adj
	g.nodes = nodes
	g.edges = edges
	g.edgeIndex = index
	g.resetHighlightsLocked()

	return nil
}

// LoadRows is Load for callers holding a plain [][]int.
// The slice is copied; it is never retained.
func (g *Graph) LoadRows(rows [][]int) error {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxLoadRows, err)
	}

	return g.Load(m)
}

// SetViewport records the canvas size for the next Load. Nodes of the current
// graph keep their positions. Non-positive sizes are ignored.
// Complexity: O(1).
func (g *Graph) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	g.mu.Lock()
	g.vp.Width, g.vp.Height = width, height
	g.mu.Unlock()
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, options, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/citysweep/layout"
	"github.com/katalvlaran/citysweep/matrix"
)

// Sentinel errors for graph model operations.
var (
	// ErrNoGraph indicates that no matrix has been loaded yet.
	ErrNoGraph = errors.New("core: no graph loaded")

	// ErrUnknownNode indicates a node id outside 0..N-1 of the loaded graph.
	ErrUnknownNode = errors.New("core: unknown node")
)

// Node is one matrix index placed on the canvas.
type Node struct {
	// ID equals the matrix row/column index.
	ID int

	// Pos is fixed when the graph is loaded.
	Pos layout.Point
}

// Edge is one undirected, positively weighted connection with From < To.
type Edge struct {
	From   int
	To     int
	Weight int
}

// pairKey is the normalized {min,max} form of an unordered node pair.
type pairKey struct {
	u, v int
}

// newPairKey orders a and b so that u <= v.
func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{u: a, v: b}
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithViewport sets the canvas size used by the first Load.
// Non-positive values are ignored.
func WithViewport(width, height float64) Option {
	return func(g *Graph) {
		if width > 0 && height > 0 {
			g.vp.Width, g.vp.Height = width, height
		}
	}
}

// WithPadding sets the gap between the layout circle and the viewport border.
// Negative values are ignored.
func WithPadding(padding float64) Option {
	return func(g *Graph) {
		if padding >= 0 {
			g.vp.Padding = padding
		}
	}
}

// Graph is the in-memory graph model behind the canvas.
//
// mu guards every field below it. edgeIndex maps a normalized pair to its
// position in edges and is rebuilt with edges on each Load.
type Graph struct {
	mu sync.RWMutex

	vp layout.Viewport // applied by the next Load

	adj       *matrix.Dense // private clone; nil until the first Load
	nodes     []Node
	edges     []Edge
	edgeIndex map[pairKey]int

	hlNodes map[int]struct{}
	hlEdges map[pairKey]struct{}
}

// NewGraph returns an empty Graph with the default 800x600 viewport and
// padding 50, adjusted by opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vp:        layout.DefaultViewport(),
		nodes:     []Node{},
		edges:     []Edge{},
		edgeIndex: make(map[pairKey]int),
		hlNodes:   make(map[int]struct{}),
		hlEdges:   make(map[pairKey]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SPDX-License-Identifier: MIT
// Package tsp_test provides runnable, deterministic examples of the greedy
// walk. Each example prints a path and its weight with a stable // Output: block.
package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/citysweep/core"
	"github.com/katalvlaran/citysweep/matrix"
	"github.com/katalvlaran/citysweep/tsp"
)

// ExampleNearestNeighbor walks a small triangle from node 0.
func ExampleNearestNeighbor() {
	m, _ := matrix.FromRows([][]int{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})
	res, err := tsp.NearestNeighbor(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Sequence, res.TotalWeight)
	// Output: [0 1 2] 3
}

// ExampleNearestNeighbor_disconnected shows the early stop on an isolated node.
func ExampleNearestNeighbor_disconnected() {
	m, _ := matrix.FromRows([][]int{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	})
	res, _ := tsp.NearestNeighbor(m)
	fmt.Println(res.Sequence, res.TotalWeight, "covers all:", res.Covers(3))
	// Output: [0 1] 1 covers all: false
}

// ExampleHighlightPath computes a path and marks it on a core.Graph.
func ExampleHighlightPath() {
	g := core.NewGraph()
	_ = g.LoadRows([][]int{
		{0, 3, 3},
		{3, 0, 1},
		{3, 1, 0},
	})
	m, _ := g.Matrix()
	res, _ := tsp.NearestNeighbor(m)
	_ = tsp.HighlightPath(g, res)

	fmt.Println("path:", res.Sequence, "weight:", res.TotalWeight)
	for _, e := range g.HighlightedEdges() {
		fmt.Printf("%d-%d\n", e.From, e.To)
	}
	// Output:
	// path: [0 1 2] weight: 4
	// 0-1
	// 1-2
}

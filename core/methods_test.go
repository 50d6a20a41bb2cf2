// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph load and highlight contracts.
//
// Purpose:
//   - Lock in the edge scan order and the upper-triangle rule.
//   - Check that a failed Load keeps the previous graph.
//   - Check that the highlight view marks exactly the path's nodes and the
//     edges between consecutive path entries.

package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/citysweep/core"
	"github.com/katalvlaran/citysweep/layout"
	"github.com/katalvlaran/citysweep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle is the 3-node graph with weights 1 (0-1), 4 (0-2), 2 (1-2).
var triangle = [][]int{
	{0, 1, 4},
	{1, 0, 2},
	{4, 2, 0},
}

// square4 is a 4-cycle 0-1-2-3-0 plus the chord 0-2.
var square4 = [][]int{
	{0, 1, 7, 3},
	{1, 0, 2, 0},
	{7, 2, 0, 5},
	{3, 0, 5, 0},
}

func loaded(t *testing.T, rows [][]int, opts ...core.Option) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	require.NoError(t, g.LoadRows(rows))

	return g
}

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Loaded())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
	assert.True(t, g.Scene().Empty())
	assert.Equal(t, layout.DefaultViewport(), g.Viewport())

	_, err := g.Matrix()
	assert.ErrorIs(t, err, core.ErrNoGraph)
}

func TestNewGraph_Options(t *testing.T) {
	g := core.NewGraph(core.WithViewport(300, 200), core.WithPadding(10))
	assert.Equal(t, layout.Viewport{Width: 300, Height: 200, Padding: 10}, g.Viewport())

	// invalid values keep the defaults
	g = core.NewGraph(core.WithViewport(0, 200), core.WithPadding(-1))
	assert.Equal(t, layout.DefaultViewport(), g.Viewport())
}

func TestLoad_BuildsNodesAndEdges(t *testing.T) {
	g := loaded(t, square4)

	require.Equal(t, 4, g.NodeCount())
	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 7},
		{From: 0, To: 3, Weight: 3},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 5},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Fatalf("Edges() mismatch (-want +got):\n%s", diff)
	}

	pts := layout.Circle(4, layout.DefaultViewport())
	for i, nd := range g.Nodes() {
		assert.Equal(t, i, nd.ID)
		assert.Equal(t, pts[i], nd.Pos)
	}
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(1, 3))
}

func TestLoad_ReadsUpperTriangleOnly(t *testing.T) {
	g := loaded(t, [][]int{
		{0, 0, 6},
		{9, 0, 0},
		{1, 0, 0},
	})

	assert.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 6}}, g.Edges())
	assert.False(t, g.HasEdge(0, 1))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil interface", nil, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), matrix.ErrEmpty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := g.Load(tc.m)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, matrix.ErrInvalidInput)
			assert.False(t, g.Loaded())
		})
	}
}

func TestLoadRows_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"empty", [][]int{}, matrix.ErrEmpty},
		{"ragged", [][]int{{0, 1}, {1}}, matrix.ErrNonSquare},
		{"negative", [][]int{{0, -1}, {-1, 0}}, matrix.ErrNegativeWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := core.NewGraph().LoadRows(tc.rows)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

func TestLoad_FailureKeepsPreviousGraph(t *testing.T) {
	g := loaded(t, triangle)
	require.NoError(t, g.ApplyHighlight([]int{0, 1}))
	before := g.Scene()

	require.Error(t, g.LoadRows([][]int{{0, 1, 2}, {1, 0}}))

	assert.Equal(t, before, g.Scene())
	m, err := g.Matrix()
	require.NoError(t, err)
	assert.Equal(t, triangle, m.ToRows())
}

func TestLoad_ClearsHighlights(t *testing.T) {
	g := loaded(t, triangle)
	require.NoError(t, g.ApplyHighlight([]int{0, 1, 2}))
	require.Len(t, g.HighlightedNodes(), 3)

	require.NoError(t, g.LoadRows(square4))
	assert.Empty(t, g.HighlightedNodes())
	assert.Empty(t, g.HighlightedEdges())
	assert.Zero(t, g.Scene().HighlightedNodeCount())
}

func TestLoad_ClonesInput(t *testing.T) {
	m, err := matrix.FromRows(triangle)
	require.NoError(t, err)
	g := core.NewGraph()
	require.NoError(t, g.Load(m))

	require.NoError(t, m.Set(0, 1, 50))
	got, err := g.Matrix()
	require.NoError(t, err)
	v, err := got.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// and the returned matrix is a copy too
	require.NoError(t, got.Set(0, 1, 60))
	again, err := g.Matrix()
	require.NoError(t, err)
	assert.Equal(t, triangle, again.ToRows())
}

func TestSetViewport_AffectsNextLoadOnly(t *testing.T) {
	g := loaded(t, triangle)
	before := g.Nodes()

	g.SetViewport(200, 200)
	assert.Equal(t, before, g.Nodes(), "positions are frozen until the next load")

	require.NoError(t, g.LoadRows(triangle))
	want := layout.Circle(3, layout.Viewport{Width: 200, Height: 200, Padding: layout.DefaultPadding})
	for i, nd := range g.Nodes() {
		assert.Equal(t, want[i], nd.Pos)
	}

	g.SetViewport(-1, 10)
	assert.Equal(t, 200.0, g.Viewport().Width)
}

func TestApplyHighlight_ConsecutivePairsOnly(t *testing.T) {
	g := loaded(t, square4)

	require.NoError(t, g.ApplyHighlight([]int{0, 1, 2, 3}))
	assert.Equal(t, []int{0, 1, 2, 3}, g.HighlightedNodes())
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 5},
	}, g.HighlightedEdges())

	// chord 0-2 and closing edge 3-0 exist but are not consecutive in the path
	assert.False(t, g.IsEdgeHighlighted(0, 2))
	assert.False(t, g.IsEdgeHighlighted(3, 0))
	assert.True(t, g.IsEdgeHighlighted(2, 1))
}

func TestApplyHighlight_SkipsMissingEdges(t *testing.T) {
	g := loaded(t, square4)

	// 1-3 has no edge; both nodes are still marked
	require.NoError(t, g.ApplyHighlight([]int{1, 3}))
	assert.Equal(t, []int{1, 3}, g.HighlightedNodes())
	assert.Empty(t, g.HighlightedEdges())
}

func TestApplyHighlight_SingleNode(t *testing.T) {
	g := loaded(t, [][]int{{0}})

	require.NoError(t, g.ApplyHighlight([]int{0}))
	assert.True(t, g.IsNodeHighlighted(0))
	assert.Empty(t, g.HighlightedEdges())
}

func TestApplyHighlight_UnknownNodeChangesNothing(t *testing.T) {
	g := loaded(t, triangle)
	require.NoError(t, g.ApplyHighlight([]int{2}))

	err := g.ApplyHighlight([]int{0, 1, 3})
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	assert.Equal(t, []int{2}, g.HighlightedNodes())

	assert.ErrorIs(t, g.ApplyHighlight([]int{-1}), core.ErrUnknownNode)
	assert.ErrorIs(t, core.NewGraph().ApplyHighlight([]int{0}), core.ErrUnknownNode)
	assert.NoError(t, core.NewGraph().ApplyHighlight(nil))
}

func TestApplyHighlight_Accumulates(t *testing.T) {
	g := loaded(t, square4)
	require.NoError(t, g.ApplyHighlight([]int{0, 1}))
	require.NoError(t, g.ApplyHighlight([]int{2, 3}))

	assert.Equal(t, []int{0, 1, 2, 3}, g.HighlightedNodes())
	assert.Len(t, g.HighlightedEdges(), 2)
}

func TestResetHighlights_Idempotent(t *testing.T) {
	g := loaded(t, triangle)
	require.NoError(t, g.ApplyHighlight([]int{0, 1, 2}))

	g.ResetHighlights()
	g.ResetHighlights()
	assert.Empty(t, g.HighlightedNodes())
	assert.Empty(t, g.HighlightedEdges())

	core.NewGraph().ResetHighlights()
}

func TestScene_Snapshot(t *testing.T) {
	g := loaded(t, triangle)
	require.NoError(t, g.ApplyHighlight([]int{0, 1}))

	s := g.Scene()
	require.Len(t, s.Nodes, 3)
	require.Len(t, s.Edges, 3)
	assert.Equal(t, 2, s.HighlightedNodeCount())

	nodes := g.Nodes()
	wantEdges := []core.EdgeView{
		{From: 0, To: 1, A: nodes[0].Pos, B: nodes[1].Pos, Weight: 1, Highlighted: true},
		{From: 0, To: 2, A: nodes[0].Pos, B: nodes[2].Pos, Weight: 4},
		{From: 1, To: 2, A: nodes[1].Pos, B: nodes[2].Pos, Weight: 2},
	}
	if diff := cmp.Diff(wantEdges, s.Edges); diff != "" {
		t.Fatalf("Scene().Edges mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, s.Nodes[2].Highlighted)

	// mutating the snapshot does not leak back
	s.Nodes[2].Highlighted = true
	assert.False(t, g.IsNodeHighlighted(2))
}

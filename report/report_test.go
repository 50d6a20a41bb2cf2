// SPDX-License-Identifier: MIT
package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/citysweep/matrix"
	"github.com/katalvlaran/citysweep/report"
	"github.com/katalvlaran/citysweep/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "-", report.JoinPath(nil))
	assert.Equal(t, "0", report.JoinPath([]int{0}))
	assert.Equal(t, "0 → 1 → 2", report.JoinPath([]int{0, 1, 2}))
}

func TestSummary(t *testing.T) {
	r := tsp.Result{Sequence: []int{0, 1, 2}, TotalWeight: 3}
	assert.Equal(t, "Shortest Path Length: 3", report.LengthLine(r))
	assert.Equal(t, "Shortest Path Length: 3\nPath: 0 → 1 → 2", report.Summary(r))
	assert.Equal(t, "Shortest Path Length: 0\nPath: -", report.Summary(tsp.Result{}))
}

func TestCoverage(t *testing.T) {
	full := tsp.Result{Sequence: []int{0, 1, 2}}
	assert.Equal(t, "Visited all 3 nodes", report.Coverage(full, 3))

	partial := tsp.Result{Sequence: []int{0, 1}, TotalWeight: 1}
	assert.Equal(t, "Visited 2 of 3 nodes (graph not connected enough)", report.Coverage(partial, 3))
}

func TestWriteCSV(t *testing.T) {
	m, err := matrix.FromRows([][]int{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}})
	require.NoError(t, err)
	r, err := tsp.NearestNeighbor(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, m, r))
	assert.Equal(t, "step;from;to;weight;cumulative\n"+
		"1;0;1;1;1\n"+
		"2;1;2;2;3\n"+
		"total;;;;3\n", buf.String())
}

func TestWriteCSV_Trivial(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, nil, tsp.Result{}))
	assert.Equal(t, "step;from;to;weight;cumulative\ntotal;;;;0\n", buf.String())
}

func TestWriteCSV_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteCSV(&buf, nil, tsp.Result{Sequence: []int{0, 1}})
	assert.ErrorIs(t, err, report.ErrNoMatrix)

	m, err := matrix.FromRows([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	err = report.WriteCSV(&buf, m, tsp.Result{Sequence: []int{0, 5}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	boom := errors.New("disk full")
	err = report.WriteCSV(failWriter{boom}, m, tsp.Result{Sequence: []int{0, 1}, TotalWeight: 1})
	assert.ErrorIs(t, err, boom)
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

// SPDX-License-Identifier: MIT
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/citysweep/matrix"
	"github.com/stretchr/testify/require"
)

// rowsMatrix is a minimal matrix.Matrix over [][]int. Unlike Dense it can be
// rectangular, which lets tests reach the shape checks.
type rowsMatrix struct{ a [][]int }

var _ matrix.Matrix = rowsMatrix{}

func (m rowsMatrix) Rows() int { return len(m.a) }

func (m rowsMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}

func (m rowsMatrix) At(i, j int) (int, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}

func (m rowsMatrix) Set(i, j int, v int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}

func (m rowsMatrix) Clone() matrix.Matrix {
	cp := make([][]int, len(m.a))
	for r := range m.a {
		cp[r] = append([]int(nil), m.a[r]...)
	}

	return rowsMatrix{a: cp}
}

// dense builds a *matrix.Dense or fails the test.
func dense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/citysweep/matrix"
	"github.com/stretchr/testify/require"
)

// ragged is a test-side Matrix whose Rows and Cols disagree.
type ragged struct{ r, c int }

var _ matrix.Matrix = ragged{}

func (m ragged) Rows() int                 { return m.r }
func (m ragged) Cols() int                 { return m.c }
func (m ragged) At(i, j int) (int, error)  { return 0, nil }
func (m ragged) Set(i, j int, v int) error { return nil }
func (m ragged) Clone() matrix.Matrix      { return m }

// negative is a test-side Matrix that reports -1 everywhere, bypassing Dense.Set.
type negative struct{ n int }

func (m negative) Rows() int                 { return m.n }
func (m negative) Cols() int                 { return m.n }
func (m negative) At(i, j int) (int, error)  { return -1, nil }
func (m negative) Set(i, j int, v int) error { return nil }
func (m negative) Clone() matrix.Matrix      { return m }

// TestValidateRows covers every stage of the raw-rows validator.
func TestValidateRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]int
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"empty", [][]int{}, matrix.ErrEmpty},
		{"ragged", [][]int{{0, 1}, {1}}, matrix.ErrNonSquare},
		{"wide", [][]int{{0, 1, 2}, {1, 0, 2}}, matrix.ErrNonSquare},
		{"negative", [][]int{{0, -1}, {1, 0}}, matrix.ErrNegativeWeight},
		{"single", [][]int{{0}}, nil},
		{"valid 3x3", [][]int{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}}, nil},
		{"asymmetric is accepted", [][]int{{0, 1}, {7, 0}}, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateRows(tc.rows)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			require.ErrorIs(t, err, matrix.ErrInvalidInput)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	three, err := matrix.NewDense(3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantN   int
		wantErr error
	}{
		{"nil interface", nil, 0, matrix.ErrNilMatrix},
		{"typed nil", typedNil, 0, matrix.ErrEmpty},
		{"2x3", ragged{2, 3}, 0, matrix.ErrNonSquare},
		{"3x3", three, 3, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			n, err := matrix.ValidateSquare(tc.m)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, matrix.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantN, n)
		})
	}
}

// TestValidateAdjacency rejects negative entries that slipped past Dense.Set.
func TestValidateAdjacency(t *testing.T) {
	t.Parallel()

	_, err := matrix.ValidateAdjacency(negative{n: 2})
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
	require.ErrorIs(t, err, matrix.ErrInvalidInput)

	m, err := matrix.FromRows([][]int{{0, 5}, {5, 0}})
	require.NoError(t, err)
	n, err := matrix.ValidateAdjacency(m)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/citysweep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, n := range []int{0, -1} {
		m, err := matrix.NewDense(n)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(1, 0, -3), matrix.ErrNegativeWeight)

	// a rejected write leaves the cell untouched
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestDense_FromRowsDoesNotAlias(t *testing.T) {
	rows := [][]int{{0, 1}, {1, 0}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 99
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	out := m.ToRows()
	out[1][0] = 42
	v, err = m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m, err := matrix.FromRows([][]int{{0, 3}, {3, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 8))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, [][]int{{0, 3}, {3, 0}}, m.ToRows())
}

func TestDense_NilReceiver(t *testing.T) {
	var m *matrix.Dense
	assert.Zero(t, m.Rows())
	assert.Zero(t, m.Cols())
	assert.Nil(t, m.ToRows())
	assert.True(t, m.IsSymmetric())
	_, err := m.At(0, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_IsSymmetricAndString(t *testing.T) {
	sym, err := matrix.FromRows([][]int{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}})
	require.NoError(t, err)
	assert.True(t, sym.IsSymmetric())
	assert.Equal(t, "[0, 1, 4]\n[1, 0, 2]\n[4, 2, 0]\n", sym.String())

	asym, err := matrix.FromRows([][]int{{0, 1}, {2, 0}})
	require.NoError(t, err)
	assert.False(t, asym.IsSymmetric())
}

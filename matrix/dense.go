// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the adjacency weights in one flat buffer (offset = i*n + j).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the non-negative weight invariant at every write.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); FromRows: O(n²).
package matrix

import (
	"fmt"
	"strings"
)

// error context tags
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "FromRows"
)

// Dense is a square row-major matrix of non-negative ints.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n.
//
// The zero value and a nil *Dense both behave as an empty 0×0 matrix for the
// read-only accessors.
type Dense struct {
	n    int
	data []int
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n zero matrix (no edges).
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
//
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// FromRows copies a [][]int into a new Dense after ValidateRows.
// The input slice is never retained.
//
// Errors (all wrap ErrInvalidInput):
//   - ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrNegativeWeight.
//
// Complexity: O(n²).
func FromRows(rows [][]int) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	var (
		n = len(rows)
		m = &Dense{n: n, data: make([]int, n*n)}
		i int
	)
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Order is an alias of Rows for readability at graph call sites.
func (m *Dense) Order() int { return m.Rows() }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil || row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). Negative weights are rejected.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v < 0 {
		return denseErrorf(ctxSet, row, col, ErrNegativeWeight)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(n²).
func (m *Dense) Clone() Matrix {
	return m.Copy()
}

// Copy is Clone with the concrete return type.
func (m *Dense) Copy() *Dense {
	if m == nil {
		return nil
	}
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// ToRows returns the matrix as a freshly allocated [][]int.
// Complexity: O(n²).
func (m *Dense) ToRows() [][]int {
	if m == nil {
		return nil
	}
	rows := make([][]int, m.n)
	var i int
	for i = 0; i < m.n; i++ {
		rows[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return rows
}

// IsSymmetric reports whether a[i][j] == a[j][i] for every pair.
// Only the upper triangle is scanned.
func (m *Dense) IsSymmetric() bool {
	if m == nil {
		return true
	}
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

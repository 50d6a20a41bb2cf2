// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the adjacency checks shared by the
//    loader, the graph model and the path engine.
//  - Every failure wraps ErrInvalidInput plus the specific sentinel.
//
// Note:
//  - Each composite validator follows a fixed sequence: NotNil -> Empty ->
//    Square -> NonNegative. The first failing stage wins.

package matrix

import "fmt"

// validator tags
const (
	tagValidateRows      = "ValidateRows"
	tagValidateSquare    = "ValidateSquare"
	tagValidateAdjacency = "ValidateAdjacency"
)

// ValidateRows checks a raw [][]int before it becomes a Dense.
//
// Stages:
//   - rows == nil            -> ErrNilMatrix
//   - len(rows) == 0         -> ErrEmpty
//   - len(rows[i]) != len(rows) -> ErrNonSquare
//   - rows[i][j] < 0         -> ErrNegativeWeight
//
// Complexity: O(n²).
func ValidateRows(rows [][]int) error {
	if rows == nil {
		return invalidInput(tagValidateRows, ErrNilMatrix)
	}
	n := len(rows)
	if n == 0 {
		return invalidInput(tagValidateRows, ErrEmpty)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return invalidInput(tagValidateRows,
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare))
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if rows[i][j] < 0 {
				return invalidInput(tagValidateRows,
					fmt.Errorf("entry (%d,%d)=%d: %w", i, j, rows[i][j], ErrNegativeWeight))
			}
		}
	}

	return nil
}

// ValidateSquare ensures m is non-nil, non-empty and square and returns its order.
// A typed nil *Dense counts as empty.
//
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	if m == nil {
		return 0, invalidInput(tagValidateSquare, ErrNilMatrix)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 {
		return 0, invalidInput(tagValidateSquare, ErrEmpty)
	}
	if r != c {
		return 0, invalidInput(tagValidateSquare,
			fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}

	return r, nil
}

// ValidateAdjacency runs ValidateSquare and then checks every entry for
// negativity. It returns the matrix order on success.
//
// Complexity: O(n²).
func ValidateAdjacency(m Matrix) (int, error) {
	n, err := ValidateSquare(m)
	if err != nil {
		return 0, err
	}
	var (
		i, j, v int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, invalidInput(tagValidateAdjacency, err)
			}
			if v < 0 {
				return 0, invalidInput(tagValidateAdjacency,
					fmt.Errorf("entry (%d,%d)=%d: %w", i, j, v, ErrNegativeWeight))
			}
		}
	}

	return n, nil
}

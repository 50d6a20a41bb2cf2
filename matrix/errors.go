// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return (possibly wrapped) sentinels from this file;
// tests and callers match them with errors.Is. Nothing here panics on user
// input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for every malformed, empty or
	// non-square matrix rejected at load time. It is always wrapped together
	// with a more specific sentinel below.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrNilMatrix indicates a nil matrix (or nil row slice) was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmpty indicates a matrix with zero rows.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeWeight signals a negative entry; weights are non-negative.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrParse signals a token in a matrix file that is not a base-10 integer.
	ErrParse = errors.New("matrix: malformed token")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
)

// invalidInput tags err with the method context and the ErrInvalidInput
// umbrella while keeping the specific sentinel reachable through errors.Is.
func invalidInput(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

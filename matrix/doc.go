// SPDX-License-Identifier: MIT

// Package matrix holds the square, non-negative integer adjacency matrix that
// every other citysweep package reads from.
//
// The package provides:
//
//   - Matrix: the minimal read/write surface (Rows, Cols, At, Set, Clone)
//     consumed by the path engine and the graph model.
//   - Dense: a row-major implementation with bounds-checked accessors.
//   - Validators: ValidateRows, ValidateSquare, ValidateAdjacency.
//   - A text loader (Read, LoadFile) and writer (Write) for the plain
//     "one row per line" matrix files the desktop shell opens.
//
// Entry (i,j) > 0 is an edge of that weight; 0 means "no edge". Symmetry is
// assumed by callers and never enforced here (IsSymmetric reports it).
//
// Every load-time validation failure wraps ErrInvalidInput together with a
// specific sentinel, so callers can branch on either:
//
//	if errors.Is(err, matrix.ErrInvalidInput) { /* show the user a message */ }
//	if errors.Is(err, matrix.ErrNonSquare)    { /* ragged rows */ }
package matrix

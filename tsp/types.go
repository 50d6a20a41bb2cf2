// SPDX-License-Identifier: MIT

package tsp

import "errors"

// Sentinel errors.
var (
	// ErrNonSquare indicates the matrix passed in is not n×n.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrVertexOutOfRange indicates a sequence entry outside 0..n-1.
	ErrVertexOutOfRange = errors.New("tsp: vertex out of range")

	// ErrNilHighlighter indicates HighlightPath got a nil target.
	ErrNilHighlighter = errors.New("tsp: nil highlighter")
)

// Result is the outcome of one path computation.
type Result struct {
	// Sequence is the visitation order. It starts at 0 whenever it is
	// non-empty and never repeats an id.
	Sequence []int

	// TotalWeight is the sum of weights between consecutive entries.
	TotalWeight int
}

// Len returns the number of visited nodes.
func (r Result) Len() int { return len(r.Sequence) }

// Empty reports whether nothing was visited.
func (r Result) Empty() bool { return len(r.Sequence) == 0 }

// Covers reports whether the path visited all n nodes.
// An empty Result covers only the empty graph.
func (r Result) Covers(n int) bool { return len(r.Sequence) == n }

// Clone returns a Result that shares no memory with r.
func (r Result) Clone() Result {
	return Result{Sequence: append([]int{}, r.Sequence...), TotalWeight: r.TotalWeight}
}

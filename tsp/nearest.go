// SPDX-License-Identifier: MIT
//
// File: nearest.go
// Role: greedy nearest-unvisited-neighbour walk from node 0.

package tsp

import (
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// startVertex is where every walk begins.
const startVertex = 0

// NearestNeighbor computes the greedy visitation path over m.
//
// Implementation:
//   - Stage 1: nil or 0×0 matrix -> zero Result.
//   - Stage 2: visit node 0.
//   - Stage 3: repeatedly scan unvisited nodes in ascending order and keep the
//     first strictly smaller positive weight; stop when none is reachable.
//   - Stage 4: TotalWeight = PathCost(m, sequence).
//
// Errors:
//   - ErrNonSquare for a non-square matrix.
//   - Accessor failures from m.At, wrapped.
//
// Determinism: identical input gives an identical Result.
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(m matrix.Matrix) (Result, error) {
	n, err := order(m)
	if err != nil {
		return Result{}, fmt.Errorf("NearestNeighbor: %w", err)
	}
	if n == 0 {
		return Result{Sequence: []int{}}, nil
	}

	var (
		visited = make([]bool, n)
		seq     = make([]int, 1, n)
		cur     = startVertex
		next    int
		best    int
		i, w    int
	)
	seq[0] = cur
	visited[cur] = true

	for len(seq) < n {
		next = -1
		for i = 0; i < n; i++ {
			if visited[i] {
				continue
			}
			if w, err = m.At(cur, i); err != nil {
				return Result{}, fmt.Errorf("NearestNeighbor: %w", err)
			}
			if w > 0 && (next < 0 || w < best) {
				next, best = i, w
			}
		}
		if next < 0 {
			break
		}
		cur = next
		visited[cur] = true
		seq = append(seq, cur)
	}

	total, err := PathCost(m, seq)
	if err != nil {
		return Result{}, fmt.Errorf("NearestNeighbor: %w", err)
	}

	return Result{Sequence: seq, TotalWeight: total}, nil
}

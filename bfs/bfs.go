// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an adjacency matrix,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citysweep/matrix"
)

// ErrNeighbors is returned when reading a matrix row fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m     matrix.Matrix
	n     int
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on m starting from start,
// applying any number of functional Options.
// Returns ErrMatrixNil or ErrStartOutOfRange for invalid input,
// matrix.ErrNonSquare for a rectangular matrix, ErrOptionViolation for bad
// options, ErrNeighbors for accessor failures, or any OnVisit error.
func BFS(m matrix.Matrix, start int, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("bfs: %dx%d: %w", n, m.Cols(), matrix.ErrNonSquare)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// Prepare walker
	w := &walker{
		m:     m,
		n:     n,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, Unreached)
	// Main loop
	return w.res, w.loop()
}

// Reachable counts the nodes reachable from start, start included.
func Reachable(ctx context.Context, m matrix.Matrix, start int) (int, error) {
	res, err := BFS(m, start, WithContext(ctx))
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}

// enqueue marks id seen at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors scans the row of item, honours MaxDepth,
// and enqueues each unseen neighbour. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for v := 0; v < w.n; v++ {
		if w.res.Depth[v] != Unreached {
			continue
		}
		wt, err := w.m.At(item.id, v)
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrNeighbors, item.id, err)
		}
		if wt > 0 {
			w.enqueue(v, nextDepth, item.id)
		}
	}
	return nil
}

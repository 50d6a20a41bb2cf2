// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/citysweep/bfs"
	"github.com/katalvlaran/citysweep/core"
	"github.com/katalvlaran/citysweep/logging"
	"github.com/katalvlaran/citysweep/matrix"
	"github.com/katalvlaran/citysweep/tsp"
)

// Session serialises user actions against one graph.
type Session struct {
	mu     sync.Mutex
	g      *core.Graph
	logger *slog.Logger

	source  string
	last    tsp.Result
	hasLast bool
}

// New wraps g. A nil g gets a fresh core.NewGraph(); a nil logger falls back
// to slog.Default().
func New(g *core.Graph, logger *slog.Logger) *Session {
	if g == nil {
		g = core.NewGraph()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{g: g, logger: logger}
}

// log prefers a logger carried by ctx over the session's own.
func (s *Session) log(ctx context.Context) *slog.Logger {
	if l, ok := logging.Lookup(ctx); ok {
		return l
	}

	return s.logger
}

// SelectGraph loads the matrix file at path and makes it the active graph.
func (s *Session) SelectGraph(ctx context.Context, path string) error {
	logger := s.log(ctx)
	logger.Debug("Reading matrix file.", "path", path)

	m, err := matrix.LoadFile(path)
	if err != nil {
		logger.Warn("Graph selection failed.", "path", path, "error", err)
		return fmt.Errorf("session: select %s: %w", path, err)
	}

	return s.install(ctx, path, m)
}

// SelectFrom is SelectGraph for an already opened reader; name labels the
// source in logs and in Source.
func (s *Session) SelectFrom(ctx context.Context, name string, r io.Reader) error {
	logger := s.log(ctx)
	logger.Debug("Reading matrix stream.", "source", name)

	m, err := matrix.Read(r)
	if err != nil {
		logger.Warn("Graph selection failed.", "source", name, "error", err)
		return fmt.Errorf("session: select %s: %w", name, err)
	}

	return s.install(ctx, name, m)
}

// LoadMatrix makes m the active graph without touching the filesystem.
func (s *Session) LoadMatrix(ctx context.Context, m matrix.Matrix) error {
	return s.install(ctx, "", m)
}

func (s *Session) install(ctx context.Context, source string, m matrix.Matrix) error {
	logger := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.g.Load(m); err != nil {
		logger.Warn("Graph rejected.", "source", source, "error", err)
		return fmt.Errorf("session: load: %w", err)
	}
	s.source = source
	s.last = tsp.Result{}
	s.hasLast = false
	logger.Info("Graph selected.",
		"source", source,
		"nodes", s.g.NodeCount(),
		"edges", s.g.EdgeCount(),
	)

	return nil
}

// FindPath runs the greedy walk over the active graph, stores the result and
// highlights it. With no graph loaded it returns the zero Result and no error.
func (s *Session) FindPath(ctx context.Context) (tsp.Result, error) {
	logger := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.g.Matrix()
	if errors.Is(err, core.ErrNoGraph) {
		logger.Info("Shortest path requested with no graph loaded.")
		s.last = tsp.Result{}
		s.hasLast = true
		return tsp.Result{}, nil
	}
	if err != nil {
		return tsp.Result{}, fmt.Errorf("session: find path: %w", err)
	}

	res, err := tsp.NearestNeighbor(m)
	if err != nil {
		logger.Warn("Path search failed.", "error", err)
		return tsp.Result{}, fmt.Errorf("session: find path: %w", err)
	}
	if err = tsp.HighlightPath(s.g, res); err != nil {
		logger.Warn("Path highlight failed.", "error", err)
		return tsp.Result{}, fmt.Errorf("session: find path: %w", err)
	}
	s.last = res.Clone()
	s.hasLast = true

	n := m.Order()
	logger.Info("Shortest path found.",
		"sequence", res.Sequence,
		"total_weight", res.TotalWeight,
		"visited", res.Len(),
		"nodes", n,
	)
	if !res.Covers(n) {
		reach, rerr := bfs.Reachable(ctx, m, 0)
		if rerr != nil {
			logger.Debug("Reachability check failed.", "error", rerr)
		}
		logger.Warn("Walk stopped before visiting every node.",
			"visited", res.Len(),
			"reachable", reach,
			"nodes", n,
		)
	}

	return res, nil
}

// LastResult returns a copy of the most recent FindPath result. The flag is
// false until FindPath has run on the current graph.
func (s *Session) LastResult() (tsp.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last.Clone(), s.hasLast
}

// Reachability counts the nodes reachable from node 0 of the active graph,
// node 0 included, and the graph order. With no graph loaded both are 0.
func (s *Session) Reachability(ctx context.Context) (reachable, total int, err error) {
	m, err := s.g.Matrix()
	if errors.Is(err, core.ErrNoGraph) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("session: reachability: %w", err)
	}
	reachable, err = bfs.Reachable(ctx, m, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("session: reachability: %w", err)
	}

	return reachable, m.Order(), nil
}

// Graph exposes the underlying model.
func (s *Session) Graph() *core.Graph { return s.g }

// Scene snapshots the graph for drawing.
func (s *Session) Scene() core.Scene { return s.g.Scene() }

// Source names the file or stream the active graph came from.
func (s *Session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.source
}

// Matrix returns a copy of the active adjacency matrix.
func (s *Session) Matrix() (*matrix.Dense, error) { return s.g.Matrix() }

// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citysweep/config"
	"github.com/katalvlaran/citysweep/logging"
)

func newTestShell(t *testing.T) *shell {
	t.Helper()
	a := test.NewTempApp(t)
	cfg := config.Default()
	logger := logging.Discard()
	ctx := logging.WithLogger(context.Background(), logger)

	return newShell(ctx, a, cfg, newSession(cfg, logger))
}

func statusOf(t *testing.T, sh *shell) string {
	t.Helper()
	s, err := sh.status.Get()
	require.NoError(t, err)

	return s
}

func TestShell_LoadFindExport(t *testing.T) {
	sh := newTestShell(t)
	require.Equal(t, statusReady, statusOf(t, sh))
	require.Equal(t, "City Sweep", sh.win.Title())

	require.ErrorIs(t, sh.writeCSV(&bytes.Buffer{}), errNothingToExport)

	require.NoError(t, sh.loadFrom("triangle.txt", strings.NewReader("0 1 4\n1 0 2\n4 2 0\n")))
	require.Equal(t, "triangle.txt: 3 nodes, 3 edges", statusOf(t, sh))

	sh.findPath()
	require.Contains(t, statusOf(t, sh), "Shortest Path Length: 3")
	require.Contains(t, statusOf(t, sh), "Visited all 3 nodes")
	require.Equal(t, []int{0, 1, 2}, sh.sess.Graph().HighlightedNodes())

	out := &bytes.Buffer{}
	require.NoError(t, sh.writeCSV(out))
	require.Equal(t, "step;from;to;weight;cumulative\n1;0;1;1;1\n2;1;2;2;3\ntotal;;;;3\n", out.String())
}

func TestShell_BadFileKeepsGraph(t *testing.T) {
	sh := newTestShell(t)
	require.NoError(t, sh.loadFrom("pair.txt", strings.NewReader("0 5\n5 0\n")))

	err := sh.loadFrom("broken.txt", strings.NewReader("0 x\nx 0\n"))
	require.Error(t, err)
	require.Equal(t, "Graph not loaded", statusOf(t, sh))
	require.Equal(t, 2, sh.sess.Graph().NodeCount())
}

func TestShell_PartialWalkStatus(t *testing.T) {
	sh := newTestShell(t)
	require.NoError(t, sh.loadFrom("split.txt", strings.NewReader("0 1 0 0\n1 0 0 0\n0 0 0 2\n0 0 2 0\n")))

	sh.findPath()
	require.Contains(t, statusOf(t, sh), "Visited 2 of 4 nodes (graph not connected enough), 2 reachable from node 0")
}

func TestShell_Preload(t *testing.T) {
	sh := newTestShell(t)
	sh.preload(filepath.Join(t.TempDir(), "absent.txt"))
	require.True(t, strings.HasPrefix(statusOf(t, sh), "Could not open"))

	path := filepath.Join(t.TempDir(), "line.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 2 0\n2 0 3\n0 3 0\n"), 0o600))
	sh.preload(path)
	require.Equal(t, path+": 3 nodes, 2 edges", statusOf(t, sh))
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/katalvlaran/citysweep/config"
	"github.com/katalvlaran/citysweep/logging"
	"github.com/katalvlaran/citysweep/render"
	"github.com/katalvlaran/citysweep/report"
	"github.com/katalvlaran/citysweep/session"
)

const (
	titleShortestPath = "Shortest Path"
	titleExport       = "Export CSV"
	statusReady       = "Select a graph to begin"
)

var errNothingToExport = errors.New("find a path before exporting")

// shell is the main window and its three actions.
type shell struct {
	ctx    context.Context
	win    fyne.Window
	sess   *session.Session
	canvas *render.GraphCanvas
	status binding.String
}

func newShell(ctx context.Context, a fyne.App, cfg config.Config, sess *session.Session) *shell {
	logger := logging.FromContext(ctx)
	style, err := render.StyleFromConfig(cfg.Style)
	if err != nil {
		// config.Validate already checked the colours
		logger.Warn("Falling back to the default style.", "error", err)
		style = render.DefaultStyle()
	}

	sh := &shell{
		ctx:    ctx,
		win:    a.NewWindow(cfg.Window.Title),
		sess:   sess,
		canvas: render.NewGraphCanvas(sess, style),
		status: binding.NewString(),
	}
	sh.setStatus(statusReady)

	selectBtn := widget.NewButton("Select graph", sh.selectGraph)
	findBtn := widget.NewButton("Find shortest path", sh.findPath)
	exportBtn := widget.NewButton(titleExport, sh.exportCSV)

	controls := container.NewHBox(selectBtn, findBtn, exportBtn)
	bottom := container.NewVBox(widget.NewSeparator(), controls, widget.NewLabelWithData(sh.status))
	sh.win.SetContent(container.NewBorder(nil, bottom, nil, nil, sh.canvas))
	sh.win.Resize(windowSize(cfg))

	return sh
}

func (sh *shell) log() *slog.Logger { return logging.FromContext(sh.ctx) }

func (sh *shell) setStatus(msg string) {
	if err := sh.status.Set(msg); err != nil {
		sh.log().Debug("Status update failed.", "error", err)
	}
}

// preload opens path before the window is shown. Failures only reach the
// status line.
func (sh *shell) preload(path string) {
	if err := sh.sess.SelectGraph(sh.ctx, path); err != nil {
		sh.setStatus(fmt.Sprintf("Could not open %s: %v", path, err))
		return
	}
	sh.afterLoad(path)
}

// selectGraph asks for a .txt matrix file.
func (sh *shell) selectGraph() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sh.win)
			return
		}
		if rc == nil {
			return // cancelled
		}
		defer rc.Close()

		if err = sh.loadFrom(rc.URI().Path(), rc); err != nil {
			dialog.ShowError(err, sh.win)
		}
	}, sh.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	d.Show()
}

// loadFrom lays the graph out for the canvas size at this moment and
// installs it.
func (sh *shell) loadFrom(name string, r io.Reader) error {
	size := sh.canvas.Size()
	sh.sess.Graph().SetViewport(float64(size.Width), float64(size.Height))

	if err := sh.sess.SelectFrom(sh.ctx, name, r); err != nil {
		sh.setStatus("Graph not loaded")
		return err
	}
	sh.afterLoad(name)

	return nil
}

func (sh *shell) afterLoad(name string) {
	g := sh.sess.Graph()
	sh.setStatus(fmt.Sprintf("%s: %d nodes, %d edges", name, g.NodeCount(), g.EdgeCount()))
	sh.canvas.Refresh()
}

// findPath runs the walk, reports its length and repaints the highlight.
func (sh *shell) findPath() {
	res, err := sh.sess.FindPath(sh.ctx)
	if err != nil {
		dialog.ShowError(err, sh.win)
		return
	}
	sh.canvas.Refresh()

	n := sh.sess.Graph().NodeCount()
	status := fmt.Sprintf("%s | Path: %s | %s", report.LengthLine(res), report.JoinPath(res.Sequence), report.Coverage(res, n))
	if !res.Covers(n) {
		if reach, _, err := sh.sess.Reachability(sh.ctx); err == nil {
			status += fmt.Sprintf(", %d reachable from node 0", reach)
		}
	}
	sh.setStatus(status)
	dialog.ShowInformation(titleShortestPath, report.LengthLine(res), sh.win)
}

// exportCSV saves the last walk as a ';' separated table.
func (sh *shell) exportCSV() {
	if res, ok := sh.sess.LastResult(); !ok || res.Empty() {
		dialog.ShowInformation(titleExport, "Find a shortest path first", sh.win)
		return
	}
	d := dialog.NewFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sh.win)
			return
		}
		if uc == nil {
			return // cancelled
		}
		defer uc.Close()

		if err = sh.writeCSV(uc); err != nil {
			dialog.ShowError(err, sh.win)
			return
		}
		sh.setStatus("CSV saved to " + uc.URI().Path())
	}, sh.win)
	d.SetFileName("walk.csv")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	d.Show()
}

func (sh *shell) writeCSV(w io.Writer) error {
	res, ok := sh.sess.LastResult()
	if !ok || res.Empty() {
		return errNothingToExport
	}
	m, err := sh.sess.Matrix()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = report.WriteCSV(w, m, res); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	sh.log().Info("Walk exported.", "steps", res.Len())

	return nil
}

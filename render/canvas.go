// SPDX-License-Identifier: MIT

package render

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/katalvlaran/citysweep/core"
)

// MinWidth and MinHeight bound the canvas from below.
const (
	MinWidth  = 500
	MinHeight = 360
)

// SceneSource supplies the snapshot to draw. *core.Graph and
// *session.Session both satisfy it.
type SceneSource interface {
	Scene() core.Scene
}

// GraphCanvas is a widget that paints the scene of its source.
type GraphCanvas struct {
	widget.BaseWidget

	mu    sync.RWMutex
	src   SceneSource
	style Style
}

// NewGraphCanvas creates a canvas over src. A nil src draws nothing.
func NewGraphCanvas(src SceneSource, style Style) *GraphCanvas {
	gc := &GraphCanvas{src: src, style: style}
	gc.ExtendBaseWidget(gc)

	return gc
}

// SetStyle swaps the style and repaints.
func (gc *GraphCanvas) SetStyle(style Style) {
	gc.mu.Lock()
	gc.style = style
	gc.mu.Unlock()
	gc.Refresh()
}

// Style returns the active style.
func (gc *GraphCanvas) Style() Style {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	return gc.style
}

// SetSource points the canvas at another model and repaints.
func (gc *GraphCanvas) SetSource(src SceneSource) {
	gc.mu.Lock()
	gc.src = src
	gc.mu.Unlock()
	gc.Refresh()
}

func (gc *GraphCanvas) snapshot() (core.Scene, Style) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()

	if gc.src == nil {
		return core.Scene{}, gc.style
	}

	return gc.src.Scene(), gc.style
}

// CreateRenderer implements fyne.Widget.
func (gc *GraphCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &graphRenderer{gc: gc, root: container.NewWithoutLayout()}
	r.Refresh()

	return r
}

type graphRenderer struct {
	gc   *GraphCanvas
	root *fyne.Container
}

func (r *graphRenderer) Layout(s fyne.Size)           { r.root.Resize(s) }
func (r *graphRenderer) MinSize() fyne.Size           { return fyne.NewSize(MinWidth, MinHeight) }
func (r *graphRenderer) Destroy()                     {}
func (r *graphRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.root} }
func (r *graphRenderer) Refresh() {
	scene, style := r.gc.snapshot()
	r.root.Objects = buildObjects(scene, style)
	r.root.Refresh()
}

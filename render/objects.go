// SPDX-License-Identifier: MIT

package render

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/katalvlaran/citysweep/core"
	"github.com/katalvlaran/citysweep/layout"
)

func pos(p layout.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// buildObjects turns a scene into canvas objects in paint order:
// edge lines (each followed by its weight when enabled), node circles, ids.
func buildObjects(scene core.Scene, style Style) []fyne.CanvasObject {
	capacity := len(scene.Edges) + 2*len(scene.Nodes)
	if style.ShowWeights {
		capacity += len(scene.Edges)
	}
	objs := make([]fyne.CanvasObject, 0, capacity)

	var a, b fyne.Position
	for _, e := range scene.Edges {
		a, b = pos(e.A), pos(e.B)
		stroke, width := style.edgeStroke(e.Highlighted)

		ln := canvas.NewLine(stroke)
		ln.StrokeWidth = width
		ln.Position1 = a
		ln.Position2 = b
		objs = append(objs, ln)

		if style.ShowWeights {
			txt := canvas.NewText(strconv.Itoa(e.Weight), style.EdgeColor)
			txt.TextSize = WeightTextSize
			txt.Move(fyne.NewPos((a.X+b.X)/2-8, (a.Y+b.Y)/2-16))
			objs = append(objs, txt)
		}
	}

	half := style.NodeSize / 2
	box := fyne.NewSize(style.NodeSize, style.NodeSize)
	for _, nv := range scene.Nodes {
		c := canvas.NewCircle(style.nodeFill(nv.Highlighted))
		c.Resize(box)
		c.Move(pos(nv.Pos).SubtractXY(half, half))
		objs = append(objs, c)
	}

	// Ids are centred horizontally by the text box and vertically by
	// placing a one-line box on the node centre.
	labelBox := fyne.NewSize(style.NodeSize, LabelTextSize*1.4)
	for _, nv := range scene.Nodes {
		label := canvas.NewText(strconv.Itoa(nv.ID), style.LabelColor)
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.TextSize = LabelTextSize
		label.Alignment = fyne.TextAlignCenter
		label.Resize(labelBox)
		label.Move(pos(nv.Pos).SubtractXY(half, labelBox.Height/2))
		objs = append(objs, label)
	}

	return objs
}

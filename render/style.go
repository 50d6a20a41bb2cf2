// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/citysweep/config"
)

// Text sizes used by the canvas.
const (
	LabelTextSize  = 12
	WeightTextSize = 11
)

// Style controls how a scene is painted.
type Style struct {
	NodeSize        float32
	EdgeColor       color.NRGBA
	AccentColor     color.NRGBA
	NodeColor       color.NRGBA
	AccentNodeColor color.NRGBA
	LabelColor      color.NRGBA
	EdgeWidth       float32
	AccentWidth     float32
	ShowWeights     bool
}

// StyleFromConfig converts the settings file representation.
func StyleFromConfig(c config.Style) (Style, error) {
	s := Style{
		NodeSize:    float32(c.NodeSize),
		EdgeWidth:   float32(c.EdgeWidth),
		AccentWidth: float32(c.AccentWidth),
		ShowWeights: c.ShowWeights,
	}
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"edge_color", c.EdgeColor, &s.EdgeColor},
		{"accent_color", c.AccentColor, &s.AccentColor},
		{"node_color", c.NodeColor, &s.NodeColor},
		{"accent_node_color", c.AccentNodeColor, &s.AccentNodeColor},
		{"label_color", c.LabelColor, &s.LabelColor},
	} {
		col, err := config.ParseHexColor(f.hex)
		if err != nil {
			return Style{}, fmt.Errorf("render: %s: %w", f.name, err)
		}
		*f.dst = col
	}

	return s, nil
}

// DefaultStyle is StyleFromConfig(config.Default().Style): black/red edges,
// blue/red nodes, white ids.
func DefaultStyle() Style {
	s, err := StyleFromConfig(config.Default().Style)
	if err != nil {
		panic(err) // built-in defaults are always valid
	}

	return s
}

func (s Style) edgeStroke(highlighted bool) (color.NRGBA, float32) {
	if highlighted {
		return s.AccentColor, s.AccentWidth
	}

	return s.EdgeColor, s.EdgeWidth
}

func (s Style) nodeFill(highlighted bool) color.NRGBA {
	if highlighted {
		return s.AccentNodeColor
	}

	return s.NodeColor
}

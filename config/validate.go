// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/katalvlaran/citysweep/logging"
)

// Validate checks ranges and formats. Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalidf("window size %gx%g must be positive", c.Window.Width, c.Window.Height)
	case c.Layout.Padding < 0:
		return invalidf("layout padding %g must be >= 0", c.Layout.Padding)
	case c.Style.NodeSize <= 0:
		return invalidf("style node_size %g must be positive", c.Style.NodeSize)
	case c.Style.EdgeWidth <= 0 || c.Style.AccentWidth <= 0:
		return invalidf("style edge widths %g/%g must be positive", c.Style.EdgeWidth, c.Style.AccentWidth)
	case !logging.ValidLevel(c.Log.Level):
		return invalidf("log level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level)
	case !logging.ValidFormat(c.Log.Format):
		return invalidf("log format %q: must be 'text' or 'json'", c.Log.Format)
	}

	for name, hex := range map[string]string{
		"edge_color":        c.Style.EdgeColor,
		"accent_color":      c.Style.AccentColor,
		"node_color":        c.Style.NodeColor,
		"accent_node_color": c.Style.AccentNodeColor,
		"label_color":       c.Style.LabelColor,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
	}

	return nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (case-insensitive).
// A missing alpha means fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, invalidf("colour %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, invalidf("colour %q: %v", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

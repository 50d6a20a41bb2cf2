// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/citysweep/layout"
	"github.com/katalvlaran/citysweep/logging"
)

// ErrInvalidConfig is wrapped by every parse, decode and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the fully resolved settings set.
type Config struct {
	Window Window
	Layout Layout
	Style  Style
	Log    Log
}

// Window sizes the desktop window.
type Window struct {
	Width  float64
	Height float64
	Title  string
}

// Layout tunes node placement.
type Layout struct {
	Padding float64
}

// Style holds renderer settings. Colours are "#RRGGBB" or "#RRGGBBAA".
type Style struct {
	NodeSize        float64
	EdgeColor       string
	AccentColor     string
	NodeColor       string
	AccentNodeColor string
	LabelColor      string
	EdgeWidth       float64
	AccentWidth     float64
	ShowWeights     bool
}

// Log selects the logger level and output format.
type Log struct {
	Level  string
	Format string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{Width: 900, Height: 700, Title: "City Sweep"},
		Layout: Layout{Padding: layout.DefaultPadding},
		Style: Style{
			NodeSize:        30,
			EdgeColor:       "#000000",
			AccentColor:     "#FF0000",
			NodeColor:       "#0000FF",
			AccentNodeColor: "#FF0000",
			LabelColor:      "#FFFFFF",
			EdgeWidth:       2,
			AccentWidth:     3,
			ShowWeights:     true,
		},
		Log: Log{Level: logging.LevelInfo, Format: logging.FormatText},
	}
}

// hclFile mirrors the file layout. Pointers distinguish "absent" from zero.
type hclFile struct {
	Window *hclWindow `hcl:"window,block"`
	Layout *hclLayout `hcl:"layout,block"`
	Style  *hclStyle  `hcl:"style,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclWindow struct {
	Width  *float64 `hcl:"width,optional"`
	Height *float64 `hcl:"height,optional"`
	Title  *string  `hcl:"title,optional"`
}

type hclLayout struct {
	Padding *float64 `hcl:"padding,optional"`
}

type hclStyle struct {
	NodeSize        *float64 `hcl:"node_size,optional"`
	EdgeColor       *string  `hcl:"edge_color,optional"`
	AccentColor     *string  `hcl:"accent_color,optional"`
	NodeColor       *string  `hcl:"node_color,optional"`
	AccentNodeColor *string  `hcl:"accent_node_color,optional"`
	LabelColor      *string  `hcl:"label_color,optional"`
	EdgeWidth       *float64 `hcl:"edge_width,optional"`
	AccentWidth     *float64 `hcl:"accent_width,optional"`
	ShowWeights     *bool    `hcl:"show_weights,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Parse decodes src (named filename in diagnostics) over Default() and
// validates the result.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("%w: failed to decode %s: %w", ErrInvalidConfig, filename, diags)
	}

	cfg := Default()
	parsed.applyTo(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}

	return cfg, nil
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(src, path)
}

// LoadOrDefault is LoadFile for an optional path: "" yields Default().
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// applyTo copies every attribute present in the file onto cfg.
func (f hclFile) applyTo(cfg *Config) {
	if w := f.Window; w != nil {
		setFloat(&cfg.Window.Width, w.Width)
		setFloat(&cfg.Window.Height, w.Height)
		setString(&cfg.Window.Title, w.Title)
	}
	if l := f.Layout; l != nil {
		setFloat(&cfg.Layout.Padding, l.Padding)
	}
	if s := f.Style; s != nil {
		setFloat(&cfg.Style.NodeSize, s.NodeSize)
		setString(&cfg.Style.EdgeColor, s.EdgeColor)
		setString(&cfg.Style.AccentColor, s.AccentColor)
		setString(&cfg.Style.NodeColor, s.NodeColor)
		setString(&cfg.Style.AccentNodeColor, s.AccentNodeColor)
		setString(&cfg.Style.LabelColor, s.LabelColor)
		setFloat(&cfg.Style.EdgeWidth, s.EdgeWidth)
		setFloat(&cfg.Style.AccentWidth, s.AccentWidth)
		if s.ShowWeights != nil {
			cfg.Style.ShowWeights = *s.ShowWeights
		}
	}
	if l := f.Log; l != nil {
		setString(&cfg.Log.Level, l.Level)
		setString(&cfg.Log.Format, l.Format)
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

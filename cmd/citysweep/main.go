// SPDX-License-Identifier: MIT

// Command citysweep opens a window that draws a city road graph loaded from
// an adjacency matrix file and highlights the greedy nearest-neighbour walk
// through it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/katalvlaran/citysweep/cli"
	"github.com/katalvlaran/citysweep/config"
	"github.com/katalvlaran/citysweep/core"
	"github.com/katalvlaran/citysweep/logging"
	"github.com/katalvlaran/citysweep/session"
)

const appID = "io.github.katalvlaran.citysweep"

func main() {
	// Use a minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitRuntime)
	}
}

// run parses arguments and settings, then blocks in the UI loop until the
// window closes.
func run(outW io.Writer, args []string) error {
	opts, shouldExit, err := cli.ParseGUI(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, logger, err := setup(opts, os.Stderr)
	if err != nil {
		return err
	}
	ctx := logging.WithLogger(context.Background(), logger)

	a := app.NewWithID(appID)
	sh := newShell(ctx, a, cfg, newSession(cfg, logger))
	if opts.MatrixPath != "" {
		sh.preload(opts.MatrixPath)
	}
	sh.win.ShowAndRun()

	return nil
}

// setup resolves the settings file and the logger; flags win over the file.
func setup(opts *cli.Options, logW io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logW)
	logger.Debug("Settings resolved.", "config", opts.ConfigPath, "window", cfg.Window, "layout", cfg.Layout)

	return cfg, logger, nil
}

func newSession(cfg config.Config, logger *slog.Logger) *session.Session {
	g := core.NewGraph(
		core.WithViewport(cfg.Window.Width, cfg.Window.Height),
		core.WithPadding(cfg.Layout.Padding),
	)

	return session.New(g, logger)
}

func windowSize(cfg config.Config) fyne.Size {
	return fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height))
}

// SPDX-License-Identifier: MIT

// Command sweep runs the greedy nearest-neighbour walk over an adjacency
// matrix file and prints the visitation order and its length. With -generate
// it writes a fresh fixture matrix instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/citysweep/builder"
	"github.com/katalvlaran/citysweep/cli"
	"github.com/katalvlaran/citysweep/config"
	"github.com/katalvlaran/citysweep/logging"
	"github.com/katalvlaran/citysweep/matrix"
	"github.com/katalvlaran/citysweep/report"
	"github.com/katalvlaran/citysweep/session"
)

// stdoutPath selects standard output for -generate.
const stdoutPath = "-"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitRuntime)
	}
}

// run executes one solve or generate pass. Results go to outW, logs to errW.
func run(outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.ParseBatch(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: err.Error()}
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, errW)
	ctx := logging.WithLogger(context.Background(), logger)

	if opts.Generating() {
		return generate(ctx, outW, opts)
	}

	return solve(ctx, outW, opts)
}

// solve loads the matrix, walks it and prints the summary.
func solve(ctx context.Context, outW io.Writer, opts *cli.Options) error {
	sess := session.New(nil, logging.FromContext(ctx))
	if err := sess.SelectGraph(ctx, opts.MatrixPath); err != nil {
		return err
	}
	res, err := sess.FindPath(ctx)
	if err != nil {
		return err
	}

	n := sess.Graph().NodeCount()
	fmt.Fprintln(outW, report.Summary(res))
	fmt.Fprintln(outW, report.Coverage(res, n))
	if !res.Covers(n) {
		reach, _, err := sess.Reachability(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(outW, "Reachable from node 0: %d of %d nodes\n", reach, n)
	}

	if opts.CSVPath == "" {
		return nil
	}
	m, err := sess.Matrix()
	if err != nil {
		return err
	}

	return writeFile(opts.CSVPath, func(w io.Writer) error {
		return report.WriteCSV(w, m, res)
	})
}

// generate builds a fixture matrix and writes it to MATRIX_FILE or stdout.
func generate(ctx context.Context, outW io.Writer, opts *cli.Options) error {
	m, err := builder.Build(opts.Generate,
		[]builder.Option{
			builder.WithSeed(opts.Seed),
			builder.WithUniformWeight(1, opts.MaxWeight),
		},
		topology(opts)...,
	)
	if err != nil {
		return fmt.Errorf("generate %s: %w", opts.Topology, err)
	}
	logging.FromContext(ctx).Info("Matrix generated.",
		"topology", opts.Topology,
		"nodes", opts.Generate,
		"seed", opts.Seed,
	)

	if opts.MatrixPath == stdoutPath {
		return matrix.Write(outW, m)
	}

	return writeFile(opts.MatrixPath, func(w io.Writer) error {
		return matrix.Write(w, m)
	})
}

// topology maps -topology to constructors.
func topology(opts *cli.Options) []builder.Constructor {
	switch opts.Topology {
	case cli.TopologyPath:
		return []builder.Constructor{builder.Path()}
	case cli.TopologyCycle:
		return []builder.Constructor{builder.Cycle()}
	case cli.TopologyStar:
		return []builder.Constructor{builder.Star()}
	case cli.TopologyWheel:
		return []builder.Constructor{builder.Wheel()}
	case cli.TopologyComplete:
		return []builder.Constructor{builder.Complete()}
	case cli.TopologyGrid:
		return []builder.Constructor{builder.Grid(gridCols(opts.Generate))}
	default:
		return []builder.Constructor{builder.RandomSparse(opts.Density)}
	}
}

// gridCols picks the narrowest width that keeps the grid roughly square.
func gridCols(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}

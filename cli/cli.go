// SPDX-License-Identifier: MIT

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/citysweep/logging"
)

// Exit codes returned through ExitError.
const (
	ExitRuntime = 1
	ExitUsage   = 2
)

// Topology names accepted by -topology.
const (
	TopologyRandom   = "random"
	TopologyPath     = "path"
	TopologyCycle    = "cycle"
	TopologyStar     = "star"
	TopologyWheel    = "wheel"
	TopologyComplete = "complete"
	TopologyGrid     = "grid"
)

// Generator defaults.
const (
	DefaultDensity   = 0.5
	DefaultMaxWeight = 100
	DefaultSeed      = 1
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Options is the parsed command line. Empty LogLevel/LogFormat mean "use the
// config file value".
type Options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	MatrixPath string

	// batch only
	CSVPath   string
	Generate  int
	Topology  string
	Seed      int64
	Density   float64
	MaxWeight int
}

// Generating reports whether the batch run should write a matrix instead of
// solving one.
func (o *Options) Generating() bool { return o.Generate > 0 }

// commonFlags registers the flags both binaries share.
func commonFlags(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.ConfigPath, "config", "", "Path to an HCL settings file.")
	fs.StringVar(&o.LogLevel, "log-level", "", "Logging level. Options: 'debug', 'info', 'warn', 'error'. Overrides the settings file.")
	fs.StringVar(&o.LogFormat, "log-format", "", "Log output format. Options: 'text' or 'json'. Overrides the settings file.")
}

// ParseGUI processes the desktop shell arguments. It returns the options,
// whether the program should exit cleanly (help was printed), or an
// ExitError.
func ParseGUI(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.", "mode", "gui")
	opts := &Options{}
	fs := flag.NewFlagSet("citysweep", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
City Sweep - draws a city road graph and the greedy tour through it.

Usage:
  citysweep [options] [MATRIX_FILE]

Arguments:
  MATRIX_FILE
    Optional adjacency matrix file to open at start.

Options:
`)
		fs.PrintDefaults()
	}
	commonFlags(fs, opts)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 1 {
		return nil, false, usageError("too many arguments: %s", strings.Join(fs.Args(), " "))
	}
	opts.MatrixPath = fs.Arg(0)

	if err := validateLogging(opts); err != nil {
		return nil, false, err
	}
	slog.Debug("CLI parser finished successfully.", "options", opts)

	return opts, false, nil
}

// ParseBatch processes the batch solver arguments. A missing MATRIX_FILE
// prints usage and fails with ExitUsage.
func ParseBatch(args []string, output io.Writer) (*Options, bool, error) {
	slog.Debug("CLI parser started.", "mode", "batch")
	opts := &Options{}
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
sweep - runs the greedy nearest-neighbour tour over an adjacency matrix.

Usage:
  sweep [options] MATRIX_FILE
  sweep -generate N [options] MATRIX_FILE|-

Arguments:
  MATRIX_FILE
    Matrix to solve, or the destination of -generate ('-' for stdout).

Options:
`)
		fs.PrintDefaults()
	}
	commonFlags(fs, opts)
	fs.StringVar(&opts.CSVPath, "csv", "", "Also write the walk as a ';' separated CSV file.")
	fs.IntVar(&opts.Generate, "generate", 0, "Write a random symmetric N-node matrix instead of solving.")
	fs.StringVar(&opts.Topology, "topology", TopologyRandom, "Generated shape. Options: 'random', 'path', 'cycle', 'star', 'wheel', 'complete', 'grid'.")
	fs.Int64Var(&opts.Seed, "seed", DefaultSeed, "Random seed for -generate.")
	fs.Float64Var(&opts.Density, "density", DefaultDensity, "Edge probability for the 'random' topology, in [0,1].")
	fs.IntVar(&opts.MaxWeight, "max-weight", DefaultMaxWeight, "Largest generated edge weight (>= 1).")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	switch fs.NArg() {
	case 0:
		fs.Usage()
		return nil, false, usageError("missing MATRIX_FILE")
	case 1:
		opts.MatrixPath = fs.Arg(0)
	default:
		return nil, false, usageError("too many arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := validateLogging(opts); err != nil {
		return nil, false, err
	}
	if err := validateGenerator(opts); err != nil {
		return nil, false, err
	}
	slog.Debug("CLI parser finished successfully.", "options", opts)

	return opts, false, nil
}

func validateLogging(o *Options) *ExitError {
	o.LogLevel = strings.ToLower(o.LogLevel)
	o.LogFormat = strings.ToLower(o.LogFormat)
	if o.LogLevel != "" && !logging.ValidLevel(o.LogLevel) {
		return usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if o.LogFormat != "" && !logging.ValidFormat(o.LogFormat) {
		return usageError("invalid log-format: must be 'text' or 'json'")
	}

	return nil
}

func validateGenerator(o *Options) *ExitError {
	if o.Generate < 0 {
		return usageError("invalid generate: %d must be >= 0", o.Generate)
	}
	if !o.Generating() {
		return nil
	}
	if o.CSVPath != "" {
		return usageError("-csv cannot be combined with -generate")
	}
	switch o.Topology {
	case TopologyRandom, TopologyPath, TopologyCycle, TopologyStar, TopologyWheel, TopologyComplete, TopologyGrid:
	default:
		return usageError("invalid topology %q: must be 'random', 'path', 'cycle', 'star', 'wheel', 'complete', or 'grid'", o.Topology)
	}
	if o.Density < 0 || o.Density > 1 {
		return usageError("invalid density: %g must be in [0,1]", o.Density)
	}
	if o.MaxWeight < 1 {
		return usageError("invalid max-weight: %d must be >= 1", o.MaxWeight)
	}

	return nil
}

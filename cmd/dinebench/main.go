// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dinebench runs the dining philosophers benchmark across a sweep of
// core counts and scheduling variants, and charts the results.
//
// Usage:
//
//	dinebench -benchmark path [flags]
//
// Each variant's timings are written to its own CSV file in the output
// directory as they are measured. Once the sweep completes, the chart
// is rendered to graph.pdf (or the format given by -format) in the same
// directory, unless -no-plot is given.
//
// The -params flag names a TOML file that overrides the workload:
//
//	philosophers = 100
//	hunger = 500
//	tables = 1
//	sparse_cores = [1, 2, 3, 4, 5, 10, 20, 40, 60, 72]
//	taskset = "taskset"
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dinebench/dinebench/chart"
	"github.com/dinebench/dinebench/results"
	"github.com/dinebench/dinebench/sweep"
)

var exit = os.Exit // replaced during testing

// errUsage reports a command line that could not be parsed. The flag
// package has already printed the details.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == errUsage {
			exit(2)
			return
		}
		fail("dinebench: %v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dinebench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: dinebench -benchmark path [flags]\n")
		fs.PrintDefaults()
	}

	repeats := fs.Int("repeats", 30, "run the whole sweep `n` times")
	benchmark := fs.String("benchmark", "", "benchmark executable (required)")
	outDir := fs.String("o", "out/", "write series and chart into `dir`")
	noPlot := fs.Bool("no-plot", false, "do not render the chart after the sweep")
	params := fs.String("params", "", "read workload parameters from TOML `file`")
	format := fs.String("format", string(chart.PDF), "chart `format`: pdf, png, svg or html")
	level := fs.String("log-level", "info", "log `level`: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "dinebench: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return errUsage
	}
	chartFormat, err := chart.ParseFormat(*format)
	if err != nil {
		return err
	}

	lg, err := newLogger(*level, stderr)
	if err != nil {
		return err
	}
	defer lg.Sync()

	cfg, err := sweep.Configure(*repeats, *benchmark, *outDir, !*noPlot)
	if err != nil {
		return err
	}
	if *params != "" {
		p, err := sweep.LoadParams(*params)
		if err != nil {
			return err
		}
		cfg.Params = p
	}

	r := sweep.NewRunner(cfg, lg)
	r.Launcher = sweep.ExecLauncher{Stdout: stdout, Stderr: stderr}
	if err := r.Sweep(); err != nil {
		return err
	}
	if !cfg.Plot {
		return nil
	}

	series, err := chart.LoadSeries(cfg.OutDir)
	if err != nil {
		return err
	}
	path, err := chart.Render(series, cfg.OutDir, chart.Options{Format: chartFormat, Order: results.ByTime})
	if err != nil {
		return err
	}
	lg.Info("wrote chart", zap.String("path", path))
	return nil
}

// newLogger builds a text logger writing to w and installs it as the
// global pingcap logger.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	ws := zapcore.AddSync(w)
	lg, props, err := log.InitLoggerWithWriteSyncer(&log.Config{Level: level, Format: "text"}, ws, ws)
	if err != nil {
		return nil, errors.Annotatef(err, "log level %q", level)
	}
	log.ReplaceGlobals(lg, props)
	return lg, nil
}

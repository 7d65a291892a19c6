// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dineplot charts the series written by dinebench.
//
// Usage:
//
//	dineplot [-results dir] [-format pdf|png|svg|html] [-order time|cores] [-summary] [-benchfmt file]
//
// The chart is written to graph.<format> in the results directory.
// -html is shorthand for -format html. With -summary, dineplot also
// prints a per-core-count summary of each plotted series.
//
// The -benchfmt flag additionally writes every measurement in the Go
// benchmark format, so that two result directories can be compared
// with benchstat:
//
//	dineplot -results old -benchfmt old.txt
//	dineplot -results new -benchfmt new.txt
//	benchstat old.txt new.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pingcap/errors"
	"golang.org/x/perf/benchfmt"

	"github.com/dinebench/dinebench/chart"
	"github.com/dinebench/dinebench/results"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == errUsage {
			exit(2)
			return
		}
		fmt.Fprintf(os.Stderr, "dineplot: %v\n", err)
		exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dineplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: dineplot [flags]\n")
		fs.PrintDefaults()
	}
	dir := fs.String("results", "out/", "read series from and write the chart into `dir`")
	html := fs.Bool("html", false, "write an HTML report; same as -format html")
	format := fs.String("format", string(chart.PDF), "chart `format`: pdf, png, svg or html")
	order := fs.String("order", "time", "connect points in `order`: time or cores")
	summary := fs.Bool("summary", false, "print a summary table of each series")
	benchOut := fs.String("benchfmt", "", "also write the series in Go benchmark format to `file`")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "dineplot: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return errUsage
	}

	opts := chart.Options{Format: chart.HTML}
	if !*html {
		f, err := chart.ParseFormat(*format)
		if err != nil {
			return err
		}
		opts.Format = f
	}
	o, err := results.ParseOrder(*order)
	if err != nil {
		return err
	}
	opts.Order = o

	series, err := chart.LoadSeries(*dir)
	if err != nil {
		return err
	}
	if _, err := chart.Render(series, *dir, opts); err != nil {
		return err
	}
	if *benchOut != "" {
		if err := writeBenchfmt(*benchOut, *dir, series); err != nil {
			return err
		}
	}
	if *summary {
		return writeSummary(stdout, series)
	}
	return nil
}

func writeBenchfmt(path, dir string, series []results.Series) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Trace(cerr)
		}
	}()
	return results.WriteBenchfmt(f, series, benchfmt.Config{Key: "results", Value: []byte(dir), File: true})
}

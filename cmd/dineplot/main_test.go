// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pingcap/errors"

	"github.com/dinebench/dinebench/chart"
	"github.com/dinebench/dinebench/results"
)

func writeResults(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range chart.SeriesNames() {
		f, err := results.Create(filepath.Join(dir, name+".csv"))
		if err != nil {
			t.Fatal(err)
		}
		for _, p := range []results.Point{{Cores: 1, Time: 10}, {Cores: 2, Time: 5}, {Cores: 4, Time: 2.5}} {
			if err := f.Append(p); err != nil {
				t.Fatal(err)
			}
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun(t *testing.T) {
	for _, test := range []struct {
		args []string
		file string
	}{
		{nil, "graph.pdf"},
		{[]string{"-format", "png", "-order", "cores"}, "graph.png"},
		{[]string{"-html"}, "graph.html"},
		{[]string{"-format", "svg"}, "graph.svg"},
	} {
		t.Run(test.file, func(t *testing.T) {
			dir := writeResults(t)
			var stdout, stderr bytes.Buffer
			if err := run(append([]string{"-results", dir}, test.args...), &stdout, &stderr); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(filepath.Join(dir, test.file)); err != nil {
				t.Error(err)
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected output without -summary:\n%s", stdout.String())
			}
		})
	}
}

func TestRunSummary(t *testing.T) {
	dir := writeResults(t)
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-results", dir, "-summary"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	if !strings.Contains(out, "Cowns (sequential) (3 runs)\n") {
		t.Errorf("missing series title:\n%s", out)
	}
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if f := strings.Fields(line); len(f) == 7 && f[0] == "4" {
			rows = append(rows, f)
		}
	}
	if len(rows) != 4 {
		t.Fatalf("want a 4-core row per series, got %d:\n%s", len(rows), out)
	}
	want := []string{"4", "1", "2.500s", "2.500s", "2.500s", "2.500s", "4.00x"}
	if strings.Join(rows[0], " ") != strings.Join(want, " ") {
		t.Errorf("want row %v, got %v", want, rows[0])
	}
}

func TestRunErrors(t *testing.T) {
	dir := writeResults(t)
	for _, test := range []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{"bad flag", []string{"-bogus"}, func(err error) bool { return err == errUsage }},
		{"extra args", []string{"-results", dir, "x"}, func(err error) bool { return err == errUsage }},
		{"bad format", []string{"-results", dir, "-format", "gif"}, func(err error) bool { return err != nil }},
		{"bad order", []string{"-results", dir, "-order", "name"}, func(err error) bool { return err != nil }},
		{"empty dir", []string{"-results", t.TempDir()}, func(err error) bool {
			_, ok := errors.Cause(err).(*chart.MissingSeriesError)
			return ok
		}},
	} {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(test.args, &stdout, &stderr); !test.check(err) {
				t.Errorf("unexpected error %T: %v", err, err)
			}
		})
	}
}

func TestWriteSummaryNoSingleCore(t *testing.T) {
	var buf bytes.Buffer
	err := writeSummary(&buf, []results.Series{{Name: "x", Points: []results.Point{{Cores: 2, Time: 1}}}})
	if err != nil {
		t.Fatal(err)
	}
	want := "x (1 runs)\ncores  n    mean  median     min     max  speedup\n    2  1  1.000s  1.000s  1.000s  1.000s        ~\n"
	if buf.String() != want {
		t.Errorf("want:\n%sgot:\n%s", want, buf.String())
	}
}

func TestRunBenchfmt(t *testing.T) {
	dir := writeResults(t)
	out := filepath.Join(t.TempDir(), "new.txt")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-results", dir, "-format", "svg", "-benchfmt", out}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "results: "+dir+"\n\n") {
		t.Errorf("missing file configuration:\n%s", got)
	}
	if !strings.Contains(got, "BenchmarkDining/variant=verona_dining_seq-4 1 2.5 sec/op\n") {
		t.Errorf("missing result line:\n%s", got)
	}
	if n := strings.Count(got, "BenchmarkDining/"); n != 12 {
		t.Errorf("want 12 results, got %d", n)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pingcap/errors"

	"github.com/dinebench/dinebench/results"
)

func TestIdeal(t *testing.T) {
	xys := Ideal(IdealBaseline, IdealPlateau, MaxCores)
	if len(xys) != MaxCores {
		t.Fatalf("want %d points, got %d", MaxCores, len(xys))
	}
	if xys[0].X != 1 || xys[0].Y != 50 {
		t.Errorf("want (1, 50) first, got %v", xys[0])
	}
	for i := 1; i < len(xys); i++ {
		if xys[i].Y > xys[i-1].Y {
			t.Errorf("increases at %g cores: %g > %g", xys[i].X, xys[i].Y, xys[i-1].Y)
		}
		if xys[i].X == 50 && xys[i].Y != 1 {
			t.Errorf("want 1.0 at 50 cores, got %g", xys[i].Y)
		}
		if xys[i].X > 50 && xys[i].Y != 1 {
			t.Errorf("want plateau 1.0 at %g cores, got %g", xys[i].X, xys[i].Y)
		}
	}
	if got := xys[9].Y; got != 5 {
		t.Errorf("want 5 at 10 cores, got %g", got)
	}
}

func TestFitLine(t *testing.T) {
	var pts []results.Point
	for _, c := range []int{4, 1, 3, 2, 2} {
		pts = append(pts, results.Point{Cores: c, Time: 2 + 3*float64(c)})
	}
	f := FitLine(pts)
	if math.Abs(f.Intercept-2) > 1e-9 || math.Abs(f.Slope-3) > 1e-9 {
		t.Fatalf("want 2 + 3x, got %+v", f)
	}

	// The line covers the whole axis, not just the fitted data.
	line := f.Line(MaxCores)
	if len(line) != MaxCores || line[0].X != 1 || line[MaxCores-1].X != MaxCores {
		t.Fatalf("line spans %v..%v", line[0], line[len(line)-1])
	}
	if got := line[MaxCores-1].Y; math.Abs(got-(2+3*MaxCores)) > 1e-9 {
		t.Errorf("want %d at %d cores, got %g", 2+3*MaxCores, MaxCores, got)
	}

	if f := FitLine([]results.Point{{Cores: 4, Time: 1}, {Cores: 4, Time: 2}}); !math.IsNaN(f.Slope) {
		t.Errorf("single core count: want NaN fit, got %+v", f)
	}
	if f := FitLine(nil); !math.IsNaN(f.Slope) {
		t.Errorf("no points: want NaN fit, got %+v", f)
	}
}

func TestDecades(t *testing.T) {
	var got []float64
	for _, tk := range (decades{}).Ticks(0.8, 62.5) {
		got = append(got, tk.Value)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 10 {
		t.Errorf("want [1 10], got %v", got)
	}
}

func TestSteps(t *testing.T) {
	var got []float64
	for _, tk := range (steps{first: 1, step: 10}).Ticks(0, MaxCores+1) {
		got = append(got, tk.Value)
	}
	want := []float64{1, 11, 21, 31, 41, 51, 61, 71}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestTrendInYRange(t *testing.T) {
	// Times grow with cores, so the trend at 72 cores (73 s) is
	// above every measured point and the ideal curve.
	var pts []results.Point
	for c := 1; c <= 4; c++ {
		pts = append(pts, results.Point{Cores: c, Time: 1 + float64(c)})
	}
	pl, err := newPlot([]results.Series{{Name: "verona_dining_seq", Label: "Cowns (sequential)", Points: pts}}, results.ByTime)
	if err != nil {
		t.Fatal(err)
	}
	if pl.Y.Max < 73 {
		t.Errorf("y axis ends at %g, below the trend line's 73", pl.Y.Max)
	}
}

func writeSeries(t *testing.T, dir, name string, pts []results.Point) {
	t.Helper()
	f, err := results.Create(filepath.Join(dir, name+".csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for _, p := range pts {
		if err := f.Append(p); err != nil {
			t.Fatal(err)
		}
	}
}

func testData(t *testing.T) string {
	dir := t.TempDir()
	for i, name := range SeriesNames() {
		var pts []results.Point
		for rep := 0; rep < 3; rep++ {
			for c := 1; c <= 8; c++ {
				pts = append(pts, results.Point{Cores: c, Time: 40/float64(c) + float64(i+rep)})
			}
		}
		writeSeries(t, dir, name, pts)
	}
	return dir
}

func TestLoadSeries(t *testing.T) {
	dir := testData(t)
	series, err := LoadSeries(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 4 {
		t.Fatalf("want 4 series, got %d", len(series))
	}
	for i, s := range series {
		if s.Name != plotted[i].name || s.Label != plotted[i].label {
			t.Errorf("series %d: got %s %q", i, s.Name, s.Label)
		}
		if len(s.Points) != 24 {
			t.Errorf("%s: want 24 points, got %d", s.Name, len(s.Points))
		}
	}
	if got := series[3].Label; got != "Cowns (sequential)" || !plotted[3].fit {
		t.Errorf("trend line not on the sequential series: %q", got)
	}
}

func TestLoadSeriesErrors(t *testing.T) {
	t.Run("empty dir", func(t *testing.T) {
		_, err := LoadSeries(t.TempDir())
		if _, ok := errors.Cause(err).(*MissingSeriesError); !ok {
			t.Fatalf("want *MissingSeriesError, got %T: %v", err, err)
		}
	})
	t.Run("no points", func(t *testing.T) {
		dir := testData(t)
		writeSeries(t, dir, "verona_dining_opt", nil)
		_, err := LoadSeries(dir)
		me, ok := errors.Cause(err).(*MissingSeriesError)
		if !ok {
			t.Fatalf("want *MissingSeriesError, got %T: %v", err, err)
		}
		if filepath.Base(me.Path) != "verona_dining_opt.csv" {
			t.Errorf("wrong path %s", me.Path)
		}
	})
	t.Run("zero bytes", func(t *testing.T) {
		dir := testData(t)
		if err := os.WriteFile(filepath.Join(dir, "pthread_dining_opt.csv"), nil, 0666); err != nil {
			t.Fatal(err)
		}
		_, err := LoadSeries(dir)
		if _, ok := errors.Cause(err).(*MissingSeriesError); !ok {
			t.Fatalf("want *MissingSeriesError, got %T: %v", err, err)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		dir := testData(t)
		if err := os.WriteFile(filepath.Join(dir, "pthread_dining_opt.csv"), []byte("cores,time\n1,x\n"), 0666); err != nil {
			t.Fatal(err)
		}
		_, err := LoadSeries(dir)
		if _, ok := errors.Cause(err).(*results.MalformedInputError); !ok {
			t.Fatalf("want *results.MalformedInputError, got %T: %v", err, err)
		}
	})
}

func TestRender(t *testing.T) {
	dir := testData(t)
	series, err := LoadSeries(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		format Format
		order  results.Order
		check  func(data []byte) bool
	}{
		{PDF, results.ByTime, func(b []byte) bool { return bytes.HasPrefix(b, []byte("%PDF")) }},
		{PNG, results.ByCores, func(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG")) }},
		{SVG, results.ByTime, func(b []byte) bool { return bytes.Contains(b, []byte("<svg")) }},
		{HTML, results.ByTime, func(b []byte) bool {
			s := string(b)
			return strings.HasPrefix(s, "<!doctype html>") &&
				strings.Contains(s, "<svg") &&
				!strings.Contains(s, "<?xml") &&
				strings.Count(s, "<details>") == 4 &&
				strings.Contains(s, "Cowns (sequential) (24 runs)")
		}},
	} {
		t.Run(string(test.format), func(t *testing.T) {
			path, err := Render(series, dir, Options{Format: test.format, Order: test.order, DPI: 72})
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.Join(dir, "graph."+string(test.format)); path != want {
				t.Errorf("want %s, got %s", want, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !test.check(data) {
				t.Errorf("unexpected %s output (%d bytes)", test.format, len(data))
			}
		})
	}
}

func TestRenderDefaultsToPDF(t *testing.T) {
	dir := testData(t)
	series, err := LoadSeries(dir)
	if err != nil {
		t.Fatal(err)
	}
	path, err := Render(series, dir, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "graph.pdf" {
		t.Errorf("want graph.pdf, got %s", path)
	}
}

func TestRenderNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := Render(nil, dir, Options{})
	if _, ok := errors.Cause(err).(*MissingSeriesError); !ok {
		t.Fatalf("want *MissingSeriesError, got %T: %v", err, err)
	}
	if ents, _ := os.ReadDir(dir); len(ents) != 0 {
		t.Errorf("render with no series wrote %v", ents)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"pdf", "png", "svg", "html"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Error("ParseFormat(jpeg) succeeded")
	}
}

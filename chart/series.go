// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/pingcap/errors"
	"gonum.org/v1/plot/vg/draw"

	"github.com/dinebench/dinebench/results"
)

// A MissingSeriesError reports a series file that is required for the
// chart but is absent or holds no points.
type MissingSeriesError struct {
	Path string
	Err  error // nil if the file exists but is empty
}

func (e *MissingSeriesError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing series %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("missing series %s: no points", e.Path)
}

func (e *MissingSeriesError) Unwrap() error { return e.Err }

// A style is the fixed presentation of one plotted series.
type style struct {
	name  string
	label string
	shape draw.GlyphDrawer
	color color.Color
	// fit requests a least-squares trend line for the series.
	fit bool
}

// D3 category colors.
var (
	blue   = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	orange = color.NRGBA{0xff, 0x7f, 0x0e, 0xff}
	green  = color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}
	red    = color.NRGBA{0xd6, 0x27, 0x28, 0xff}
	purple = color.NRGBA{0x94, 0x67, 0xbd, 0xff}
)

// idealColor is used for the ideal speedup curve.
var idealColor = green

// plotted lists the series drawn on the chart, in legend order. The
// style of each series is fixed by its position, not by its data.
var plotted = []style{
	{name: "pthread_dining_opt_manual", label: "Threads and Mutex (manual)", shape: OpenTriangle{}, color: blue},
	{name: "pthread_dining_opt", label: "Threads and Mutex (std::lock)", shape: ThinCross{}, color: orange},
	{name: "verona_dining_opt", label: "Cowns (alternating)", shape: ThinPlus{}, color: purple},
	{name: "verona_dining_seq", label: "Cowns (sequential)", shape: draw.RingGlyph{}, color: red, fit: true},
}

// SeriesNames returns the base names of the series files the chart
// needs, in legend order.
func SeriesNames() []string {
	names := make([]string, len(plotted))
	for i, s := range plotted {
		names[i] = s.name
	}
	return names
}

// LoadSeries loads every series the chart needs from dir. It fails
// with a *MissingSeriesError if any of them is absent or empty, and
// with a *results.MalformedInputError if any cannot be parsed.
func LoadSeries(dir string) ([]results.Series, error) {
	out := make([]results.Series, 0, len(plotted))
	for _, st := range plotted {
		path := filepath.Join(dir, st.name+".csv")
		fi, err := os.Stat(path)
		if err != nil {
			return nil, &MissingSeriesError{Path: path, Err: err}
		}
		if fi.Size() == 0 {
			return nil, &MissingSeriesError{Path: path}
		}
		pts, err := results.Load(path)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if len(pts) == 0 {
			return nil, &MissingSeriesError{Path: path}
		}
		out = append(out, results.Series{Name: st.name, Label: st.label, Points: pts})
	}
	return out, nil
}

func styleFor(i int, s results.Series) style {
	for _, st := range plotted {
		if st.name == s.Name {
			return st
		}
	}
	// Series not in the fixed table take the unused colors in turn.
	extra := []color.Color{blue, orange, purple, red}
	return style{name: s.Name, label: s.Label, shape: draw.CircleGlyph{}, color: extra[i%len(extra)]}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders benchmark timing series as a comparison chart.
//
// The chart has one scatter trace per series, a dashed least-squares
// trend line for the sequential series, and the analytic ideal speedup
// curve. Time is drawn on a logarithmic axis.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/aclements/go-moremath/stats"
	"github.com/pingcap/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/dinebench/dinebench/results"
)

// A Format is an output format for Render.
type Format string

const (
	PDF  Format = "pdf"
	PNG  Format = "png"
	SVG  Format = "svg"
	HTML Format = "html"
)

// ParseFormat checks that s names a supported Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PDF, PNG, SVG, HTML:
		return f, nil
	}
	return "", errors.Errorf("unknown chart format %q (want pdf, png, svg or html)", s)
}

// Options control Render.
type Options struct {
	Format Format        // default PDF
	Order  results.Order // how each series' points are connected

	// Width and Height default to 16cm by 10cm.
	Width, Height vg.Length
	// DPI applies to PNG output only. Default 300.
	DPI int
}

const pointRad = 2

// Render draws series into dir/graph.<format> and returns the path
// written. Nothing is written unless the whole chart renders.
func Render(series []results.Series, dir string, opts Options) (string, error) {
	if opts.Format == "" {
		opts.Format = PDF
	}
	if opts.Width == 0 {
		opts.Width = 16 * vg.Centimeter
	}
	if opts.Height == 0 {
		opts.Height = 10 * vg.Centimeter
	}
	if opts.DPI == 0 {
		opts.DPI = 300
	}
	if len(series) == 0 {
		return "", &MissingSeriesError{Path: dir}
	}

	pl, err := newPlot(series, opts.Order)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	switch opts.Format {
	case PDF:
		err = drawTo(&buf, pl, vgpdf.New(opts.Width, opts.Height))
	case SVG:
		err = drawTo(&buf, pl, vgsvg.New(opts.Width, opts.Height))
	case PNG:
		err = drawTo(&buf, pl, vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(opts.DPI),
			vgimg.UseBackgroundColor(color.White))})
	case HTML:
		err = writeHTML(&buf, pl, series, opts)
	default:
		err = errors.Errorf("unknown chart format %q", opts.Format)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "graph."+string(opts.Format))
	if err := os.WriteFile(path, buf.Bytes(), 0666); err != nil {
		return "", errors.Trace(err)
	}
	return path, nil
}

// drawTo draws pl onto a fresh canvas and writes the canvas to buf.
func drawTo(buf *bytes.Buffer, pl *plot.Plot, can vg.CanvasWriterTo) error {
	pl.Draw(draw.New(can))
	_, err := can.WriteTo(buf)
	return errors.Trace(err)
}

func newPlot(series []results.Series, order results.Order) (*plot.Plot, error) {
	pl := plot.New()
	pl.X.Label.Text = "Hardware Threads"
	pl.Y.Label.Text = "Time Taken (s)"
	pl.Y.Scale = plot.LogScale{}
	pl.Y.Tick.Marker = decades{}
	pl.X.Tick.Marker = steps{first: 1, step: 10}
	pl.Legend.Top = true
	pl.Legend.TextStyle.Font.Size = vg.Points(8)
	pl.X.Tick.Label.Font.Size = vg.Points(8)
	pl.Y.Tick.Label.Font.Size = vg.Points(8)

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	var ys []float64
	for i, s := range series {
		st := styleFor(i, s)
		pts := results.Sorted(s.Points, order)
		xys := positive(toXYs(pts))
		if len(xys) == 0 {
			return nil, &MissingSeriesError{Path: s.Name}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, errors.Annotatef(err, "series %s", s.Name)
		}
		sc.GlyphStyle.Shape = st.shape
		sc.GlyphStyle.Color = st.color
		sc.GlyphStyle.Radius = vg.Points(pointRad)
		pl.Add(sc)
		pl.Legend.Add(st.label, sc)
		for _, xy := range xys {
			ys = append(ys, xy.Y)
		}

		if !st.fit {
			continue
		}
		fit := FitLine(pts)
		if math.IsNaN(fit.Slope) {
			continue
		}
		trend := positive(fit.Line(MaxCores))
		if len(trend) < 2 {
			continue
		}
		l, err := plotter.NewLine(trend)
		if err != nil {
			return nil, errors.Annotatef(err, "trend of %s", s.Name)
		}
		l.LineStyle.Color = st.color
		l.LineStyle.Width = vg.Points(1)
		l.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		pl.Add(l)
		for _, xy := range trend {
			ys = append(ys, xy.Y)
		}
	}

	ideal, err := plotter.NewLine(Ideal(IdealBaseline, IdealPlateau, MaxCores))
	if err != nil {
		return nil, errors.Trace(err)
	}
	ideal.LineStyle.Color = idealColor
	ideal.LineStyle.Width = vg.Points(1)
	pl.Add(ideal)
	pl.Legend.Add("Ideal", ideal)
	ys = append(ys, IdealBaseline, IdealBaseline/IdealPlateau)

	pl.X.Min, pl.X.Max = 0, MaxCores+1
	lo, hi := stats.Bounds(ys)
	pl.Y.Min, pl.Y.Max = lo*0.8, hi*1.25
	return pl, nil
}

// decades marks powers of ten on a logarithmic axis.
type decades struct{}

func (decades) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for e := math.Floor(math.Log10(min)); math.Pow(10, e) <= max; e++ {
		v := math.Pow(10, e)
		if v < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}
	return ticks
}

// steps marks first and every step after it.
type steps struct {
	first, step float64
}

func (s steps) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := s.first; v <= max; v += s.step {
		if v < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
	}
	return ticks
}

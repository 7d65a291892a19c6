// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"

	"github.com/dinebench/dinebench/results"
)

// Reference workload constants for the ideal speedup curve.
const (
	// IdealBaseline is the single-core time in seconds of the
	// reference workload.
	IdealBaseline = 50.0
	// IdealPlateau is the core count beyond which the reference
	// workload stops speeding up.
	IdealPlateau = 50
	// MaxCores is the right end of the chart's core axis.
	MaxCores = 72
)

// Ideal returns the ideal speedup curve for core counts 1..maxCores:
// time(c) = baseline / min(c, plateau). It does not depend on any
// measurement.
func Ideal(baseline float64, plateau, maxCores int) plotter.XYs {
	xys := make(plotter.XYs, 0, maxCores)
	for c := 1; c <= maxCores; c++ {
		xys = append(xys, plotter.XY{X: float64(c), Y: baseline / float64(min(c, plateau))})
	}
	return xys
}

// A Fit is an ordinary least-squares line time = Intercept + Slope*cores.
type Fit struct {
	Intercept, Slope float64
}

// FitLine fits time against cores over pts. With fewer than two
// distinct core counts the slope is undefined and both fields are NaN.
func FitLine(pts []results.Point) Fit {
	xs, ys := results.XY(pts)
	distinct := false
	for _, x := range xs {
		if x != xs[0] {
			distinct = true
			break
		}
	}
	if !distinct {
		return Fit{math.NaN(), math.NaN()}
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Fit{Intercept: alpha, Slope: beta}
}

// At returns the fitted time at cores.
func (f Fit) At(cores float64) float64 {
	return f.Intercept + f.Slope*cores
}

// Line evaluates f at every core count from 1 to maxCores, regardless
// of the range of the data it was fitted to.
func (f Fit) Line(maxCores int) plotter.XYs {
	xys := make(plotter.XYs, 0, maxCores)
	for c := 1; c <= maxCores; c++ {
		xys = append(xys, plotter.XY{X: float64(c), Y: f.At(float64(c))})
	}
	return xys
}

// toXYs converts pts to plotter form, keeping their order.
func toXYs(pts []results.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: float64(p.Cores), Y: p.Time}
	}
	return xys
}

// positive drops points that cannot appear on a logarithmic time axis.
func positive(xys plotter.XYs) plotter.XYs {
	out := xys[:0:0]
	for _, xy := range xys {
		if xy.Y > 0 && !math.IsInf(xy.Y, 0) && !math.IsNaN(xy.Y) {
			out = append(out, xy)
		}
	}
	return out
}

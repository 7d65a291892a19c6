// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// A Summary aggregates all points of a series that share a core count.
type Summary struct {
	Cores  int
	N      int
	Mean   float64
	Median float64
	Min    float64
	Max    float64

	// Speedup is the mean time at one core divided by Mean, or NaN
	// if the series has no single-core points.
	Speedup float64
}

// Summarize groups pts by core count and returns one Summary per
// distinct core count, in increasing core order.
func Summarize(pts []Point) []Summary {
	if len(pts) == 0 {
		return nil
	}
	cores := make([]int, len(pts))
	times := make([]float64, len(pts))
	for i, p := range pts {
		cores[i], times[i] = p.Cores, p.Time
	}
	t := new(table.Builder).Add("cores", cores).Add("time", times).Done()

	g := ggstat.Agg("cores")(
		ggstat.AggCount("n"),
		ggstat.AggMean("time"),
		ggstat.AggQuantile("median", 0.5, "time"),
		ggstat.AggMin("time"),
		ggstat.AggMax("time"),
	).F(t)
	g = table.SortBy(g, "cores")
	agg := g.Table(table.RootGroupID)

	var (
		cs     = agg.MustColumn("cores").([]int)
		ns     = agg.MustColumn("n").([]int)
		means  = agg.MustColumn("mean time").([]float64)
		meds   = agg.MustColumn("median time").([]float64)
		mins   = agg.MustColumn("min time").([]float64)
		maxs   = agg.MustColumn("max time").([]float64)
		single = math.NaN()
	)
	out := make([]Summary, len(cs))
	for i := range cs {
		out[i] = Summary{Cores: cs[i], N: ns[i], Mean: means[i], Median: meds[i], Min: mins[i], Max: maxs[i]}
		if cs[i] == 1 {
			single = means[i]
		}
	}
	for i := range out {
		out[i].Speedup = single / out[i].Mean
	}
	return out
}

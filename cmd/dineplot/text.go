// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/perf/benchunit"

	"github.com/dinebench/dinebench/internal/texttab"
	"github.com/dinebench/dinebench/results"
)

// writeSummary prints one table per series: the label, then a row per
// core count.
func writeSummary(w io.Writer, series []results.Series) error {
	var tab texttab.Table
	for i, s := range series {
		if i > 0 {
			tab.Row()
		}
		label := s.Label
		if label == "" {
			label = s.Name
		}
		tab.Row().Title(fmt.Sprintf("%s (%d runs)", label, len(s.Points)))
		tab.Row().Num("cores").Num("n").Num("mean").Num("median").Num("min").Num("max").Num("speedup")
		sums := results.Summarize(s.Points)
		var times []float64
		for _, sum := range sums {
			times = append(times, sum.Mean, sum.Median, sum.Min, sum.Max)
		}
		// One scale per series keeps its columns comparable.
		sc := benchunit.CommonScale(times, benchunit.Decimal)
		seconds := func(x float64) string { return sc.Format(x) + "s" }
		for _, sum := range sums {
			tab.Row().
				Num(strconv.Itoa(sum.Cores)).
				Num(strconv.Itoa(sum.N)).
				Num(seconds(sum.Mean)).
				Num(seconds(sum.Median)).
				Num(seconds(sum.Min)).
				Num(seconds(sum.Max)).
				Num(speedup(sum.Speedup))
		}
	}
	return tab.Format(w)
}

func speedup(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "~"
	}
	return strconv.FormatFloat(x, 'f', 2, 64) + "x"
}

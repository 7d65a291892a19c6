// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
	"github.com/pingcap/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/dinebench/dinebench/results"
)

var htmlTemplate = template.Must(template.New("graph").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Dining philosophers scaling</title>
<style>
body { font-family: "Courier New", monospace; font-size: 12px; }
.series { border-collapse: collapse; margin: 0.5em 0 1em 1em; }
.series th { border-bottom: 1px solid #666; padding: 0 1em; }
.series td { text-align: right; padding: 0 1em; }
summary { cursor: pointer; }
</style>
</head>
<body>
<div class="chart">{{.Chart}}</div>
{{range .Series -}}
<details>
<summary>{{.Label}} ({{.N}} runs)</summary>
<table class="series">
<tr><th>cores<th>n<th>mean (s)<th>median (s)<th>min (s)<th>max (s)<th>speedup
{{range .Rows -}}
<tr><td>{{.Cores}}<td>{{.N}}<td>{{.Mean}}<td>{{.Median}}<td>{{.Min}}<td>{{.Max}}<td>{{.Speedup}}
{{end -}}
</table>
</details>
{{end -}}
</body>
</html>
`))

type htmlData struct {
	Chart  safehtml.HTML
	Series []htmlSeries
}

type htmlSeries struct {
	Label string
	N     int
	Rows  []htmlRow
}

type htmlRow struct {
	Cores, N                        int
	Mean, Median, Min, Max, Speedup string
}

// writeHTML writes a document holding pl as inline SVG followed by a
// collapsible per-core summary of each series.
func writeHTML(w io.Writer, pl *plot.Plot, series []results.Series, opts Options) error {
	var svg bytes.Buffer
	if err := drawTo(&svg, pl, vgsvg.New(opts.Width, opts.Height)); err != nil {
		return err
	}
	// Drop the XML prolog; the svg element is embedded in HTML.
	doc := svg.String()
	if i := strings.Index(doc, "<svg"); i > 0 {
		doc = doc[i:]
	}

	data := htmlData{
		// The SVG is produced by vgsvg from numbers and our own
		// labels, which it escapes.
		Chart: uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(doc),
	}
	for i, s := range series {
		hs := htmlSeries{Label: styleFor(i, s).label, N: len(s.Points)}
		for _, sum := range results.Summarize(s.Points) {
			hs.Rows = append(hs.Rows, htmlRow{
				Cores:   sum.Cores,
				N:       sum.N,
				Mean:    seconds(sum.Mean),
				Median:  seconds(sum.Median),
				Min:     seconds(sum.Min),
				Max:     seconds(sum.Max),
				Speedup: ratio(sum.Speedup),
			})
		}
		data.Series = append(data.Series, hs)
	}
	return errors.Trace(htmlTemplate.Execute(w, data))
}

func seconds(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}

func ratio(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "~"
	}
	return strconv.FormatFloat(x, 'f', 2, 64) + "x"
}

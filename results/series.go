// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"sort"
)

// A Point is one measurement: the wall-clock time in seconds of a
// single benchmark invocation given Cores hardware threads.
type Point struct {
	Cores int
	Time  float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %g)", p.Cores, p.Time)
}

// A Series is the full set of measurements of one benchmark variant.
type Series struct {
	// Name is the base name of the series file, without ".csv".
	Name string
	// Label is the human-readable legend for the series.
	Label  string
	Points []Point
}

// An Order selects how the points of a series are connected when
// they are plotted.
type Order int

const (
	// ByTime orders points by increasing time, breaking ties by
	// core count. This is the ordering used by earlier charts.
	ByTime Order = iota
	// ByCores orders points by increasing core count, breaking
	// ties by time.
	ByCores
)

func (o Order) String() string {
	switch o {
	case ByTime:
		return "time"
	case ByCores:
		return "cores"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses the name of an Order as printed by Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "time":
		return ByTime, nil
	case "cores":
		return ByCores, nil
	}
	return 0, fmt.Errorf("unknown order %q (want time or cores)", s)
}

// Sorted returns a copy of pts sorted by o. pts is not modified.
func Sorted(pts []Point, o Order) []Point {
	out := append([]Point(nil), pts...)
	switch o {
	case ByCores:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Cores != out[j].Cores {
				return out[i].Cores < out[j].Cores
			}
			return out[i].Time < out[j].Time
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Time != out[j].Time {
				return out[i].Time < out[j].Time
			}
			return out[i].Cores < out[j].Cores
		})
	}
	return out
}

// XY splits pts into parallel core and time slices.
func XY(pts []Point) (cores, times []float64) {
	cores = make([]float64, len(pts))
	times = make([]float64, len(pts))
	for i, p := range pts {
		cores[i] = float64(p.Cores)
		times[i] = p.Time
	}
	return cores, times
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"strconv"
)

// A Range selects the core counts a variant is swept over.
type Range int

const (
	// Dense sweeps every core count from 1 to the number of
	// hardware threads.
	Dense Range = iota
	// Sparse sweeps Params.SparseCores.
	Sparse
)

func (r Range) String() string {
	switch r {
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}
	return fmt.Sprintf("Range(%d)", int(r))
}

// A Variant describes how to invoke the benchmark for one result
// series.
//
// The argument vector for n cores is
//
//	[Taskset --cpu-list 0-(n-1)] benchmark --cores n Pre...
//	    --hunger Hunger/Load --num_tables Tables
//	    --num_philosophers Philosophers*Load Post...
//
// where the affinity prefix is present only if Pin is set.
type Variant struct {
	Name  string
	File  string // series file name in the output directory
	Label string // chart legend

	Range Range
	Pin   bool
	// Load scales the workload: philosophers are multiplied and
	// hunger divided by it. Zero means 1.
	Load int

	Pre, Post []string
}

// Variants is the fixed benchmark matrix, in invocation order.
var Variants = []Variant{
	{
		Name:  "primary-optimal",
		File:  "verona_dining_opt.csv",
		Label: "Cowns (alternating)",
		Range: Dense,
		Post:  []string{"--optimal_order", "1"},
	},
	{
		Name:  "primary-optimal-doubled-load",
		File:  "verona_dining_opt_200.csv",
		Label: "Cowns (alternating, 2x philosophers)",
		Range: Dense,
		Load:  2,
		Post:  []string{"--optimal_order", "1"},
	},
	{
		Name:  "baseline-sequential",
		File:  "pthread_dining_seq.csv",
		Label: "Threads and Mutex",
		Range: Dense,
		Pin:   true,
		Pre:   []string{"--pthread"},
		Post:  []string{"1"},
	},
	{
		Name:  "baseline-optimal",
		File:  "pthread_dining_opt.csv",
		Label: "Threads and Mutex (std::lock)",
		Range: Dense,
		Pin:   true,
		Pre:   []string{"--pthread"},
		Post:  []string{"1", "--optimal_order"},
	},
	{
		Name:  "baseline-optimal-manual",
		File:  "pthread_dining_opt_manual.csv",
		Label: "Threads and Mutex (manual)",
		Range: Dense,
		Pin:   true,
		Pre:   []string{"--pthread"},
		Post:  []string{"1", "--optimal_order", "--manual_lock_order"},
	},
	{
		Name:  "dense-sequential",
		File:  "verona_dining_seq.csv",
		Label: "Cowns (sequential)",
		Range: Sparse,
		Pre:   []string{"--test_no", "1"},
		Post:  []string{"1"},
	},
}

func (v *Variant) load() int {
	if v.Load < 1 {
		return 1
	}
	return v.Load
}

// maxLoad returns the largest Load in Variants.
func maxLoad() int {
	m := 1
	for i := range Variants {
		m = max(m, Variants[i].load())
	}
	return m
}

// Argv returns the argument vector that runs v on cores cores.
func (v *Variant) Argv(benchmark string, p Params, cores int) []string {
	load := v.load()
	argv := make([]string, 0, 16+len(v.Pre)+len(v.Post))
	if v.Pin {
		argv = append(argv, p.Taskset, "--cpu-list", fmt.Sprintf("0-%d", cores-1))
	}
	argv = append(argv, benchmark, "--cores", strconv.Itoa(cores))
	argv = append(argv, v.Pre...)
	argv = append(argv,
		"--hunger", strconv.Itoa(p.Hunger/load),
		"--num_tables", strconv.Itoa(p.Tables),
		"--num_philosophers", strconv.Itoa(p.Philosophers*load),
	)
	argv = append(argv, v.Post...)
	return argv
}

// Cores returns the core counts swept by r, in order. Counts outside
// [1, hardwareThreads] are dropped.
func (r Range) Cores(p Params, hardwareThreads int) []int {
	var cores []int
	switch r {
	case Dense:
		for n := 1; n <= hardwareThreads; n++ {
			cores = append(cores, n)
		}
	case Sparse:
		for _, n := range p.SparseCores {
			if n >= 1 && n <= hardwareThreads {
				cores = append(cores, n)
			}
		}
	}
	return cores
}

// Invocations returns the number of benchmark runs one sweep of cfg
// performs.
func Invocations(cfg *Config) int {
	n := 0
	for i := range Variants {
		n += len(Variants[i].Range.Cores(cfg.Params, cfg.HardwareThreads))
	}
	return n * cfg.Repeats
}

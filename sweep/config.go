// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// A ConfigurationError reports a sweep configuration that cannot be
// run. No benchmark process is started once one is returned.
type ConfigurationError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Params are the workload constants passed to every benchmark
// invocation.
type Params struct {
	Philosophers int `toml:"philosophers"`
	Hunger       int `toml:"hunger"`
	Tables       int `toml:"tables"`

	// SparseCores is the core-count list used by the sparse
	// variants.
	SparseCores []int `toml:"sparse_cores"`

	// Taskset is the affinity tool used by pinned variants. It is
	// invoked as "Taskset --cpu-list 0-N benchmark ...".
	Taskset string `toml:"taskset"`
}

// DefaultParams returns the parameters of the reference workload.
func DefaultParams() Params {
	return Params{
		Philosophers: 100,
		Hunger:       500,
		Tables:       1,
		SparseCores:  []int{1, 2, 3, 4, 5, 10, 20, 40, 60, 72},
		Taskset:      "taskset",
	}
}

// LoadParams reads a TOML file of parameter overrides. Keys absent
// from the file keep their default values.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()
	if strings.TrimSpace(path) == "" {
		return p, &ConfigurationError{Field: "params", Msg: "path is empty"}
	}
	if filepath.Ext(path) != ".toml" {
		return p, &ConfigurationError{Field: "params", Msg: fmt.Sprintf("%s is not a .toml file", path)}
	}
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return p, &ConfigurationError{Field: "params", Msg: "decode " + path, Err: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return p, &ConfigurationError{Field: "params", Msg: fmt.Sprintf("unknown keys in %s: %v", path, undecoded)}
	}
	return p, p.validate()
}

func (p Params) validate() error {
	check := func(field string, v int) error {
		if v < 1 {
			return &ConfigurationError{Field: field, Msg: fmt.Sprintf("must be positive, got %d", v)}
		}
		return nil
	}
	if err := check("philosophers", p.Philosophers); err != nil {
		return err
	}
	if err := check("hunger", p.Hunger); err != nil {
		return err
	}
	if load := maxLoad(); p.Hunger < load {
		return &ConfigurationError{Field: "hunger", Msg: fmt.Sprintf("must be at least %d, the largest variant load, got %d", load, p.Hunger)}
	}
	if err := check("tables", p.Tables); err != nil {
		return err
	}
	for _, c := range p.SparseCores {
		if err := check("sparse_cores", c); err != nil {
			return err
		}
	}
	if p.Taskset == "" {
		return &ConfigurationError{Field: "taskset", Msg: "affinity tool is empty"}
	}
	return nil
}

// Config is a validated sweep configuration. It is not modified once
// Configure returns it.
type Config struct {
	Repeats   int
	Benchmark string
	OutDir    string
	Plot      bool

	// HardwareThreads is the upper end of the dense core range.
	HardwareThreads int

	Params Params
}

// Configure validates the command-line level sweep settings. The
// benchmark must be an executable regular file and outDir must be a
// writable directory; outDir is created if it does not exist.
func Configure(repeats int, benchmark, outDir string, plot bool) (*Config, error) {
	if repeats < 1 {
		return nil, &ConfigurationError{Field: "repeats", Msg: fmt.Sprintf("must be at least 1, got %d", repeats)}
	}
	if err := checkExecutable(benchmark); err != nil {
		return nil, err
	}
	if err := checkWritableDir(outDir); err != nil {
		return nil, err
	}
	return &Config{
		Repeats:         repeats,
		Benchmark:       benchmark,
		OutDir:          outDir,
		Plot:            plot,
		HardwareThreads: runtime.NumCPU(),
		Params:          DefaultParams(),
	}, nil
}

// Validate reports whether c can be swept.
func (c *Config) Validate() error {
	if c.Repeats < 1 {
		return &ConfigurationError{Field: "repeats", Msg: fmt.Sprintf("must be at least 1, got %d", c.Repeats)}
	}
	if c.HardwareThreads < 1 {
		return &ConfigurationError{Field: "hardware threads", Msg: fmt.Sprintf("must be at least 1, got %d", c.HardwareThreads)}
	}
	return c.Params.validate()
}

func checkExecutable(path string) error {
	if path == "" {
		return &ConfigurationError{Field: "benchmark", Msg: "no benchmark executable given"}
	}
	fi, err := os.Stat(path)
	if err != nil {
		return &ConfigurationError{Field: "benchmark", Msg: path, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return &ConfigurationError{Field: "benchmark", Msg: fmt.Sprintf("%s is not a regular file", path)}
	}
	if fi.Mode().Perm()&0111 == 0 {
		return &ConfigurationError{Field: "benchmark", Msg: fmt.Sprintf("%s is not executable", path)}
	}
	return nil
}

func checkWritableDir(dir string) error {
	if dir == "" {
		return &ConfigurationError{Field: "output", Msg: "no output directory given"}
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return &ConfigurationError{Field: "output", Msg: dir, Err: err}
	}
	f, err := os.CreateTemp(dir, ".dinebench-probe-*")
	if err != nil {
		return &ConfigurationError{Field: "output", Msg: fmt.Sprintf("%s is not writable", dir), Err: err}
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return &ConfigurationError{Field: "output", Msg: fmt.Sprintf("removing probe file in %s", dir), Err: err}
	}
	return nil
}

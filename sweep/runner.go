// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/dinebench/dinebench/results"
)

// A BenchmarkExecutionError reports a benchmark process that could not
// be started or exited unsuccessfully.
type BenchmarkExecutionError struct {
	Argv []string
	Err  error
}

func (e *BenchmarkExecutionError) Error() string {
	return fmt.Sprintf("running %s: %v", strings.Join(e.Argv, " "), e.Err)
}

func (e *BenchmarkExecutionError) Unwrap() error { return e.Err }

// A Launcher runs one benchmark process to completion.
type Launcher interface {
	Launch(argv []string) error
}

// ExecLauncher starts argv[0] as a child process and waits for it.
// The child's output goes to Stdout and Stderr, or is discarded if
// they are nil.
type ExecLauncher struct {
	Stdout, Stderr io.Writer
}

func (l ExecLauncher) Launch(argv []string) error {
	if len(argv) == 0 {
		return errors.New("empty argument vector")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	return cmd.Run()
}

// A Runner drives the benchmark through the variant matrix.
type Runner struct {
	cfg *Config

	// Launcher starts benchmark processes. NewRunner sets it to an
	// ExecLauncher that passes through the child's output.
	Launcher Launcher

	log *zap.Logger
	now func() time.Time
}

// NewRunner returns a Runner for cfg. If log is nil, nothing is logged.
func NewRunner(cfg *Config, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		cfg:      cfg,
		Launcher: ExecLauncher{Stdout: os.Stdout, Stderr: os.Stderr},
		log:      log,
		now:      time.Now,
	}
}

// RunOnce runs argv and returns its wall-clock duration in seconds.
// There is no timeout: RunOnce blocks until the process exits.
func (r *Runner) RunOnce(argv []string) (float64, error) {
	start := r.now()
	err := r.Launcher.Launch(argv)
	elapsed := r.now().Sub(start)
	if err != nil {
		return 0, &BenchmarkExecutionError{Argv: argv, Err: err}
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed.Seconds(), nil
}

// Sweep runs cfg.Repeats repetitions of the variant matrix. In each
// repetition every dense variant is run at every dense core count,
// then every sparse variant at every sparse core count.
//
// Each series file is truncated when the sweep starts and every point
// is flushed as soon as it is measured. The first failure ends the
// sweep; rows written before it remain on disk.
func (r *Runner) Sweep() (err error) {
	if err := r.cfg.Validate(); err != nil {
		return err
	}
	files := make([]*results.File, len(Variants))
	defer func() {
		for _, f := range files {
			if f != nil {
				err = multierr.Append(err, f.Close())
			}
		}
	}()
	for i := range Variants {
		f, err := results.Create(filepath.Join(r.cfg.OutDir, Variants[i].File))
		if err != nil {
			return errors.Annotatef(err, "creating series %s", Variants[i].Name)
		}
		files[i] = f
	}

	p := r.cfg.Params
	for _, sparse := range p.SparseCores {
		if sparse > r.cfg.HardwareThreads {
			r.log.Warn("skipping sparse core count above hardware threads",
				zap.Int("cores", sparse), zap.Int("hardwareThreads", r.cfg.HardwareThreads))
		}
	}

	r.log.Info("start sweep",
		zap.String("benchmark", r.cfg.Benchmark),
		zap.String("output", r.cfg.OutDir),
		zap.Int("repeats", r.cfg.Repeats),
		zap.Int("hardwareThreads", r.cfg.HardwareThreads),
		zap.Int("invocations", Invocations(r.cfg)))

	for rep := 1; rep <= r.cfg.Repeats; rep++ {
		for _, rng := range []Range{Dense, Sparse} {
			for _, n := range rng.Cores(p, r.cfg.HardwareThreads) {
				for i := range Variants {
					v := &Variants[i]
					if v.Range != rng {
						continue
					}
					if err := r.trial(v, files[i], n, rep); err != nil {
						return err
					}
				}
			}
		}
		r.log.Info("repeat finished", zap.Int("repeat", rep), zap.Int("of", r.cfg.Repeats))
	}
	return nil
}

func (r *Runner) trial(v *Variant, f *results.File, cores, rep int) error {
	secs, err := r.RunOnce(v.Argv(r.cfg.Benchmark, r.cfg.Params, cores))
	if err != nil {
		r.log.Error("benchmark failed",
			zap.String("variant", v.Name), zap.Int("cores", cores), zap.Int("repeat", rep), zap.Error(err))
		return errors.Trace(err)
	}
	if err := f.Append(results.Point{Cores: cores, Time: secs}); err != nil {
		return err
	}
	r.log.Debug("trial",
		zap.String("variant", v.Name), zap.Int("cores", cores), zap.Int("repeat", rep), zap.Float64("seconds", secs))
	return nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"io"

	"github.com/pingcap/errors"
	"golang.org/x/perf/benchfmt"
)

// WriteBenchfmt writes series in the Go benchmark format, one result
// line per point, so they can be compared with benchstat. Each point
// becomes
//
//	BenchmarkDining/variant=<name>-<cores> 1 <time> sec/op
//
// The core count takes the place of GOMAXPROCS. config is written as
// configuration ahead of the results; keys with File unset are
// internal and not written.
func WriteBenchfmt(w io.Writer, series []Series, config ...benchfmt.Config) error {
	bw := benchfmt.NewWriter(w)
	res := &benchfmt.Result{Config: append([]benchfmt.Config(nil), config...), Iters: 1}
	for _, s := range series {
		for _, p := range s.Points {
			res.Name = benchfmt.Name(fmt.Sprintf("Dining/variant=%s-%d", s.Name, p.Cores))
			res.Values = append(res.Values[:0], benchfmt.Value{Value: p.Time, Unit: "sec/op"})
			if err := bw.Write(res); err != nil {
				return errors.Trace(err)
			}
		}
	}
	return nil
}

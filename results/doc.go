// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package results reads and writes benchmark timing series.
//
// A series is a CSV file with the header "cores,time" followed by one
// row per benchmark invocation. Rows are kept in the order they were
// measured; repeated sweeps produce several rows for the same core
// count.
//
// Writers flush every row to the underlying file as soon as it is
// appended, so an interrupted sweep leaves every completed row on disk.
package results

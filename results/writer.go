// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pingcap/errors"
)

// Header is the first record of every series file.
var Header = []string{"cores", "time"}

// A Writer appends points to a series in CSV form.
//
// Every call to Write flushes the record through to the underlying
// io.Writer before returning.
type Writer struct {
	w   *csv.Writer
	rec [2]string
}

// NewWriter returns a writer that writes the header and then points to w.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := &Writer{w: csv.NewWriter(w)}
	if err := cw.w.Write(Header); err != nil {
		return nil, errors.Trace(err)
	}
	cw.w.Flush()
	if err := cw.w.Error(); err != nil {
		return nil, errors.Trace(err)
	}
	return cw, nil
}

// Write appends p and flushes it.
func (w *Writer) Write(p Point) error {
	w.rec[0] = strconv.Itoa(p.Cores)
	w.rec[1] = strconv.FormatFloat(p.Time, 'g', -1, 64)
	if err := w.w.Write(w.rec[:]); err != nil {
		return errors.Trace(err)
	}
	w.w.Flush()
	return errors.Trace(w.w.Error())
}

// A File is a series file opened for appending.
type File struct {
	Path string

	f *os.File
	w *Writer
}

// Create creates (or truncates) the series file at path and writes
// the header.
func Create(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	w, err := NewWriter(f)
	if err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "writing header of %s", path)
	}
	return &File{Path: path, f: f, w: w}, nil
}

// Append writes p to the file. When Append returns nil the row has
// been handed to the operating system.
func (f *File) Append(p Point) error {
	if f.f == nil {
		return errors.Errorf("%s: append to closed series", f.Path)
	}
	return errors.Annotatef(f.w.Write(p), "appending to %s", f.Path)
}

// Close closes the file. It is safe to call Close more than once.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return errors.Trace(err)
}

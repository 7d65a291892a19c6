// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
)

// A Reader reads points from a series file.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err.
type Reader struct {
	c        *csv.Reader
	fileName string

	header     bool
	coresCol   int
	timeCol    int
	fieldCount int

	point Point
	err   error
}

// A MalformedInputError reports a series file that is missing its
// header or contains a row that is not an (integer, float) pair.
type MalformedInputError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *MalformedInputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader returns a Reader that parses a series from r. fileName
// is used in error messages only.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	c := csv.NewReader(r)
	c.FieldsPerRecord = -1
	c.ReuseRecord = true
	return &Reader{c: c, fileName: fileName}
}

func (r *Reader) malformed(line int, format string, args ...interface{}) {
	r.err = &MalformedInputError{FileName: r.fileName, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Scan advances to the next point and reports whether one was read.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.header {
		if !r.readHeader() {
			return false
		}
	}

	rec, err := r.c.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.csvError(err)
		return false
	}
	line, _ := r.c.FieldPos(0)
	if len(rec) != r.fieldCount {
		r.malformed(line, "want %d fields, got %d", r.fieldCount, len(rec))
		return false
	}
	cores, err := strconv.Atoi(strings.TrimSpace(rec[r.coresCol]))
	if err != nil {
		r.malformed(line, "bad cores value %q", rec[r.coresCol])
		return false
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(rec[r.timeCol]), 64)
	if err != nil {
		r.malformed(line, "bad time value %q", rec[r.timeCol])
		return false
	}
	r.point = Point{Cores: cores, Time: t}
	return true
}

func (r *Reader) readHeader() bool {
	rec, err := r.c.Read()
	if err == io.EOF {
		r.malformed(0, "missing cores,time header")
		return false
	}
	if err != nil {
		r.csvError(err)
		return false
	}
	r.coresCol, r.timeCol = -1, -1
	for i, name := range rec {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")) {
		case "cores":
			r.coresCol = i
		case "time":
			r.timeCol = i
		}
	}
	if r.coresCol < 0 || r.timeCol < 0 {
		r.malformed(1, "missing cores,time header (got %q)", strings.Join(rec, ","))
		return false
	}
	r.fieldCount = len(rec)
	r.header = true
	return true
}

func (r *Reader) csvError(err error) {
	if pe, ok := err.(*csv.ParseError); ok {
		r.malformed(pe.Line, "%v", pe.Err)
		return
	}
	r.err = errors.Annotatef(err, "reading %s", r.fileName)
}

// Point returns the point read by the last successful call to Scan.
func (r *Reader) Point() Point {
	return r.point
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Read reads all points from r in file order.
func Read(r io.Reader, fileName string) ([]Point, error) {
	var pts []Point
	rd := NewReader(r, fileName)
	for rd.Scan() {
		pts = append(pts, rd.Point())
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

// Load reads all points from the series file at path in file order.
func Load(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	return Read(f, path)
}

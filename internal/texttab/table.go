// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table collects rows of cells and formats them in aligned columns.
//
// Row and Cell return the Table so calls can be chained.
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value string
	right bool
	// title cells span the rest of the row and do not affect
	// column widths.
	title bool
}

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

func (t *Table) add(c cell) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	r := &t.rows[len(t.rows)-1]
	*r = append(*r, c)
	if len(*r) > t.cols {
		t.cols = len(*r)
	}
	return t
}

// Cell adds a left-aligned cell to the current row.
func (t *Table) Cell(value string) *Table {
	return t.add(cell{value: value})
}

// Num adds a right-aligned cell to the current row.
func (t *Table) Num(value string) *Table {
	return t.add(cell{value: value, right: true})
}

// Title adds a cell that spans the rest of the current row.
func (t *Table) Title(value string) *Table {
	return t.add(cell{value: value, title: true})
}

// Format lays out t and writes it to w. Columns are separated by two
// spaces and lines carry no trailing space.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row {
			if c.title {
				continue
			}
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			pad := ws[i] - utf8.RuneCountInString(c.value)
			switch {
			case c.title || pad <= 0:
				line.WriteString(c.value)
			case c.right:
				fmt.Fprintf(&line, "%*s%s", pad, "", c.value)
			default:
				fmt.Fprintf(&line, "%s%*s", c.value, pad, "")
			}
			if c.title {
				break
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides lookup of values in tab-delimited tables by
// row and column index or by row and column header content.
package table

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Axis is a table dimension.
type Axis int

const (
	Row Axis = iota
	Column
)

func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Kind is the class of a lookup diagnostic.
type Kind int

const (
	NotFound  Kind = iota // Locator content matched no header.
	Ambiguous             // Locator content matched more than one header.
	NotFloat              // Located cell is not a number.
)

// Diagnostic is a non-fatal lookup anomaly.
type Diagnostic struct {
	Kind    Kind
	Message string
}

func (d Diagnostic) String() string { return d.Message }

// Log collects the diagnostics of a lookup. A nil *Log discards
// diagnostics.
type Log struct {
	// Report, if not nil, is called with each
	// diagnostic as it is logged.
	Report func(Diagnostic)

	Diagnostics []Diagnostic
}

func (l *Log) add(k Kind, format string, args ...interface{}) {
	if l == nil {
		return
	}
	d := Diagnostic{Kind: k, Message: fmt.Sprintf(format, args...)}
	l.Diagnostics = append(l.Diagnostics, d)
	if l.Report != nil {
		l.Report(d)
	}
}

// Matrix is a tab-delimited table held as its lines. The first line
// holds the column headers and the first field of each line holds the
// row header.
type Matrix []string

// ReadMatrix returns the lines of r as a Matrix.
func ReadMatrix(r io.Reader) (Matrix, error) {
	var m Matrix
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		m = append(m, sc.Text())
	}
	err := sc.Err()
	if err != nil {
		return nil, fmt.Errorf("table: failed to read table: %v", err)
	}
	return m, nil
}

// Row returns the fields of row i.
func (m Matrix) Row(i int) []string {
	return strings.Split(m[i], "\t")
}

// RowHeaders returns the first field of every row, including the
// column header row.
func (m Matrix) RowHeaders() []string {
	h := make([]string, len(m))
	for i, line := range m {
		if j := strings.IndexByte(line, '\t'); j >= 0 {
			line = line[:j]
		}
		h[i] = line
	}
	return h
}

// ColumnHeaders returns the fields of the first row.
func (m Matrix) ColumnHeaders() []string {
	if len(m) == 0 {
		return nil
	}
	return m.Row(0)
}

// Resolve returns the index on the given axis identified by loc. If loc
// is an integer it is returned unaltered. Otherwise the index of the
// first header containing loc is returned. If no header contains loc, a
// NotFound diagnostic is logged and zero is returned. If more than one
// header contains loc, an Ambiguous diagnostic listing all matching
// indexes is logged.
func Resolve(loc string, headers []string, axis Axis, log *Log) int {
	i, err := strconv.Atoi(strings.TrimSpace(loc))
	if err == nil {
		return i
	}
	var idx []int
	for i, h := range headers {
		if strings.Contains(h, loc) {
			idx = append(idx, i)
		}
	}
	switch len(idx) {
	case 0:
		log.add(NotFound, "%s content %s not found in any %s headers", axis, loc, axis)
		return 0
	case 1:
	default:
		log.add(Ambiguous, "%s content %s found in multiple %s headers (indexes: %s), using %s index %d",
			axis, loc, axis, formatIndexes(idx), axis, idx[0])
	}
	return idx[0]
}

// Lookup returns the value in m at the row and column identified by the
// row and col locators as described by Resolve. Negative indexes count
// back from the last row or column. If the cell does not hold a number,
// a NotFloat diagnostic is logged and zero is returned. An error is
// returned if a located index is outside the table.
func Lookup(m Matrix, row, col string, log *Log) (float64, error) {
	r := Resolve(row, m.RowHeaders(), Row, log)
	c := Resolve(col, m.ColumnHeaders(), Column, log)
	ri, ok := wrap(r, len(m))
	if !ok {
		return 0, fmt.Errorf("table: row index %d out of range [%d,%d)", r, -len(m), len(m))
	}
	fields := m.Row(ri)
	ci, ok := wrap(c, len(fields))
	if !ok {
		return 0, fmt.Errorf("table: column index %d out of range [%d,%d) in row %d", c, -len(fields), len(fields), ri)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[ci]), 64)
	if err != nil {
		log.add(NotFloat, "found value to parse in row %d and column %d, but content %s is not a float", ri, ci, fields[ci])
		return 0, nil
	}
	return v, nil
}

// wrap returns the index into a sequence of length n denoted by i,
// where negative values of i count back from the end.
func wrap(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, 0 <= i && i < n
}

// FormatFloat returns the shortest decimal representation of v that
// reads back as v. Fixed notation with at least one fractional digit is
// used for decimal exponents in [-4,16) and exponent notation otherwise.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || 16 <= exp {
		return e
	}
	f := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(f, ".") {
		f += ".0"
	}
	return f
}

// formatIndexes returns idx formatted as a bracketed comma separated list.
func formatIndexes(idx []int) string {
	s := make([]string, len(idx))
	for i, v := range idx {
		s[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

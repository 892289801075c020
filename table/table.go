// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package table implements wide numeric tables
// as written by the roadmap model.
//
// A table has one row per period
// and one named column per quantity.
// Optionally,
// the first column is an index column
// that stores the period (or year) labels
// and is never used as data.
package table

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// A Table is a wide numeric table.
type Table struct {
	index string
	rows  []string
	n     int

	names []string
	cols  map[string]int
	data  [][]float64
}

// New creates a new empty table
// with a given number of rows.
// If index is not empty,
// the table will have an index column
// with the given row labels.
func New(index string, rows int, labels []string) *Table {
	t := &Table{
		index: index,
		n:     rows,
		cols:  make(map[string]int),
	}
	if index != "" {
		t.rows = make([]string, rows)
		copy(t.rows, labels)
	}
	return t
}

// Add adds a data column to the table.
func (t *Table) Add(name string, vals []float64) error {
	if _, dup := t.cols[name]; dup {
		return fmt.Errorf("column %q: repeated column", name)
	}
	if len(vals) != t.n {
		return fmt.Errorf("column %q: got %d rows, want %d", name, len(vals), t.n)
	}

	v := make([]float64, len(vals))
	copy(v, vals)
	t.cols[name] = len(t.names)
	t.names = append(t.names, name)
	t.data = append(t.data, v)
	return nil
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	return t.n
}

// IndexName returns the name of the index column.
// It is empty if the table has no index column.
func (t *Table) IndexName() string {
	return t.index
}

// Index returns the labels of the rows.
// If the table has no index column,
// rows are labeled from 1.
func (t *Table) Index() []string {
	if t.index == "" {
		idx := make([]string, t.n)
		for i := range idx {
			idx[i] = strconv.Itoa(i + 1)
		}
		return idx
	}
	return slices.Clone(t.rows)
}

// Names returns the names of the data columns
// in the order of the file.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Column returns the values of a named column.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.cols[name]
	if !ok {
		return nil, false
	}
	return t.data[i], true
}

// Values returns the values of the i-th data column.
func (t *Table) Values(i int) []float64 {
	return t.data[i]
}

// Rescale returns a new table
// with all the data values divided by a scale factor.
// The index column is not modified.
func (t *Table) Rescale(sf float64) (*Table, error) {
	if sf == 0 {
		return nil, fmt.Errorf("invalid scale factor %g", sf)
	}

	nt := New(t.index, t.n, t.rows)
	for i, name := range t.names {
		v := make([]float64, t.n)
		for j, x := range t.data[i] {
			v[j] = x / sf
		}
		nt.cols[name] = i
		nt.names = append(nt.names, name)
		nt.data = append(nt.data, v)
	}
	return nt, nil
}

// Clean sets to zero any value
// with an absolute value smaller than epsilon.
func (t *Table) Clean(epsilon float64) {
	for _, col := range t.data {
		for i, v := range col {
			if math.Abs(v) < epsilon {
				col[i] = 0
			}
		}
	}
}

// X returns the values to be used as the x axis of the table rows.
// If year is true,
// the index labels are parsed as numbers,
// otherwise, rows are numbered from 1.
func (t *Table) X(year bool) ([]float64, error) {
	x := make([]float64, t.n)
	if !year {
		for i := range x {
			x[i] = float64(i + 1)
		}
		return x, nil
	}

	if t.index == "" {
		return nil, fmt.Errorf("table without an index column")
	}
	for i, s := range t.rows {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("index column %q: row %d: %v", t.index, i+1, err)
		}
		x[i] = v
	}
	return x, nil
}

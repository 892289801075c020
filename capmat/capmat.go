// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package capmat implements a capacity matrix
// indexed by location, technology, and period.
//
// The matrix is built from two result tables,
// the capacity of retrofitted (existing) plants,
// and the capacity of new plants.
// Both tables have one row per period
// and one column per technology and location pair.
// The capacity of a cell is the sum of both contributions.
package capmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/label"
	"github.com/stre3am/rmplot/table"
	"gonum.org/v1/gonum/floats"
)

// ErrTechMismatch is returned when the number of retrofit technologies
// is different from the number of new plant technologies.
var ErrTechMismatch = errors.New("number of technologies mismatch")

// ErrOutOfRange is returned when a column label
// refers to a technology or location
// outside the declared dimensions of the run.
var ErrOutOfRange = errors.New("index out of range")

// Matrix is a dense capacity matrix.
type Matrix struct {
	locs    int
	techs   int
	periods int

	labels []string
	v      []float64
}

// Build builds a capacity matrix
// from the retrofit and new plant capacity tables.
//
// The number of retrofit and new plant technologies
// declared in the run must be the same,
// otherwise it returns ErrTechMismatch.
// Both tables must have the same number of rows
// (the periods).
// Any column without a valid technology and location label
// is an error.
func Build(retro, fresh *table.Table, run info.Run) (*Matrix, error) {
	if run.Retrofits != run.News {
		return nil, fmt.Errorf("%w: %d retrofit, %d new", ErrTechMismatch, run.Retrofits, run.News)
	}
	if retro.Rows() != fresh.Rows() {
		return nil, fmt.Errorf("period mismatch: retrofit table with %d rows, new plant table with %d rows", retro.Rows(), fresh.Rows())
	}

	m := New(run.Locations, run.Retrofits, retro.Rows())
	m.labels = retro.Index()

	if err := m.add(retro); err != nil {
		return nil, fmt.Errorf("retrofit table: %w", err)
	}
	if err := m.add(fresh); err != nil {
		return nil, fmt.Errorf("new plant table: %w", err)
	}
	return m, nil
}

// New creates an empty matrix
// with the given dimensions.
func New(locs, techs, periods int) *Matrix {
	labels := make([]string, periods)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return &Matrix{
		locs:    locs,
		techs:   techs,
		periods: periods,
		labels:  labels,
		v:       make([]float64, locs*techs*periods),
	}
}

func (m *Matrix) add(t *table.Table) error {
	for i, name := range t.Names() {
		k, err := label.Parse(name)
		if err != nil {
			return fmt.Errorf("column %d: %w", i+1, err)
		}
		if k.Tech > m.techs {
			return fmt.Errorf("column %q: %w: technology %d of %d", name, ErrOutOfRange, k.Tech, m.techs)
		}
		if k.Loc > m.locs {
			return fmt.Errorf("column %q: %w: location %d of %d", name, ErrOutOfRange, k.Loc, m.locs)
		}

		for p, v := range t.Values(i) {
			m.v[m.pos(k.Loc-1, k.Tech-1, p)] += v
		}
	}
	return nil
}

func (m *Matrix) pos(l, k, t int) int {
	return (l*m.techs+k)*m.periods + t
}

// Dims returns the number of locations,
// technologies,
// and periods of the matrix.
func (m *Matrix) Dims() (locs, techs, periods int) {
	return m.locs, m.techs, m.periods
}

// At returns the capacity of a location,
// technology,
// and period.
// Indices are 0-based.
func (m *Matrix) At(l, k, t int) float64 {
	return m.v[m.pos(l, k, t)]
}

// Add adds a capacity value to a cell of the matrix.
func (m *Matrix) Add(l, k, t int, v float64) {
	m.v[m.pos(l, k, t)] += v
}

// Techs returns the capacity of each technology
// at a location and period.
func (m *Matrix) Techs(l, t int) []float64 {
	v := make([]float64, m.techs)
	for k := range v {
		v[k] = m.At(l, k, t)
	}
	return v
}

// Total returns the total capacity
// of a location at a period.
func (m *Matrix) Total(l, t int) float64 {
	return floats.Sum(m.Techs(l, t))
}

// Max returns the largest total capacity
// of any location at any period.
func (m *Matrix) Max() float64 {
	var max float64
	for l := 0; l < m.locs; l++ {
		for t := 0; t < m.periods; t++ {
			if s := m.Total(l, t); s > max {
				max = s
			}
		}
	}
	return max
}

// Periods returns the labels of the periods.
func (m *Matrix) Periods() []string {
	return slices.Clone(m.labels)
}

// WriteCSV writes the matrix as a comma-delimited file
// with the following columns:
//
//   - location, the location index (1-based)
//   - technology, the technology index (1-based)
//   - period, the period label
//   - capacity, the capacity value
func (m *Matrix) WriteCSV(w io.Writer) error {
	tab := csv.NewWriter(w)

	header := []string{"location", "technology", "period", "capacity"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for l := 0; l < m.locs; l++ {
		for k := 0; k < m.techs; k++ {
			for t := 0; t < m.periods; t++ {
				row := []string{
					strconv.Itoa(l + 1),
					strconv.Itoa(k + 1),
					m.labels[t],
					strconv.FormatFloat(m.At(l, k, t), 'f', 6, 64),
				}
				if err := tab.Write(row); err != nil {
					return fmt.Errorf("when writing data: %v", err)
				}
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package switches

import (
	"errors"
	"fmt"

	"github.com/stre3am/rmplot/label"
	"github.com/stre3am/rmplot/table"
	"gonum.org/v1/gonum/mat"
)

// ErrOutOfRange is returned when a column label
// refers to a location or technology
// outside the declared dimensions of the run.
var ErrOutOfRange = errors.New("index out of range")

// Indicator reads a per-location indicator
// from a result table.
//
// The table has one row per period
// and one column per location,
// labeled as "l_<loc>".
// The returned matrix has one row per location
// and one column per period.
// Locations without a column in the table
// are set to zero.
func Indicator(t *table.Table, locations int) (*mat.Dense, error) {
	if locations < 1 {
		return nil, fmt.Errorf("invalid number of locations: %d", locations)
	}
	if t.Rows() < 1 {
		return nil, fmt.Errorf("table without periods")
	}

	m := mat.NewDense(locations, t.Rows(), nil)
	for i, name := range t.Names() {
		l, err := label.ParseLoc(name)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		if l > locations {
			return nil, fmt.Errorf("column %q: %w: location %d of %d", name, ErrOutOfRange, l, locations)
		}
		m.SetRow(l-1, t.Values(i))
	}
	return m, nil
}

// ToTable returns an indicator
// (or a switch matrix)
// as a result table,
// with one row per period
// and one column per location.
func ToTable(m mat.Matrix, index string, periods []string) (*table.Table, error) {
	r, c := m.Dims()
	if len(periods) != c {
		return nil, fmt.Errorf("got %d period labels, want %d", len(periods), c)
	}

	t := table.New(index, c, periods)
	for i := 0; i < r; i++ {
		v := mat.Row(nil, i, m)
		if err := t.Add(label.Loc(i+1), v); err != nil {
			return nil, err
		}
	}
	return t, nil
}

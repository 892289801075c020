// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package switches

import (
	"fmt"

	"github.com/stre3am/rmplot/label"
	"github.com/stre3am/rmplot/table"
	"gonum.org/v1/gonum/mat"
)

// Stack returns the status of each technology
// as a matrix of locations by periods.
//
// The table has one row per period
// and one column per technology and location pair,
// labeled as "k_<tech>_l_<loc>".
// If online is not nil,
// the status is multiplied by the online status of the location.
// Pairs disabled in the filter,
// or without a column in the table,
// are set to zero.
func Stack(t *table.Table, online mat.Matrix, filter *table.Filter, locations, techs int) ([]*mat.Dense, error) {
	if locations < 1 || techs < 1 {
		return nil, fmt.Errorf("invalid dimensions: %d locations, %d technologies", locations, techs)
	}
	periods := t.Rows()
	if periods < 1 {
		return nil, fmt.Errorf("table without periods")
	}
	if online != nil {
		r, c := online.Dims()
		if r != locations || c != periods {
			return nil, fmt.Errorf("online status with %d locations and %d periods, want %d and %d", r, c, locations, periods)
		}
	}

	stack := make([]*mat.Dense, techs)
	for k := range stack {
		stack[k] = mat.NewDense(locations, periods, nil)
	}

	for i, name := range t.Names() {
		key, err := label.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		if key.Tech > techs {
			return nil, fmt.Errorf("column %q: %w: technology %d of %d", name, ErrOutOfRange, key.Tech, techs)
		}
		if key.Loc > locations {
			return nil, fmt.Errorf("column %q: %w: location %d of %d", name, ErrOutOfRange, key.Loc, locations)
		}

		l, k := key.Loc-1, key.Tech-1
		if !filter.On(l, k) {
			continue
		}
		for p, v := range t.Values(i) {
			if online != nil {
				v *= online.At(l, p)
			}
			stack[k].Set(l, p, v)
		}
	}
	return stack, nil
}

// None is the category of a cell
// without an active technology.
const None = -1

// Categories is the technology assigned
// to each location at each period.
type Categories struct {
	cells [][]int

	// Overlaps is the number of cells
	// in which the summed status of all technologies
	// is larger than one.
	Overlaps int
}

// Assign assigns to each location and period
// the technology that is active.
//
// If more than one technology is active,
// the one with the largest index is used.
// If firstOnly is true,
// once a location switches to a technology other than the first one
// (the base technology),
// the remaining periods of the location are left as None.
func Assign(stack []*mat.Dense, firstOnly bool) (*Categories, error) {
	if len(stack) == 0 {
		return nil, fmt.Errorf("empty technology stack")
	}
	r, c := stack[0].Dims()
	for k, m := range stack[1:] {
		if mr, mc := m.Dims(); mr != r || mc != c {
			return nil, fmt.Errorf("technology %d: got %dx%d status, want %dx%d", k+2, mr, mc, r, c)
		}
	}

	cats := &Categories{
		cells: make([][]int, r),
	}
	for i := 0; i < r; i++ {
		row := make([]int, c)
		for j := range row {
			row[j] = None
		}
		cats.cells[i] = row

		for j := 0; j < c; j++ {
			var sum float64
			switched := false
			for k, m := range stack {
				v := m.At(i, j)
				sum += v
				if v > 0 {
					row[j] = k
					if k > 0 {
						switched = true
					}
				}
			}
			if sum > 1 {
				cats.Overlaps++
			}
			if firstOnly && switched {
				break
			}
		}
	}
	return cats, nil
}

// Dims returns the number of locations and periods.
func (c *Categories) Dims() (locs, periods int) {
	if len(c.cells) == 0 {
		return 0, 0
	}
	return len(c.cells), len(c.cells[0])
}

// At returns the technology assigned
// to a location at a period,
// or None.
func (c *Categories) At(l, t int) int {
	return c.cells[l][t]
}

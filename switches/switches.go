// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package switches implements the detection of transition events
// (retirements and expansions)
// from indicator series of a roadmap model run.
//
// An indicator is a matrix with one row per location
// and one column per period.
// A switch matrix has the same shape,
// and marks with 1 the periods at which a transition is observed
// with respect to the previous period.
package switches

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Retirement returns the retirement switches
// of an online status indicator.
//
// A period is marked when the value decreases
// with respect to the previous period.
// The first period is compared against the baseline:
// it is marked if the value is smaller than the baseline,
// and no other period of that location is marked.
// Otherwise,
// every strict decrease is marked.
func Retirement(m mat.Matrix, baseline float64) *mat.Dense {
	return detect(m, baseline, func(prev, v float64) bool {
		return v-prev < 0
	})
}

// Expansion returns the expansion switches
// of an expansion indicator.
//
// A period is marked when the value increases
// with respect to the previous period.
// The first period is compared against the baseline:
// it is marked if the value is larger than the baseline,
// and no other period of that location is marked.
// Otherwise,
// every strict increase is marked.
func Expansion(m mat.Matrix, baseline float64) *mat.Dense {
	return detect(m, baseline, func(prev, v float64) bool {
		return v-prev > 0
	})
}

func detect(m mat.Matrix, baseline float64, event func(prev, v float64) bool) *mat.Dense {
	r, c := m.Dims()
	sw := newDense(r, c)
	if c == 0 {
		return sw
	}
	for i := 0; i < r; i++ {
		prev := m.At(i, 0)
		if event(baseline, prev) {
			sw.Set(i, 0, 1)
			continue
		}
		for j := 1; j < c; j++ {
			v := m.At(i, j)
			if event(prev, v) {
				sw.Set(i, j, 1)
			}
			prev = v
		}
	}
	return sw
}

// FirstOnly returns a copy of a switch matrix
// in which only the first switch of each location
// is kept.
func FirstOnly(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	sw := newDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				sw.Set(i, j, v)
				break
			}
		}
	}
	return sw
}

// Mask returns the elementwise product
// of an indicator and the online status,
// so the indicator of a unit that is not online
// is ignored.
func Mask(m, online mat.Matrix) (*mat.Dense, error) {
	r, c := m.Dims()
	or, oc := online.Dims()
	if r != or || c != oc {
		return nil, fmt.Errorf("online status with %d locations and %d periods, want %d and %d", or, oc, r, c)
	}
	if r == 0 || c == 0 {
		return &mat.Dense{}, nil
	}

	var d mat.Dense
	d.MulElem(m, online)
	return &d, nil
}

// newDense returns a zero matrix,
// or an empty matrix if any dimension is zero.
func newDense(r, c int) *mat.Dense {
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(r, c, nil)
}

// Count returns the number of switches
// of each location.
func Count(m mat.Matrix) []int {
	r, c := m.Dims()
	n := make([]int, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				n[i]++
			}
		}
	}
	return n
}

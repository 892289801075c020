// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package info

import (
	"fmt"
	"io"
	"os"
)

// Kind is a kind of reported quantity.
type Kind string

// Valid quantity kinds.
const (
	Emission    Kind = "em"
	Capacity    Kind = "cap"
	Cash        Kind = "cash"
	Heat        Kind = "heat"
	Electricity Kind = "elec"
)

// Scale stores the scale factors
// used to transform the model units
// into reporting units.
type Scale map[Kind]float64

var kinds = []Kind{Emission, Capacity, Cash, Heat, Electricity}

// ReadScale reads the scale factors
// from a comma-delimited file.
//
// The file has a header
// and the scale factors are read
// from the first data row.
// A scale factor column is named
// with the "sf_" prefix and the kind of the quantity.
// Missing columns are ignored.
//
// Here is an example file:
//
//	sf_em,sf_cap,sf_cash,sf_heat,sf_elec
//	1e-6,1e-3,1e-6,1,1
func ReadScale(r io.Reader) (Scale, error) {
	rec, err := readFirst(r)
	if err != nil {
		return nil, err
	}

	s := make(Scale, len(kinds))
	for _, k := range kinds {
		name := "sf_" + string(k)
		if _, ok := rec.vals[name]; !ok {
			continue
		}
		v, err := rec.floatField(name)
		if err != nil {
			return nil, err
		}
		s[k] = v
	}
	return s, nil
}

// ReadScaleFile reads the scale factors from a file.
func ReadScaleFile(name string) (Scale, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadScale(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// Factor returns the scale factor of a given kind.
func (s Scale) Factor(k Kind) (float64, error) {
	v, ok := s[k]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingField, "sf_"+string(k))
	}
	if v == 0 {
		return 0, fmt.Errorf("scale factor %q: invalid value %g", "sf_"+string(k), v)
	}
	return v, nil
}

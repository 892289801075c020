// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package info implements reading of the metadata files
// of a roadmap model run:
// the dimensions of the run
// and the scale factors of the reported quantities.
package info

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingField is returned when a required field
// is not defined in a metadata file.
var ErrMissingField = errors.New("missing field")

// Run contains the dimensions of a model run.
type Run struct {
	// Number of locations (plants)
	Locations int

	// Number of retrofit technologies
	Retrofits int

	// Number of new plant technologies
	News int

	// Number of periods
	Periods int

	// Number of subperiods in each period
	Subperiods int
}

// Slices returns the number of time slices of the run.
func (r Run) Slices() int {
	sp := r.Subperiods
	if sp < 1 {
		sp = 1
	}
	return r.Periods * sp
}

// ReadRun reads the run dimensions
// from a comma-delimited file.
//
// The file must have a header
// with at least the following fields:
//
//   - n_loc, the number of locations
//   - n_rtft, the number of retrofit technologies
//   - n_new, the number of new plant technologies
//   - n_p, the number of periods
//
// Optionally it can contain the field "n_p2",
// the number of subperiods.
// Only the first data row is used.
//
// Here is an example file:
//
//	n_loc,n_rtft,n_new,n_p,n_p2
//	10,3,3,4,2
func ReadRun(r io.Reader) (Run, error) {
	rec, err := readFirst(r)
	if err != nil {
		return Run{}, err
	}

	var run Run
	fields := []struct {
		name string
		v    *int
	}{
		{"n_loc", &run.Locations},
		{"n_rtft", &run.Retrofits},
		{"n_new", &run.News},
		{"n_p", &run.Periods},
	}
	for _, f := range fields {
		v, err := rec.intField(f.name)
		if err != nil {
			return Run{}, err
		}
		*f.v = v
	}

	run.Subperiods = 1
	if _, ok := rec.vals["n_p2"]; ok {
		v, err := rec.intField("n_p2")
		if err != nil {
			return Run{}, err
		}
		run.Subperiods = v
	}
	return run, nil
}

// ReadRunFile reads the run dimensions from a file.
func ReadRunFile(name string) (Run, error) {
	f, err := os.Open(name)
	if err != nil {
		return Run{}, err
	}
	defer f.Close()

	r, err := ReadRun(f)
	if err != nil {
		return Run{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return r, nil
}

// A record is the first row of a metadata file.
type record struct {
	vals map[string]string
}

func readFirst(r io.Reader) (record, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return record{}, fmt.Errorf("while reading header: %v", err)
	}
	row, err := tab.Read()
	if errors.Is(err, io.EOF) {
		return record{}, fmt.Errorf("expecting data row")
	}
	if err != nil {
		return record{}, fmt.Errorf("on row 2: %v", err)
	}

	vals := make(map[string]string, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		vals[h] = strings.TrimSpace(row[i])
	}
	return record{vals: vals}, nil
}

func (rec record) floatField(name string) (float64, error) {
	s, ok := rec.vals[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrMissingField, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q: %q: %v", name, s, err)
	}
	return v, nil
}

func (rec record) intField(name string) (int, error) {
	v, err := rec.floatField(name)
	if err != nil {
		return 0, err
	}
	if v < 0 || v != float64(int(v)) {
		return 0, fmt.Errorf("field %q: invalid count %g", name, v)
	}
	return int(v), nil
}

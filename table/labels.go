// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadLabels reads a list of names
// from the first column of a comma-delimited file.
// The first row is a header and it is ignored.
//
// Here is an example file:
//
//	name
//	Existing
//	Carbon capture
//	Electrification
func ReadLabels(r io.Reader) ([]string, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	if _, err := tab.Read(); err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}

	var labels []string
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) == 0 {
			continue
		}
		labels = append(labels, strings.TrimSpace(row[0]))
	}
	return labels, nil
}

// A Filter indicates the technology and location pairs
// that are available in a model run.
type Filter struct {
	m [][]bool
}

// ReadFilter reads a filter
// from a comma-delimited file.
//
// The file has a header row,
// and then one row per location
// with one column per technology.
// Cells are either a boolean ("true", "false")
// or a number (zero is false).
//
// Here is an example file for three locations
// and two technologies:
//
//	k_1,k_2
//	true,false
//	true,true
//	1,0
func ReadFilter(r io.Reader) (*Filter, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	if _, err := tab.Read(); err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}

	f := &Filter{}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		loc := make([]bool, len(row))
		for i, s := range row {
			v, err := parseBool(s)
			if err != nil {
				return nil, fmt.Errorf("on row %d: column %d: %v", ln, i+1, err)
			}
			loc[i] = v
		}
		f.m = append(f.m, loc)
	}
	return f, nil
}

// On returns true if the pair
// of location and technology
// (both 0-based)
// is enabled in the filter.
// A nil filter enables all pairs.
func (f *Filter) On(loc, tech int) bool {
	if f == nil {
		return true
	}
	if loc < 0 || loc >= len(f.m) {
		return false
	}
	if tech < 0 || tech >= len(f.m[loc]) {
		return false
	}
	return f.m[loc][tech]
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false, fmt.Errorf("invalid value %q", s)
	}
	return v != 0, nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

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

// A Site is the map position of a location.
type Site struct {
	X, Y float64
}

var siteFields = []string{
	"location",
	"x",
	"y",
}

// ReadSites reads the map positions of the locations
// from a comma-delimited file.
//
// The file must have a header
// with the following fields:
//
//   - location, the location index (1-based)
//   - x, the x coordinate (e.g. longitude)
//   - y, the y coordinate (e.g. latitude)
//
// Every location of the run must be defined.
//
// Here is an example file:
//
//	location,x,y
//	1,-87.62,41.88
//	2,-95.37,29.76
func ReadSites(r io.Reader, locations int) ([]Site, error) {
	tab := csv.NewReader(r)
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range siteFields {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingField, h)
		}
	}

	sites := make([]Site, locations)
	seen := make([]bool, locations)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "location"
		l, err := strconv.Atoi(strings.TrimSpace(row[fields[f]]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if l < 1 || l > locations {
			return nil, fmt.Errorf("on row %d: field %q: location %d out of range", ln, f, l)
		}
		if seen[l-1] {
			return nil, fmt.Errorf("on row %d: field %q: location %d repeated", ln, f, l)
		}

		var s Site
		for _, c := range []struct {
			name string
			v    *float64
		}{
			{"x", &s.X},
			{"y", &s.Y},
		} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[fields[c.name]]), 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, c.name, err)
			}
			*c.v = v
		}
		sites[l-1] = s
		seen[l-1] = true
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("location %d: undefined site", i+1)
		}
	}
	return sites, nil
}

// ReadSitesFile reads the map positions of the locations
// from a file.
func ReadSitesFile(name string, locations int) ([]Site, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSites(f, locations)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/table"
)

// Table reads a result table
// as defined in a project.
// If index is true,
// the first column of the table is the period index.
func (p *Project) Table(set Dataset, index bool) (*table.Table, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
	}

	t, err := table.ReadFile(name, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", set, err)
	}
	return t, nil
}

// LocTables reads a per location result table
// for each location of a run.
// The path of the dataset must include
// the location placeholder.
func (p *Project) LocTables(set Dataset, locations int, index bool) ([]*table.Table, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
	}
	if !strings.Contains(name, LocHolder) {
		return nil, fmt.Errorf("%s: path %q without location placeholder %q", set, name, LocHolder)
	}

	ts := make([]*table.Table, 0, locations)
	for l := 1; l <= locations; l++ {
		t, err := table.ReadFile(LocPath(name, l), index)
		if err != nil {
			return nil, fmt.Errorf("%s: location %d: %w", set, l, err)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

// LocPath returns the path of a location
// from a path with the location placeholder.
func LocPath(path string, loc int) string {
	return strings.ReplaceAll(path, LocHolder, strconv.Itoa(loc))
}

// Run reads the dimensions of the run
// as defined in a project.
func (p *Project) Run() (info.Run, error) {
	name := p.Path(Info)
	if name == "" {
		return info.Run{}, fmt.Errorf("run info not defined in project %q", p.name)
	}
	return info.ReadRunFile(name)
}

// Scale reads the scale factors
// as defined in a project.
func (p *Project) Scale() (info.Scale, error) {
	name := p.Path(Scale)
	if name == "" {
		return nil, fmt.Errorf("scale factors not defined in project %q", p.name)
	}
	return info.ReadScaleFile(name)
}

// Labels reads the names of a set of technologies
// as defined in a project.
func (p *Project) Labels(set Dataset) ([]string, error) {
	name := p.Path(set)
	if name == "" {
		return nil, fmt.Errorf("%s not defined in project %q", set, p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls, err := table.ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ls, nil
}

// Filter reads a technology filter
// as defined in a project.
// If the filter file does not exist,
// it returns a nil filter
// (i.e., all technologies are available).
func (p *Project) Filter(set Dataset) (*table.Filter, error) {
	name := p.Path(set)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	flt, err := table.ReadFilter(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return flt, nil
}

// Sites reads the map position of the locations
// as defined in a project.
// If no sites are defined,
// it returns nil.
func (p *Project) Sites(locations int) ([]info.Site, error) {
	name := p.Path(Sites)
	if name == "" {
		return nil, nil
	}
	return info.ReadSitesFile(name, locations)
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of rmplot project files.
//
// A project is the collection of files
// written by a roadmap model run
// into its result folder.
// By default,
// every dataset has a fixed file name in the result folder.
// A project file is a tab-delimited file (TSV)
// used to override the path of some datasets.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the dimensions of the run.
	Info Dataset = "info"

	// File for the scale factors of the reported quantities.
	Scale Dataset = "scale"

	// File for the active capacity
	// of the retrofit technologies at each location.
	RetroLocCap Dataset = "retro-loc-capacity"

	// File for the capacity
	// of the new plant technologies at each location.
	NewLocCap Dataset = "new-loc-capacity"

	// File for the total capacity
	// of each retrofit technology.
	RetroCap Dataset = "retro-capacity"

	// File for the total capacity
	// of each new plant technology.
	NewCap Dataset = "new-capacity"

	// File for the demand.
	Demand Dataset = "demand"

	// File for the emissions.
	Emissions Dataset = "emissions"

	// File for the online status of each location.
	Online Dataset = "online"

	// File for the expansion indicator of each location.
	Expansion Dataset = "expansion"

	// File for the status of the retrofit technologies.
	RetroStatus Dataset = "retro-status"

	// File for the status of the new plant technologies.
	NewStatus Dataset = "new-status"

	// File for the names of the retrofit technologies.
	RetroLabels Dataset = "retro-labels"

	// File for the names of the new plant technologies.
	NewLabels Dataset = "new-labels"

	// File for the available retrofit technologies
	// at each location.
	RetroFilter Dataset = "retro-filter"

	// File for the available new plant technologies
	// at each location.
	NewFilter Dataset = "new-filter"

	// File for the base (installed) capacity
	// of each retrofit technology.
	RetroBaseCap Dataset = "retro-base-capacity"

	// File for the base (installed) capacity
	// of each new plant technology.
	NewBaseCap Dataset = "new-base-capacity"

	// File for the installed expansion capacity
	// of each location.
	ExpansionCap Dataset = "expansion-capacity"

	// File for the post-capture process emissions
	// of each retrofit technology.
	RetroTechEm Dataset = "retro-tech-emissions"

	// File for the post-capture process emissions
	// of each new plant technology.
	NewTechEm Dataset = "new-tech-emissions"

	// File for the electricity consumption
	// of each retrofit technology.
	RetroElec Dataset = "retro-electricity"

	// File for the electricity consumption
	// of each new plant technology.
	NewElec Dataset = "new-electricity"

	// Files for the process CO2 of the retrofits
	// and the new plants at each location.
	RetroProcessCO2 Dataset = "retro-process-co2"
	NewProcessCO2   Dataset = "new-process-co2"

	// Files for the fuel CO2 of the retrofits
	// and the new plants at each location.
	RetroFuelCO2 Dataset = "retro-fuel-co2"
	NewFuelCO2   Dataset = "new-fuel-co2"

	// Files for the released (not captured) CO2
	// of the retrofits and the new plants at each location.
	RetroReleasedCO2 Dataset = "retro-released-co2"
	NewReleasedCO2   Dataset = "new-released-co2"

	// File for the total electricity use
	// of the retrofits and the new plants.
	Electricity Dataset = "electricity"

	// Files for the fuel use of a location.
	// The path must include the location placeholder
	// that is replaced by the 1-based location index.
	RetroFuel Dataset = "retro-fuel"
	NewFuel   Dataset = "new-fuel"

	// File for the map position of each location.
	Sites Dataset = "sites"
)

// LocHolder is the placeholder for the location index
// in the path of a per location dataset.
const LocHolder = "{loc}"

// defaults are the default file names
// of the datasets in a result folder.
var defaults = map[Dataset]string{
	Info:        "lrn_info.csv",
	Scale:       "s_info.csv",
	RetroLocCap: "drcp_d_act.csv",
	NewLocCap:   "dncp_d.csv",
	RetroCap:    "drcp.csv",
	NewCap:      "dncp.csv",
	Demand:      "demand.csv",
	Emissions:   "em.csv",
	Online:      "dyo.csv",
	Expansion:   "dye.csv",
	RetroStatus: "dyr.csv",
	NewStatus:   "dyn.csv",
	RetroLabels: "retro_labels.csv",
	NewLabels:   "new_labels.csv",
	RetroFilter: "retro_filters.csv",
	NewFilter:   "new_filters.csv",

	RetroBaseCap:     "drcpb.csv",
	NewBaseCap:       "dnc0.csv",
	ExpansionCap:     "dec_act.csv",
	RetroTechEm:      "drep1.csv",
	NewTechEm:        "dnep1.csv",
	RetroElec:        "dru.csv",
	NewElec:          "dnu.csv",
	RetroProcessCO2:  "drcpe.csv",
	NewProcessCO2:    "dncpe.csv",
	RetroFuelCO2:     "drfue.csv",
	NewFuelCO2:       "dnfue.csv",
	RetroReleasedCO2: "drep1_.csv",
	NewReleasedCO2:   "dnep1_.csv",
	Electricity:      "u.csv",
	RetroFuel:        "dr_f_" + LocHolder + ".csv",
	NewFuel:          "dn_f_" + LocHolder + ".csv",
}

// Valid returns true if a dataset keyword is valid.
func Valid(set Dataset) bool {
	if set == Sites {
		return true
	}
	_, ok := defaults[set]
	return ok
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		name:  "",
		paths: make(map[Dataset]string),
	}
}

// Default returns a project
// with the default file names
// of a result folder.
func Default(dir string) *Project {
	p := New()
	for s, f := range defaults {
		p.paths[s] = filepath.Join(dir, f)
	}
	return p
}

// Open returns the project of a result folder.
// If name is not empty,
// the paths defined in the project file
// replace the default paths.
// Relative paths in the project file
// are relative to the result folder.
func Open(dir, name string) (*Project, error) {
	p := Default(dir)
	if name == "" {
		return p, nil
	}

	o, err := Read(name)
	if err != nil {
		return nil, err
	}
	for _, s := range o.Sets() {
		if !Valid(s) {
			return nil, fmt.Errorf("on file %q: unknown dataset %q", name, s)
		}
		path := o.Path(s)
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		p.Add(s, path)
	}
	p.name = name
	return p, nil
}

var header = []string{
	"dataset",
	"path",
}

// Read reads a project file from a TSV file.
//
// The TSV must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# rmplot project files
//	dataset	path
//	retro-loc-capacity	drcp_d_act.xlsx
//	new-loc-capacity	capacity.xlsx:new
//	sites	../plants.csv
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	p := New()
	p.name = name
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "dataset"
		s := Dataset(strings.ToLower(row[fields[f]]))

		f = "path"
		path := row[fields[f]]
		p.paths[s] = path
	}

	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for s := range p.paths {
		sets = append(sets, s)
	}
	slices.Sort(sets)
	return sets
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into a file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# rmplot project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	sets := p.Sets()
	for _, s := range sets {
		row := []string{
			string(s),
			p.paths[s],
		}
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}

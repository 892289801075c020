// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pareto implements the comparison of roadmap model runs
// against a business-as-usual run:
// the Pareto front of cost and emissions,
// the incremental cost and emission of each run,
// and the abatement cost.
package pareto

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Fields of a run line
// (0-based, after splitting on white space).
const (
	objField = 3
	co2Field = 4
)

// MaxReduction is the largest emission reduction target
// of a sequence of runs.
const MaxReduction = 0.5

// A Run is the summary of a model run.
type Run struct {
	// Folder with the run results
	Folder string

	// Objective function value
	Obj float64

	// CO2 emissions
	CO2 float64
}

// ReadRuns reads a list of runs.
//
// Each line of the list is a run,
// with fields separated by white space.
// The first field is the folder of the run,
// the fourth field is the objective value,
// and the fifth field is the CO2 emissions.
// Additional fields are ignored.
// Empty lines and lines starting with '#' are ignored.
func ReadRuns(r io.Reader) ([]Run, error) {
	var runs []Run
	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) <= co2Field {
			return nil, fmt.Errorf("on line %d: got %d fields, want at least %d", ln, len(f), co2Field+1)
		}
		obj, err := strconv.ParseFloat(f[objField], 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: field %d: %v", ln, objField+1, err)
		}
		co2, err := strconv.ParseFloat(f[co2Field], 64)
		if err != nil {
			return nil, fmt.Errorf("on line %d: field %d: %v", ln, co2Field+1, err)
		}
		runs = append(runs, Run{
			Folder: f[0],
			Obj:    obj,
			CO2:    co2,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ReadRunsFile reads a list of runs from a file.
func ReadRunsFile(name string) ([]Run, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	runs, err := ReadRuns(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return runs, nil
}

// A Point is a run compared against the business-as-usual run.
type Point struct {
	Run

	// Emission reduction target of the run
	Reduction float64

	// Cost increment with respect to the business-as-usual run
	Cost float64

	// Emissions avoided with respect to the business-as-usual run
	Emission float64

	// Abatement cost
	// (cost increment per unit of avoided emissions)
	Abatement float64
}

func newPoint(r, bau Run) Point {
	p := Point{
		Run:      r,
		Cost:     r.Obj - bau.Obj,
		Emission: bau.CO2 - r.CO2,
	}
	p.Abatement = p.Cost / p.Emission
	return p
}

// Front returns the Pareto front of a sequence of runs
// with increasing emission reduction targets,
// from no reduction to MaxReduction.
//
// If a run has the same emissions
// as the business-as-usual run,
// the abatement is an infinite or NaN value.
func Front(runs []Run, bau Run) []Point {
	if len(runs) == 0 {
		return nil
	}

	red := make([]float64, len(runs))
	if len(runs) > 1 {
		floats.Span(red, 0, MaxReduction)
	}

	pts := make([]Point, len(runs))
	for i, r := range runs {
		pts[i] = newPoint(r, bau)
		pts[i].Reduction = red[i]
	}
	return pts
}

// Scenarios returns the comparison of scenario pairs.
// In the run list,
// each policy run is followed by its business-as-usual run.
// If the number of runs is odd,
// the last run is ignored.
func Scenarios(runs []Run) []Point {
	n := len(runs) / 2
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, newPoint(runs[2*i], runs[2*i+1]))
	}
	return pts
}

// WriteFront writes the Pareto front
// as a comma-delimited file.
// The first row is the business-as-usual run.
func WriteFront(w io.Writer, pts []Point, bau Run) error {
	tab := csv.NewWriter(w)
	tab.UseCRLF = true
	if err := tab.Write([]string{"reduction", "obj", "co2", "cost", "emission", "abatement"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	row := []string{"bau", ftoa(bau.Obj), ftoa(bau.CO2), "0", "0", ""}
	if err := tab.Write(row); err != nil {
		return fmt.Errorf("unable to write data: %v", err)
	}
	for _, p := range pts {
		row := []string{
			ftoa(p.Reduction),
			ftoa(p.Obj),
			ftoa(p.CO2),
			ftoa(p.Cost),
			ftoa(p.Emission),
			ftoa(p.Abatement),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("unable to write data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("unable to write data: %v", err)
	}
	return nil
}

// WriteScenarios writes the comparison of scenario pairs
// as a comma-delimited file.
func WriteScenarios(w io.Writer, pts []Point) error {
	tab := csv.NewWriter(w)
	tab.UseCRLF = true
	if err := tab.Write([]string{"scenario", "run", "cost", "emission", "abatement"}); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, p := range pts {
		row := []string{
			strconv.Itoa(i + 1),
			p.Folder,
			ftoa(p.Cost),
			ftoa(p.Emission),
			ftoa(p.Abatement),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("unable to write data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("unable to write data: %v", err)
	}
	return nil
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package aggregate implements sums over the columns
// of result tables,
// used to draw the totals of a model run
// by period.
package aggregate

import (
	"fmt"

	"github.com/stre3am/rmplot/label"
	"github.com/stre3am/rmplot/table"
	"gonum.org/v1/gonum/floats"
)

// Fuels are the names of the fuels
// in the order of the columns
// of a fuel use table.
var Fuels = []string{
	"Coal",
	"DFO2",
	"Natural Gas",
}

// FuelUse returns the use of each fuel by period,
// summed over the fuel use tables of all locations.
// In each table,
// the fuel columns are the first data columns,
// in the order of Fuels.
// Any other column is ignored.
func FuelUse(tables []*table.Table) ([][]float64, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("fuel use: no tables")
	}

	rows := tables[0].Rows()
	use := make([][]float64, len(Fuels))
	for f := range use {
		use[f] = make([]float64, rows)
	}
	for l, t := range tables {
		if t.Rows() != rows {
			return nil, fmt.Errorf("fuel use: location %d: got %d periods, want %d", l+1, t.Rows(), rows)
		}
		if n := len(t.Names()); n < len(Fuels) {
			return nil, fmt.Errorf("fuel use: location %d: got %d fuel columns, want %d", l+1, n, len(Fuels))
		}
		for f := range Fuels {
			floats.Add(use[f], t.Values(f))
		}
	}
	return use, nil
}

// Total returns the sum of all the data columns
// of a table by period.
func Total(t *table.Table) []float64 {
	sum := make([]float64, t.Rows())
	for c := range t.Names() {
		floats.Add(sum, t.Values(c))
	}
	return sum
}

// Captured returns the captured CO2 by period.
// It is the process CO2 plus the fuel CO2,
// minus the released CO2,
// summed over all the columns.
// Columns are matched by name,
// and a column missing in a table is taken as zero.
func Captured(process, fuel, released *table.Table) ([]float64, error) {
	rows := process.Rows()
	if fuel.Rows() != rows {
		return nil, fmt.Errorf("captured CO2: fuel CO2: got %d periods, want %d", fuel.Rows(), rows)
	}
	if released.Rows() != rows {
		return nil, fmt.Errorf("captured CO2: released CO2: got %d periods, want %d", released.Rows(), rows)
	}

	c := Total(process)
	floats.Add(c, Total(fuel))
	floats.Sub(c, Total(released))
	return c, nil
}

// ByTech returns the sum by period
// of the columns of each technology
// in a table with "k_<tech>_l_<loc>" column labels.
func ByTech(t *table.Table, techs int) ([][]float64, error) {
	sum := make([][]float64, techs)
	for k := range sum {
		sum[k] = make([]float64, t.Rows())
	}
	for c, name := range t.Names() {
		key, err := label.Parse(name)
		if err != nil {
			return nil, err
		}
		if key.Tech > techs {
			return nil, fmt.Errorf("column %q: technology %d out of range [1, %d]", name, key.Tech, techs)
		}
		floats.Add(sum[key.Tech-1], t.Values(c))
	}
	return sum, nil
}

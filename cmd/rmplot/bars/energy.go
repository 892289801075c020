// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bars

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stre3am/rmplot/aggregate"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
	"github.com/stre3am/rmplot/table"
)

func electricityBars(r *results) error {
	retro, err := r.table(project.RetroElec, true, info.Electricity)
	if err != nil {
		return err
	}
	fresh, err := r.table(project.NewElec, true, info.Electricity)
	if err != nil {
		return err
	}
	if err := samePeriods(retro, project.NewElec, fresh); err != nil {
		return err
	}
	periods, err := periodLabels(retro)
	if err != nil {
		return fmt.Errorf("%s: %v", project.RetroElec, err)
	}

	var series []chart.Series
	series = r.techSeries(series, project.RetroLabels, retro, 0, r.Style.RetroColor)
	series = r.techSeries(series, project.NewLabels, fresh, 0, r.Style.NewColor)

	p, err := chart.Stacked(series, nil, "Electricity consumption", "Electricity", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "u_by_rf")
}

// energyBars draws the aggregate energy use.
// The electricity table has no index column,
// the first column is the electricity
// of the existing plants and its retrofits,
// and the second column is the electricity
// of the new plants.
func energyBars(r *results) error {
	ri, err := r.Project.Run()
	if err != nil {
		return err
	}
	elec, err := r.table(project.Electricity, false, info.Electricity)
	if err != nil {
		return err
	}
	if n := len(elec.Names()); n < 2 {
		return fmt.Errorf("%s: got %d columns, want 2", project.Electricity, n)
	}

	// the fuel tables have the period index
	retro, periods, err := r.fuelUse(project.RetroFuel, ri.Locations)
	if err != nil {
		return err
	}
	fresh, _, err := r.fuelUse(project.NewFuel, ri.Locations)
	if err != nil {
		return err
	}

	g, err := chart.Gradient(r.Style.Gradient)
	if err != nil {
		return err
	}
	colors := chart.Palette{G: g, N: 2 * (len(aggregate.Fuels) + 1)}.Colors()
	series := []chart.Series{
		{Name: "Ex.+Rf. Electricity", Values: elec.Values(0), Color: colors[0]},
		{Name: "New Electricity", Values: elec.Values(1), Color: colors[1]},
	}
	for i, fu := range aggregate.Fuels {
		series = append(series, chart.Series{
			Name:   "Ex.+Rf. " + fu,
			Values: retro[i],
			Color:  colors[2+2*i],
		})
		series = append(series, chart.Series{
			Name:   "New " + fu,
			Values: fresh[i],
			Color:  colors[3+2*i],
		})
	}

	p, err := chart.Stacked(series, nil, "Aggregate energy use", "Energy", periods)
	if err != nil {
		return err
	}
	r.Log.WithFields(logrus.Fields{
		"locations": ri.Locations,
		"fuels":     len(aggregate.Fuels),
	}).Info("energy use")
	return r.Save(p, "energy_use")
}

// fuelUse returns the use of each fuel,
// summed over all locations,
// and the period labels.
func (r *results) fuelUse(set project.Dataset, locations int) ([][]float64, []string, error) {
	ts, err := r.Project.LocTables(set, locations, true)
	if err != nil {
		return nil, nil, err
	}
	if len(ts) == 0 {
		return nil, nil, fmt.Errorf("%s: run without locations", set)
	}
	scaled := make([]*table.Table, len(ts))
	for i, t := range ts {
		scaled[i], err = r.rescale(t, set, info.Heat)
		if err != nil {
			return nil, nil, err
		}
	}
	use, err := aggregate.FuelUse(scaled)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", set, err)
	}
	periods, err := periodLabels(ts[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", set, err)
	}
	return use, periods, nil
}

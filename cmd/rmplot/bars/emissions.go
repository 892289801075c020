// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bars

import (
	"fmt"

	"github.com/stre3am/rmplot/aggregate"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
)

// Colors of the captured and released CO2.
const (
	capturedColor    = "#cd5c5c"
	newCapturedColor = "#e6a3a3"
	releasedColor    = "#5ccdcd"
	newReleasedColor = "#a3e6e6"
)

func emissionBars(r *results) error {
	em, err := r.table(project.Emissions, true, info.Emission)
	if err != nil {
		return err
	}
	periods, err := periodLabels(em)
	if err != nil {
		return fmt.Errorf("%s: %v", project.Emissions, err)
	}

	g, err := chart.Gradient(r.Style.Gradient)
	if err != nil {
		return err
	}
	names := em.Names()
	colors := chart.Palette{G: g, N: len(names)}.Colors()
	series := make([]chart.Series, len(names))
	for i, n := range names {
		series[i] = chart.Series{
			Name:   n,
			Values: em.Values(i),
			Color:  colors[i],
		}
	}

	p, err := chart.Stacked(series, nil, "Emissions", "CO2 emissions", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "inc_ret_new_em")
}

func techEmissionBars(r *results) error {
	retro, err := r.table(project.RetroTechEm, true, info.Emission)
	if err != nil {
		return err
	}
	fresh, err := r.table(project.NewTechEm, true, info.Emission)
	if err != nil {
		return err
	}
	if err := samePeriods(retro, project.NewTechEm, fresh); err != nil {
		return err
	}
	periods, err := periodLabels(retro)
	if err != nil {
		return fmt.Errorf("%s: %v", project.RetroTechEm, err)
	}

	var series []chart.Series
	series = r.techSeries(series, project.RetroLabels, retro, 0, r.Style.RetroColor)
	series = r.techSeries(series, project.NewLabels, fresh, 0, r.Style.NewColor)

	p, err := chart.Stacked(series, nil, "Emission", "CO2 emissions", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "ep1ge")
}

// co2 is the captured and released CO2
// of a kind of plant.
type co2 struct {
	periods  []string
	captured []float64
	released []float64
}

func (r *results) co2(process, fuel, released project.Dataset) (co2, error) {
	pt, err := r.table(process, true, info.Emission)
	if err != nil {
		return co2{}, err
	}
	ft, err := r.table(fuel, true, info.Emission)
	if err != nil {
		return co2{}, err
	}
	rt, err := r.table(released, true, info.Emission)
	if err != nil {
		return co2{}, err
	}
	c, err := aggregate.Captured(pt, ft, rt)
	if err != nil {
		return co2{}, fmt.Errorf("%s: %v", process, err)
	}
	periods, err := periodLabels(pt)
	if err != nil {
		return co2{}, fmt.Errorf("%s: %v", process, err)
	}
	return co2{
		periods:  periods,
		captured: c,
		released: aggregate.Total(rt),
	}, nil
}

// plantsCO2 returns the CO2 of the retrofits and the new plants.
func (r *results) plantsCO2() (retro, fresh co2, err error) {
	retro, err = r.co2(project.RetroProcessCO2, project.RetroFuelCO2, project.RetroReleasedCO2)
	if err != nil {
		return co2{}, co2{}, err
	}
	fresh, err = r.co2(project.NewProcessCO2, project.NewFuelCO2, project.NewReleasedCO2)
	if err != nil {
		return co2{}, co2{}, err
	}
	if len(fresh.periods) != len(retro.periods) {
		return co2{}, co2{}, fmt.Errorf("%s: got %d periods, want %d", project.NewProcessCO2, len(fresh.periods), len(retro.periods))
	}
	return retro, fresh, nil
}

func capturedBars(r *results) error {
	retro, fresh, err := r.plantsCO2()
	if err != nil {
		return err
	}
	periods := retro.periods

	series := []chart.Series{
		{Name: "Existing process captured CO2", Values: retro.captured, Color: r.Style.Color(capturedColor)},
		{Name: "New process captured CO2", Values: fresh.captured, Color: r.Style.Color(newCapturedColor)},
	}
	p, err := chart.Stacked(series, nil, "Captured CO2", "CO2 emissions", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "co2_ccap")
}

func releasedBars(r *results) error {
	retro, fresh, err := r.plantsCO2()
	if err != nil {
		return err
	}
	periods := retro.periods

	above := []chart.Series{
		{Name: "Existing emitted CO2", Values: retro.released, Color: r.Style.Color(releasedColor)},
		{Name: "New emitted CO2", Values: fresh.released, Color: r.Style.Color(newReleasedColor)},
	}
	below := []chart.Series{
		{Name: "Existing captured CO2", Values: retro.captured, Color: r.Style.Color(capturedColor)},
		{Name: "New captured CO2", Values: fresh.captured, Color: r.Style.Color(newCapturedColor)},
	}
	p, err := chart.Diverging(above, below, "Emissions", "CO2 emissions", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "co2_emit_cap")
}

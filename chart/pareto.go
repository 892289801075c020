// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/stre3am/rmplot/pareto"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	frontColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	bauColor   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	abColor    = color.RGBA{R: 188, G: 189, B: 34, A: 255}
)

// Front returns the Pareto front chart,
// with the emissions in the x axis
// and the objective value in the y axis.
// Each point is labeled with its reduction target.
func Front(pts []pareto.Point, bau pareto.Run) (*plot.Plot, error) {
	p := New("Pareto front", "CO2", "Objective")
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.CO2, Y: pt.Obj}
	}
	if err := addLabeled(p, xys, pts, frontColor, draw.BoxGlyph{}); err != nil {
		return nil, fmt.Errorf("pareto front: %v", err)
	}

	b, err := plotter.NewScatter(plotter.XYs{{X: bau.CO2, Y: bau.Obj}})
	if err != nil {
		return nil, fmt.Errorf("pareto front: %v", err)
	}
	b.Color = bauColor
	b.Shape = draw.PyramidGlyph{}
	b.Radius = vg.Points(4)
	bl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: bau.CO2, Y: bau.Obj}},
		Labels: []string{"BAU"},
	})
	if err != nil {
		return nil, fmt.Errorf("pareto front: %v", err)
	}
	p.Add(b, bl)
	return p, nil
}

// Incremental returns the chart of the incremental cost
// against the avoided emissions,
// relative to the business-as-usual run.
func Incremental(pts []pareto.Point) (*plot.Plot, error) {
	p := New("Incremental (relative to BAU)", "Incremental emission", "Incremental cost")
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.Emission, Y: pt.Cost}
	}
	if err := addLabeled(p, xys, pts, bauColor, draw.RingGlyph{}); err != nil {
		return nil, fmt.Errorf("incremental chart: %v", err)
	}
	return p, nil
}

func addLabeled(p *plot.Plot, xys plotter.XYs, pts []pareto.Point, clr color.Color, shape draw.GlyphDrawer) error {
	l, s, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	l.Color = clr
	l.Width = vg.Points(2)
	s.Color = clr
	s.Shape = shape

	labels := make([]string, len(pts))
	for i, pt := range pts {
		labels[i] = fmt.Sprintf("%.0f%%", pt.Reduction*100)
	}
	lb, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xys,
		Labels: labels,
	})
	if err != nil {
		return err
	}
	p.Add(l, s, lb)
	return nil
}

// Scenarios returns the charts of a list of scenarios:
// the incremental cost and emission as bars,
// and the abatement cost of each scenario.
func Scenarios(pts []pareto.Point) (bars, abatement *plot.Plot, err error) {
	if len(pts) == 0 {
		return nil, nil, fmt.Errorf("scenario chart: no scenarios")
	}

	names := make([]string, len(pts))
	cost := make(plotter.Values, len(pts))
	em := make(plotter.Values, len(pts))
	var ab plotter.XYs
	for i, pt := range pts {
		names[i] = fmt.Sprintf("%d", i+1)
		cost[i] = pt.Cost
		em[i] = pt.Emission
		if math.IsInf(pt.Abatement, 0) || math.IsNaN(pt.Abatement) {
			continue
		}
		ab = append(ab, plotter.XY{X: float64(i), Y: pt.Abatement})
	}

	bars = New("Scenarios incremental cost and emissions", "Scenario", "")
	bars.Add(plotter.NewGrid())
	w := vg.Points(barWidth)
	cb, err := plotter.NewBarChart(cost, w)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario chart: %v", err)
	}
	cb.Color = frontColor
	cb.Offset = -w / 2
	eb, err := plotter.NewBarChart(em, w)
	if err != nil {
		return nil, nil, fmt.Errorf("scenario chart: %v", err)
	}
	eb.Color = bauColor
	eb.Offset = w / 2
	bars.Add(cb, eb)
	bars.Legend.Add("Incremental cost", cb)
	bars.Legend.Add("Incremental emission", eb)
	bars.Legend.Top = true
	bars.NominalX(names...)

	abatement = New("Abatement", "Scenario", "Cost per avoided emission")
	abatement.Add(plotter.NewGrid())
	if len(ab) > 0 {
		s, err := plotter.NewScatter(ab)
		if err != nil {
			return nil, nil, fmt.Errorf("scenario chart: %v", err)
		}
		s.Color = abColor
		s.Shape = draw.PyramidGlyph{}
		s.Radius = vg.Points(4)
		abatement.Add(s)
	}
	abatement.NominalX(names...)
	return bars, abatement, nil
}

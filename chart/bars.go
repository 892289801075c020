// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Series is a named sequence of values,
// one per period.
type Series struct {
	Name   string
	Values []float64
	Color  color.Color
}

// barWidth is the width of a bar.
const barWidth = 12

// Stacked returns a bar chart
// with the series stacked on each period.
// If line is not nil,
// it is drawn as a dashed line over the bars.
func Stacked(series []Series, line *Series, title, yLabel string, periods []string) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("stacked bars %q: no data series", title)
	}

	p := New(title, "Period", yLabel)
	var prev *plotter.BarChart
	for _, s := range series {
		if len(s.Values) != len(periods) {
			return nil, fmt.Errorf("stacked bars %q: series %q: got %d values, want %d", title, s.Name, len(s.Values), len(periods))
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(barWidth))
		if err != nil {
			return nil, fmt.Errorf("stacked bars %q: series %q: %v", title, s.Name, err)
		}
		bars.Color = s.Color
		bars.LineStyle.Width = vg.Points(0.5)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
		prev = bars
	}

	if line != nil {
		if len(line.Values) != len(periods) {
			return nil, fmt.Errorf("stacked bars %q: line %q: got %d values, want %d", title, line.Name, len(line.Values), len(periods))
		}
		xys := make(plotter.XYs, len(line.Values))
		for i, v := range line.Values {
			xys[i] = plotter.XY{X: float64(i), Y: v}
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("stacked bars %q: line %q: %v", title, line.Name, err)
		}
		l.Color = line.Color
		l.Width = vg.Points(2)
		l.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		pts.Color = line.Color
		pts.Shape = draw.PyramidGlyph{}
		p.Add(l, pts)
		p.Legend.Add(line.Name, l, pts)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	PeriodTicks(&p.X, periods)
	return p, nil
}

// Diverging returns a bar chart
// with the above series stacked over zero
// and the below series stacked under zero.
// The values of the below series
// are given as positive values.
func Diverging(above, below []Series, title, yLabel string, periods []string) (*plot.Plot, error) {
	if len(above) == 0 && len(below) == 0 {
		return nil, fmt.Errorf("diverging bars %q: no data series", title)
	}

	p := New(title, "Period", yLabel)
	if err := addStack(p, above, 1, title, periods); err != nil {
		return nil, err
	}
	if err := addStack(p, below, -1, title, periods); err != nil {
		return nil, err
	}

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black
	zero.Width = vg.Points(0.5)
	p.Add(zero)

	p.Legend.Top = true
	p.Legend.Left = true
	PeriodTicks(&p.X, periods)
	return p, nil
}

func addStack(p *plot.Plot, series []Series, sign float64, title string, periods []string) error {
	var prev *plotter.BarChart
	for _, s := range series {
		if len(s.Values) != len(periods) {
			return fmt.Errorf("diverging bars %q: series %q: got %d values, want %d", title, s.Name, len(s.Values), len(periods))
		}
		v := make(plotter.Values, len(s.Values))
		for i, x := range s.Values {
			v[i] = sign * x
		}
		bars, err := plotter.NewBarChart(v, vg.Points(barWidth))
		if err != nil {
			return fmt.Errorf("diverging bars %q: series %q: %v", title, s.Name, err)
		}
		bars.Color = s.Color
		bars.LineStyle.Width = vg.Points(0.5)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
		prev = bars
	}
	return nil
}

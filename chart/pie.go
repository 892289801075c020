// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/stre3am/rmplot/capmat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// NoCapacity is the color of the dot
// used for locations without capacity.
var NoCapacity = color.RGBA{R: 220, A: 255}

// Pies draws a pie for each location
// with the capacity of each technology
// at a given period.
type Pies struct {
	m      *capmat.Matrix
	period int

	// Position of each location
	Sites plotter.XYs

	// Colors of the technologies
	Colors []color.Color

	// Radius of the largest pie
	// in data units
	Scale float64

	// Locations with a total capacity
	// smaller or equal to epsilon
	// are drawn as a dot.
	Epsilon float64

	max float64
}

// DataRange implements the plot.DataRanger interface.
func (pi *Pies) DataRange() (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = math.Inf(1), math.Inf(-1)
	yMin, yMax = math.Inf(1), math.Inf(-1)
	for _, s := range pi.Sites {
		xMin = math.Min(xMin, s.X-pi.Scale)
		xMax = math.Max(xMax, s.X+pi.Scale)
		yMin = math.Min(yMin, s.Y-pi.Scale)
		yMax = math.Max(yMax, s.Y+pi.Scale)
	}
	return xMin, xMax, yMin, yMax
}

// Plot implements the plot.Plotter interface.
func (pi *Pies) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for l, s := range pi.Sites {
		center := vg.Point{X: trX(s.X), Y: trY(s.Y)}
		tot := pi.m.Total(l, pi.period)
		if tot <= pi.Epsilon || pi.max <= 0 {
			c.FillPolygon(NoCapacity, dot(center, vg.Points(3)))
			continue
		}

		// pie area is proportional to capacity
		rad := pi.Scale * math.Sqrt(tot/pi.max)
		r := trX(s.X+rad) - center.X

		start := math.Pi / 2
		for k, v := range pi.m.Techs(l, pi.period) {
			if v <= 0 {
				continue
			}
			sweep := 2 * math.Pi * v / tot
			var p vg.Path
			p.Move(center)
			p.Arc(center, r, start, sweep)
			p.Close()
			c.SetColor(pi.Colors[k%len(pi.Colors)])
			c.Fill(p)
			c.SetLineStyle(draw.LineStyle{Color: color.Black, Width: vg.Points(0.25)})
			c.Stroke(p)
			start += sweep
		}
	}
}

func dot(center vg.Point, r vg.Length) []vg.Point {
	const n = 16
	pts := make([]vg.Point, n+1)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = vg.Point{
			X: center.X + r*vg.Length(math.Cos(a)),
			Y: center.Y + r*vg.Length(math.Sin(a)),
		}
	}
	return pts
}

// GridSites returns the positions of locations
// in a square grid
// with a distance of two times scale
// between neighbors.
func GridSites(locs int, scale float64) plotter.XYs {
	cols := int(math.Ceil(math.Sqrt(float64(locs))))
	xys := make(plotter.XYs, locs)
	for i := range xys {
		xys[i] = plotter.XY{
			X: float64(i%cols) * 2 * scale,
			Y: -float64(i/cols) * 2 * scale,
		}
	}
	return xys
}

// PieMaps returns a map of pies for each period
// of a capacity matrix.
// If sites is nil,
// locations are placed in a square grid.
func PieMaps(m *capmat.Matrix, colors []color.Color, sites plotter.XYs, scale, epsilon float64) ([]*plot.Plot, error) {
	locs, _, periods := m.Dims()
	if sites == nil {
		sites = GridSites(locs, scale)
	}
	if len(sites) != locs {
		return nil, fmt.Errorf("got %d sites, want %d", len(sites), locs)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("empty technology colors")
	}

	labels := m.Periods()
	top := m.Max()
	plots := make([]*plot.Plot, periods)
	for t := range plots {
		p := New(labels[t], "", "")
		p.HideAxes()
		p.Add(&Pies{
			m:       m,
			period:  t,
			Sites:   sites,
			Colors:  colors,
			Scale:   scale,
			Epsilon: epsilon,
			max:     top,
		})
		plots[t] = p
	}
	return plots, nil
}

// Arrange places a list of plots into a grid
// with a given number of rows.
// Empty cells are nil.
func Arrange(plots []*plot.Plot, rows int) [][]*plot.Plot {
	if rows < 1 {
		rows = 1
	}
	if rows > len(plots) {
		rows = len(plots)
	}
	if rows == 0 {
		return nil
	}
	cols := (len(plots) + rows - 1) / rows

	grid := make([][]*plot.Plot, rows)
	for i := range grid {
		grid[i] = make([]*plot.Plot, cols)
	}
	for i, p := range plots {
		grid[i/cols][i%cols] = p
	}
	return grid
}

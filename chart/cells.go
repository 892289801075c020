// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"github.com/stre3am/rmplot/switches"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Cells is a grid of colored cells,
// with one row per location
// and one column per period.
type Cells struct {
	Rows, Cols int

	// Color returns the color of a cell.
	// A nil color is not drawn.
	Color func(r, c int) color.Color

	// Style of the cell borders
	LineStyle draw.LineStyle
}

// DataRange implements the plot.DataRanger interface.
func (cl *Cells) DataRange() (xMin, xMax, yMin, yMax float64) {
	return -0.5, float64(cl.Cols) - 0.5, -0.5, float64(cl.Rows) - 0.5
}

// Plot implements the plot.Plotter interface.
func (cl *Cells) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for r := 0; r < cl.Rows; r++ {
		for col := 0; col < cl.Cols; col++ {
			pts := []vg.Point{
				{X: trX(float64(col) - 0.5), Y: trY(float64(r) - 0.5)},
				{X: trX(float64(col) + 0.5), Y: trY(float64(r) - 0.5)},
				{X: trX(float64(col) + 0.5), Y: trY(float64(r) + 0.5)},
				{X: trX(float64(col) - 0.5), Y: trY(float64(r) + 0.5)},
				{X: trX(float64(col) - 0.5), Y: trY(float64(r) - 0.5)},
			}
			if clr := cl.Color(r, col); clr != nil {
				c.FillPolygon(clr, pts)
			}
			if cl.LineStyle.Width > 0 {
				c.StrokeLines(cl.LineStyle, pts)
			}
		}
	}
}

func newCells(rows, cols int, clr func(r, c int) color.Color) *Cells {
	return &Cells{
		Rows:  rows,
		Cols:  cols,
		Color: clr,
		LineStyle: draw.LineStyle{
			Color: color.Gray{200},
			Width: vg.Points(0.25),
		},
	}
}

// Binary returns a map of locations by periods
// in which cells with a value larger than zero
// are drawn with the given color.
func Binary(m mat.Matrix, on color.Color, title string, periods []string) *plot.Plot {
	p := New(title, "Period", "Location")

	r, c := m.Dims()
	p.Add(newCells(r, c, func(i, j int) color.Color {
		if m.At(i, j) > 0 {
			return on
		}
		return nil
	}))

	PeriodTicks(&p.X, periods)
	LocationTicks(&p.Y, r)
	return p
}

// Categories returns a map of locations by periods
// in which each cell is drawn with the color
// of its assigned technology.
// Cells without a technology are drawn with the empty color.
func Categories(cats *switches.Categories, colors []color.Color, empty color.Color, title string, periods []string) *plot.Plot {
	p := New(title, "Period", "Location")

	r, c := cats.Dims()
	p.Add(newCells(r, c, func(i, j int) color.Color {
		k := cats.At(i, j)
		if k == switches.None || len(colors) == 0 {
			return empty
		}
		return colors[k%len(colors)]
	}))

	PeriodTicks(&p.X, periods)
	LocationTicks(&p.Y, r)
	return p
}

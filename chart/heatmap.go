// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// levels is the number of colors of a heat map palette.
const levels = 64

// matrixGrid is a matrix of locations by periods
// as a plotter.GridXYZ,
// with periods in the x axis.
type matrixGrid struct {
	m mat.Matrix
}

func (g matrixGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g matrixGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g matrixGrid) X(c int) float64    { return float64(c) }
func (g matrixGrid) Y(r int) float64    { return float64(r) }

// Heatmap returns a heat map of a matrix of locations by periods.
func Heatmap(m mat.Matrix, g Gradienter, title string, periods []string) *plot.Plot {
	p := New(title, "Period", "Location")

	h := plotter.NewHeatMap(matrixGrid{m: m}, Palette{G: g, N: levels})
	if h.Max == h.Min {
		h.Max = h.Min + 1
	}
	h.NaN = color.Transparent
	p.Add(h)

	r, _ := m.Dims()
	PeriodTicks(&p.X, periods)
	LocationTicks(&p.Y, r)
	return p
}

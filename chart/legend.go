// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A swatch is a legend thumbnail
// filled with a color.
type swatch struct {
	color color.Color
}

// Thumbnail implements the plot.Thumbnailer interface.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonXY(pts))
	c.StrokeLines(draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}, append(pts, pts[0]))
}

// An Entry is a legend entry.
type Entry struct {
	Name  string
	Color color.Color
}

// Legend returns a chart
// that only contains a legend.
func Legend(title string, entries []Entry) *plot.Plot {
	p := New(title, "", "")
	p.HideAxes()
	p.Legend.Left = true
	p.Legend.Top = true
	for _, e := range entries {
		p.Legend.Add(e.Name, swatch{color: e.Color})
	}
	return p
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package chart implements the charts
// used to display the results of a roadmap model run.
//
// Charts are gonum plots,
// in which rows of a result matrix are locations
// and columns are periods.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the size of a chart.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// CM returns a size in centimeters.
func CM(w, h float64) Size {
	return Size{
		Width:  vg.Length(w) * vg.Centimeter,
		Height: vg.Length(h) * vg.Centimeter,
	}
}

// New returns a new plot with a title and axis labels.
func New(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	return p
}

// PeriodTicks sets the ticks of an axis
// to the labels of the periods
// (the first period at 0).
func PeriodTicks(a *plot.Axis, periods []string) {
	ticks := make([]plot.Tick, len(periods))
	for i, p := range periods {
		ticks[i] = plot.Tick{Value: float64(i), Label: p}
	}
	a.Tick.Marker = plot.ConstantTicks(ticks)
}

// LocationTicks sets the ticks of an axis
// to the locations (1-based)
// with the first location at 0.
func LocationTicks(a *plot.Axis, locs int) {
	ticks := make([]plot.Tick, locs)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i+1)}
	}
	a.Tick.Marker = plot.ConstantTicks(ticks)
}

// Save saves a plot in a file.
// The image format is taken from the file extension.
func Save(p *plot.Plot, sz Size, name string) error {
	if err := p.Save(sz.Width, sz.Height, name); err != nil {
		return fmt.Errorf("unable to save %q: %v", name, err)
	}
	return nil
}

// SaveGrid saves a grid of plots in a single file.
// The size is the size of each individual plot.
// Nil plots are left empty.
func SaveGrid(plots [][]*plot.Plot, sz Size, name string) error {
	rows := len(plots)
	if rows == 0 {
		return fmt.Errorf("unable to save %q: empty grid", name)
	}
	cols := len(plots[0])
	grid := make([][]*plot.Plot, rows)
	for i, r := range plots {
		if len(r) != cols {
			return fmt.Errorf("unable to save %q: ragged grid", name)
		}
		grid[i] = make([]*plot.Plot, cols)
		for j, p := range r {
			if p == nil {
				p = plot.New()
				p.HideAxes()
			}
			grid[i][j] = p
		}
	}

	format := strings.TrimPrefix(filepath.Ext(name), ".")
	w := sz.Width * vg.Length(cols)
	h := sz.Height * vg.Length(rows)
	img, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return fmt.Errorf("unable to save %q: %v", name, err)
	}

	t := draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(grid, t, draw.New(img))
	for i, r := range grid {
		for j, p := range r {
			p.Draw(canvases[i][j])
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := img.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("unable to save %q: %v", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to save %q: %v", name, err)
	}
	return nil
}

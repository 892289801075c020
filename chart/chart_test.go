// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stre3am/rmplot/capmat"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/pareto"
	"github.com/stre3am/rmplot/switches"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestGradient(t *testing.T) {
	for _, name := range []string{"", "iridescent", "Incandescent", "rainbow", "gray"} {
		g, err := chart.Gradient(name)
		if err != nil {
			t.Errorf("gradient %q: unexpected error: %v", name, err)
			continue
		}
		if g.Gradient(-1) == nil || g.Gradient(2) == nil {
			t.Errorf("gradient %q: nil color out of range", name)
		}
	}
	if _, err := chart.Gradient("viridis"); err == nil {
		t.Errorf("unknown gradient: expecting error")
	}

	pal := chart.Palette{G: chart.GrayScale{}, N: 5}
	cs := pal.Colors()
	if len(cs) != 5 {
		t.Fatalf("palette: got %d colors, want %d", len(cs), 5)
	}
	if cs[0] != (color.RGBA{230, 230, 230, 255}) {
		t.Errorf("palette first color: got %v", cs[0])
	}
	if cs[4] != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("palette last color: got %v", cs[4])
	}
}

func TestCellsDataRange(t *testing.T) {
	c := &chart.Cells{Rows: 3, Cols: 4}
	xMin, xMax, yMin, yMax := c.DataRange()
	if xMin != -0.5 || xMax != 3.5 || yMin != -0.5 || yMax != 2.5 {
		t.Errorf("data range: got (%g, %g, %g, %g), want (-0.5, 3.5, -0.5, 2.5)", xMin, xMax, yMin, yMax)
	}
}

func TestArrange(t *testing.T) {
	plots := make([]*plot.Plot, 5)
	for i := range plots {
		plots[i] = plot.New()
	}

	g := chart.Arrange(plots, 2)
	if len(g) != 2 || len(g[0]) != 3 {
		t.Fatalf("grid: got %d rows", len(g))
	}
	if g[1][1] != plots[4] {
		t.Errorf("grid [1, 1]: wrong plot")
	}
	if g[1][2] != nil {
		t.Errorf("grid [1, 2]: expecting empty cell")
	}

	g = chart.Arrange(plots[:2], 4)
	if len(g) != 2 || len(g[0]) != 1 {
		t.Errorf("more rows than plots: got %dx%d grid, want 2x1", len(g), len(g[0]))
	}
}

func TestGridSites(t *testing.T) {
	s := chart.GridSites(5, 1)
	if len(s) != 5 {
		t.Fatalf("sites: got %d, want %d", len(s), 5)
	}
	// three columns
	if s[3].X != 0 || s[3].Y != -2 {
		t.Errorf("site 4: got (%g, %g), want (0, -2)", s[3].X, s[3].Y)
	}
	if s[2].X != 4 || s[2].Y != 0 {
		t.Errorf("site 3: got (%g, %g), want (4, 0)", s[2].X, s[2].Y)
	}
}

func TestStackedErrors(t *testing.T) {
	periods := []string{"1", "2"}
	if _, err := chart.Stacked(nil, nil, "empty", "", periods); err == nil {
		t.Errorf("no series: expecting error")
	}

	s := []chart.Series{{Name: "a", Values: []float64{1, 2, 3}, Color: red}}
	if _, err := chart.Stacked(s, nil, "short", "", periods); err == nil {
		t.Errorf("series length: expecting error")
	}

	s = []chart.Series{{Name: "a", Values: []float64{1, 2}, Color: red}}
	line := &chart.Series{Name: "demand", Values: []float64{1}, Color: blue}
	if _, err := chart.Stacked(s, line, "line", "", periods); err == nil {
		t.Errorf("line length: expecting error")
	}
}

func TestDivergingErrors(t *testing.T) {
	periods := []string{"1", "2"}
	if _, err := chart.Diverging(nil, nil, "empty", "", periods); err == nil {
		t.Errorf("no series: expecting error")
	}

	s := []chart.Series{{Name: "a", Values: []float64{1, 2, 3}, Color: red}}
	if _, err := chart.Diverging(nil, s, "short", "", periods); err == nil {
		t.Errorf("series length: expecting error")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	sz := chart.CM(8, 6)
	periods := []string{"2020", "2025", "2030"}

	m := mat.NewDense(2, 3, []float64{
		1, 1, 0,
		0, 1, 1,
	})
	cats, err := switches.Assign([]*mat.Dense{m}, false)
	if err != nil {
		t.Fatalf("unable to assign: %v", err)
	}

	stacked, err := chart.Stacked([]chart.Series{
		{Name: "a", Values: []float64{1, 2, 3}, Color: red},
		{Name: "b", Values: []float64{1, 0, 1}, Color: blue},
	}, &chart.Series{Name: "demand", Values: []float64{2, 2, 2}, Color: color.Black}, "Capacity", "MT", periods)
	if err != nil {
		t.Fatalf("unable to build bars: %v", err)
	}

	diverging, err := chart.Diverging(
		[]chart.Series{{Name: "released", Values: []float64{3, 2, 1}, Color: blue}},
		[]chart.Series{
			{Name: "captured", Values: []float64{0, 1, 2}, Color: red},
			{Name: "new captured", Values: []float64{0, 0, 1}, Color: red},
		}, "Emissions", "MT CO2", periods)
	if err != nil {
		t.Fatalf("unable to build diverging bars: %v", err)
	}

	plots := map[string]*plot.Plot{
		"heat.png":   chart.Heatmap(m, chart.Iridescent{}, "Online", periods),
		"flat.png":   chart.Heatmap(mat.NewDense(2, 3, nil), chart.Iridescent{}, "Flat", periods),
		"binary.png": chart.Binary(m, red, "Online", periods),
		"cats.png":   chart.Categories(cats, []color.Color{red, blue}, color.White, "Technology", periods),
		"bars.svg":   stacked,
		"div.png":    diverging,
		"legend.png": chart.Legend("Technologies", []chart.Entry{{Name: "a", Color: red}, {Name: "b", Color: blue}}),
	}
	for name, p := range plots {
		fn := filepath.Join(dir, name)
		if err := chart.Save(p, sz, fn); err != nil {
			t.Errorf("%s: unable to save: %v", name, err)
			continue
		}
		testFile(t, fn)
	}
}

func TestSaveGrid(t *testing.T) {
	dir := t.TempDir()

	cm := capmat.New(3, 2, 2)
	cm.Add(0, 0, 0, 5)
	cm.Add(0, 1, 0, 5)
	cm.Add(1, 0, 1, 2)

	pies, err := chart.PieMaps(cm, []color.Color{red, blue}, nil, 1, 1e-8)
	if err != nil {
		t.Fatalf("unable to build pie maps: %v", err)
	}
	if len(pies) != 2 {
		t.Fatalf("pie maps: got %d, want %d", len(pies), 2)
	}

	fn := filepath.Join(dir, "map.png")
	if err := chart.SaveGrid(chart.Arrange(pies, 1), chart.CM(6, 6), fn); err != nil {
		t.Fatalf("unable to save grid: %v", err)
	}
	testFile(t, fn)

	if _, err := chart.PieMaps(cm, []color.Color{red}, chart.GridSites(2, 1), 1, 1e-8); err == nil {
		t.Errorf("wrong number of sites: expecting error")
	}
}

func TestParetoCharts(t *testing.T) {
	dir := t.TempDir()
	bau := pareto.Run{Folder: "bau", Obj: 90, CO2: 60}
	pts := pareto.Front([]pareto.Run{
		{Folder: "a", Obj: 100, CO2: 50},
		{Folder: "b", Obj: 120, CO2: 40},
	}, bau)

	front, err := chart.Front(pts, bau)
	if err != nil {
		t.Fatalf("unable to build front: %v", err)
	}
	inc, err := chart.Incremental(pts)
	if err != nil {
		t.Fatalf("unable to build incremental chart: %v", err)
	}
	bars, ab, err := chart.Scenarios(pts)
	if err != nil {
		t.Fatalf("unable to build scenario charts: %v", err)
	}

	fn := filepath.Join(dir, "pareto.png")
	grid := [][]*plot.Plot{{front, inc}, {bars, ab}}
	if err := chart.SaveGrid(grid, chart.CM(8, 6), fn); err != nil {
		t.Fatalf("unable to save grid: %v", err)
	}
	testFile(t, fn)

	if _, _, err := chart.Scenarios(nil); err == nil {
		t.Errorf("no scenarios: expecting error")
	}
}

func testFile(t testing.TB, name string) {
	t.Helper()

	st, err := os.Stat(name)
	if err != nil {
		t.Errorf("file %q: %v", name, err)
		return
	}
	if st.Size() == 0 {
		t.Errorf("file %q: empty file", name)
	}
}

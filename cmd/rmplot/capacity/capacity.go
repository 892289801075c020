// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package capacity implements a command to draw
// the capacity of each technology at each location.
package capacity

import (
	"fmt"
	"image/color"

	"github.com/js-arias/command"
	"github.com/sirupsen/logrus"
	"github.com/stre3am/rmplot/capmat"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/cmd/rmplot/folder"
	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
	"github.com/stre3am/rmplot/table"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

var Command = &command.Command{
	Usage: `capacity [--project <file>] [--style <file>] [--format <ext>]
	[--sites <file>] [--rows <number>] [--raw] [--verbose]
	[-o|--output <folder>] <result-folder>`,
	Short: "draw the capacity at each location",
	Long: `
Command capacity reads the capacity of the retrofit and new plant technologies
at each location of a model run, and draws it as a map of pies, one map per
period. Each pie is a location, and each slice is a technology. The area of a
pie is proportional to the total capacity of the location. Locations without
capacity are drawn as a red dot.

The argument of the command is the result folder of the model run. By default
the capacity is read from the files "drcp_d_act.csv" and "dncp_d.csv" of the
result folder, and the run dimensions from "lrn_info.csv". Use the flag
--project to define a project file with different paths. See
"rmplot help result-files" for the format of the files.

Capacity values are divided by the capacity scale factor ("sf_cap" in the
file "s_info.csv"). Use the flag --raw to use the values as given. Values
smaller than the epsilon of the style are set to zero.

By default locations are placed in a square grid. Use the flag --sites to
define a file with the map position of each location. The maps are arranged
in a grid with the number of rows defined in the style. Use the flag --rows to
set a different number of rows.

The command writes the following files into the output folder:

	capacity.csv   the capacity of each location, technology, and period.
	map.<format>   the maps of pies.
	total.<format> a heat map of the total capacity of each location.

By default the output folder is a new folder named after the current time.
Use the flag --output, or -o, to define the output folder. The chart style can
be defined with the flag --style (see "rmplot help style-files"), and the
image format with the flag --format. Use the flag --verbose to print the name
of each written file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var rawFlag bool
var verbose bool
var numRows int
var projectFile string
var styleFile string
var formatFlag string
var sitesFile string
var outputDir string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&rawFlag, "raw", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().IntVar(&numRows, "rows", 0, "")
	c.Flags().StringVar(&projectFile, "project", "", "")
	c.Flags().StringVar(&styleFile, "style", "", "")
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&sitesFile, "sites", "", "")
	c.Flags().StringVar(&outputDir, "output", "", "")
	c.Flags().StringVar(&outputDir, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting result folder")
	}

	f, err := folder.Open(folder.Config{
		Command: "capacity",
		Dir:     args[0],
		Project: projectFile,
		Style:   styleFile,
		Format:  formatFlag,
		Output:  outputDir,
		Log:     c.Stderr(),
		Verbose: verbose,
	})
	if err != nil {
		return err
	}
	if sitesFile != "" {
		f.Project.Add(project.Sites, sitesFile)
	}

	dims, err := f.Project.Run()
	if err != nil {
		return err
	}

	sf := 1.0
	if !rawFlag {
		sc, err := f.Project.Scale()
		if err != nil {
			return err
		}
		sf, err = sc.Factor(info.Capacity)
		if err != nil {
			return fmt.Errorf("capacity scale factor: %v", err)
		}
	}

	retro, err := readCapacity(f, project.RetroLocCap, sf)
	if err != nil {
		return err
	}
	fresh, err := readCapacity(f, project.NewLocCap, sf)
	if err != nil {
		return err
	}

	m, err := capmat.Build(retro, fresh, dims)
	if err != nil {
		return err
	}
	locs, techs, periods := m.Dims()
	if locs == 0 || periods == 0 {
		return fmt.Errorf("empty capacity matrix: %d locations, %d periods", locs, periods)
	}
	f.Log.WithFields(logrus.Fields{
		"locations":    locs,
		"technologies": techs,
		"periods":      periods,
		"max":          m.Max(),
	}).Info("capacity matrix")

	if err := f.WriteFile("capacity.csv", m.WriteCSV); err != nil {
		return err
	}

	if err := pieMaps(f, m, locs); err != nil {
		return err
	}
	if err := totalMap(f, m); err != nil {
		return err
	}
	return nil
}

func readCapacity(f *folder.Folder, set project.Dataset, sf float64) (*table.Table, error) {
	t, err := f.Project.Table(set, true)
	if err != nil {
		return nil, err
	}
	t, err = t.Rescale(sf)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", set, err)
	}
	t.Clean(f.Style.Epsilon)
	return t, nil
}

func pieMaps(f *folder.Folder, m *capmat.Matrix, locs int) error {
	ss, err := f.Project.Sites(locs)
	if err != nil {
		return err
	}
	var sites plotter.XYs
	if ss != nil {
		sites = make(plotter.XYs, len(ss))
		for i, s := range ss {
			sites[i] = plotter.XY{X: s.X, Y: s.Y}
		}
	}

	_, techs, _ := m.Dims()
	colors := make([]color.Color, techs)
	for k := range colors {
		colors[k] = f.Style.RetroColor(k)
	}

	pies, err := chart.PieMaps(m, colors, sites, f.Style.PieScale, f.Style.Epsilon)
	if err != nil {
		return err
	}

	rows := f.Style.PieRows
	if numRows > 0 {
		rows = numRows
	}
	return f.SaveGrid(chart.Arrange(pies, rows), "map")
}

func totalMap(f *folder.Folder, m *capmat.Matrix) error {
	locs, _, periods := m.Dims()
	tot := mat.NewDense(locs, periods, nil)
	for l := 0; l < locs; l++ {
		for t := 0; t < periods; t++ {
			tot.Set(l, t, m.Total(l, t))
		}
	}

	g, err := chart.Gradient(f.Style.Gradient)
	if err != nil {
		return err
	}
	p := chart.Heatmap(tot, g, "Total capacity", m.Periods())
	return f.Save(p, "total")
}

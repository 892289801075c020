// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package switchcmd implements a command to draw
// the technology switches of a model run.
package switchcmd

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/js-arias/command"
	"github.com/sirupsen/logrus"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/cmd/rmplot/folder"
	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
	"github.com/stre3am/rmplot/switches"
	"gonum.org/v1/gonum/mat"
)

var Command = &command.Command{
	Usage: `switch [--project <file>] [--style <file>] [--format <ext>]
	[--online-baseline <value>] [--expansion-baseline <value>]
	[--all] [--verbose] [-o|--output <folder>] <result-folder>`,
	Short: "draw the technology switches of a model run",
	Long: `
Command switch reads the online status, the expansion indicator, and the
status of the retrofit and new plant technologies of each location of a model
run, and draws them as maps of locations by periods.

The argument of the command is the result folder of the model run. By default
the data is read from the files "dyo.csv" (online status), "dye.csv"
(expansion), "dyr.csv" (retrofit status), and "dyn.csv" (new plant status),
the run dimensions from "lrn_info.csv", the names of the technologies from
"retro_labels.csv" and "new_labels.csv", and the technologies available at
each location from "retro_filters.csv" and "new_filters.csv". If a filter file
does not exist, all technologies are available at all locations. Use the flag
--project to define a project file with different paths. See
"rmplot help result-files" for the format of the files.

A retirement is a decrease of the online status with respect to the previous
period, and an expansion is an increase of the expansion indicator. Only units
that are online can expand. The first period is compared against a baseline
value, by default 0. Use the flags --online-baseline and --expansion-baseline
to set different baselines.

The status of the retrofit technologies of a location is only taken into
account while the location is online. The aggregated maps show the technology
of each location at each period, up to the first switch to a technology other
than the base technology. Use the flag --all to show all the periods.

The command writes the following files into the output folder:

	on.<format>           the online status.
	off.<format>          the retirement switches.
	exps_.<format>        the expansion switches.
	exps_actual.<format>  the expansion indicator of online units.
	rf_<k>_.<format>      the status of the retrofit technology k.
	nw_<k>_.<format>      the status of the new plant technology k.
	rf_agg_.<format>      the aggregated retrofit switches.
	nw_agg_.<format>      the aggregated new plant switches.
	legend_rf.<format>    the legend of the retrofit technologies.
	legend_nw.<format>    the legend of the new plant technologies.
	retirement.csv        the retirement switches.
	expansion.csv         the expansion switches.

By default the output folder is a new folder named after the current time.
Use the flag --output, or -o, to define the output folder. The chart style can
be defined with the flag --style (see "rmplot help style-files"), and the
image format with the flag --format. Use the flag --verbose to print the name
of each written file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var allFlag bool
var verbose bool
var onlineBase float64
var expansionBase float64
var projectFile string
var styleFile string
var formatFlag string
var outputDir string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&allFlag, "all", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().Float64Var(&onlineBase, "online-baseline", 0, "")
	c.Flags().Float64Var(&expansionBase, "expansion-baseline", 0, "")
	c.Flags().StringVar(&projectFile, "project", "", "")
	c.Flags().StringVar(&styleFile, "style", "", "")
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&outputDir, "output", "", "")
	c.Flags().StringVar(&outputDir, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting result folder")
	}

	f, err := folder.Open(folder.Config{
		Command: "switch",
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

	dims, err := f.Project.Run()
	if err != nil {
		return err
	}

	online, periods, err := indicator(f, project.Online, dims)
	if err != nil {
		return err
	}
	exp, _, err := indicator(f, project.Expansion, dims)
	if err != nil {
		return err
	}
	if _, n := exp.Dims(); n != len(periods) {
		return fmt.Errorf("%s: got %d periods, want %d", project.Expansion, n, len(periods))
	}

	if err := transitions(f, online, exp, periods); err != nil {
		return err
	}

	retro := techSet{
		status: project.RetroStatus,
		labels: project.RetroLabels,
		filter: project.RetroFilter,
		techs:  dims.Retrofits,
		prefix: "rf",
		title:  "Retrofit",
		color:  f.Style.RetroColor,
	}
	if err := retro.draw(f, online, dims.Locations, periods); err != nil {
		return err
	}

	fresh := techSet{
		status: project.NewStatus,
		labels: project.NewLabels,
		filter: project.NewFilter,
		techs:  dims.News,
		prefix: "nw",
		title:  "New plant",
		color:  f.Style.NewColor,
	}
	if err := fresh.draw(f, nil, dims.Locations, periods); err != nil {
		return err
	}
	return nil
}

func indicator(f *folder.Folder, set project.Dataset, dims info.Run) (*mat.Dense, []string, error) {
	t, err := f.Project.Table(set, true)
	if err != nil {
		return nil, nil, err
	}
	m, err := switches.Indicator(t, dims.Locations)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v", set, err)
	}
	return m, t.Index(), nil
}

func transitions(f *folder.Folder, online, exp *mat.Dense, periods []string) error {
	if err := f.Save(chart.Binary(online, f.Style.Color(f.Style.Online), "Online", periods), "on"); err != nil {
		return err
	}

	ret := switches.Retirement(online, onlineBase)
	if err := f.Save(chart.Binary(ret, f.Style.Color(f.Style.Retirement), "Retirement switch", periods), "off"); err != nil {
		return err
	}
	if err := writeSwitches(f, ret, periods, "retirement.csv"); err != nil {
		return err
	}

	actual, err := switches.Mask(exp, online)
	if err != nil {
		return fmt.Errorf("expansion: %v", err)
	}
	expSw := switches.Expansion(actual, expansionBase)
	expColor := f.Style.Color(f.Style.Expansion)
	if err := f.Save(chart.Binary(expSw, expColor, "Expansion switch", periods), "exps_"); err != nil {
		return err
	}
	if err := f.Save(chart.Binary(actual, expColor, "Expansion (actual)", periods), "exps_actual"); err != nil {
		return err
	}
	if err := writeSwitches(f, expSw, periods, "expansion.csv"); err != nil {
		return err
	}

	f.Log.WithFields(logrus.Fields{
		"retired":  countRows(switches.FirstOnly(ret)),
		"expanded": countRows(switches.FirstOnly(expSw)),
	}).Info("transitions")
	return nil
}

func writeSwitches(f *folder.Folder, m *mat.Dense, periods []string, name string) error {
	t, err := switches.ToTable(m, "period", periods)
	if err != nil {
		return err
	}
	return f.WriteFile(name, t.WriteCSV)
}

// countRows returns the number of locations
// with at least one switch.
func countRows(m mat.Matrix) int {
	var n int
	for _, v := range switches.Count(m) {
		if v > 0 {
			n++
		}
	}
	return n
}

// A techSet is a set of technologies
// (retrofit or new plant)
// of a model run.
type techSet struct {
	status project.Dataset
	labels project.Dataset
	filter project.Dataset
	techs  int

	prefix string
	title  string
	color  func(k int) color.Color
}

func (ts techSet) draw(f *folder.Folder, online mat.Matrix, locations int, periods []string) error {
	if ts.techs < 1 {
		f.Log.WithField("set", ts.status).Warn("no technologies")
		return nil
	}

	t, err := f.Project.Table(ts.status, true)
	if err != nil {
		return err
	}
	if t.Rows() != len(periods) {
		return fmt.Errorf("%s: got %d periods, want %d", ts.status, t.Rows(), len(periods))
	}
	flt, err := f.Project.Filter(ts.filter)
	if err != nil {
		return err
	}
	names, err := ts.names(f)
	if err != nil {
		return err
	}

	stack, err := switches.Stack(t, online, flt, locations, ts.techs)
	if err != nil {
		return fmt.Errorf("%s: %v", ts.status, err)
	}

	colors := make([]color.Color, ts.techs)
	entries := make([]chart.Entry, ts.techs)
	for k, m := range stack {
		colors[k] = ts.color(k)
		entries[k] = chart.Entry{Name: names[k], Color: colors[k]}

		// the base color might be the background color
		clr := colors[k]
		if k == 0 {
			clr = f.Style.Color(f.Style.Online)
		}
		title := fmt.Sprintf("%s %s status", ts.title, names[k])
		if err := f.Save(chart.Binary(m, clr, title, periods), fmt.Sprintf("%s_%d_", ts.prefix, k+1)); err != nil {
			return err
		}
	}

	cats, err := switches.Assign(stack, !allFlag)
	if err != nil {
		return err
	}
	if cats.Overlaps > 0 {
		f.Log.WithFields(logrus.Fields{
			"set":   ts.status,
			"cells": cats.Overlaps,
		}).Warn("more than one active technology")
	}
	empty := f.Style.Color(f.Style.Empty)
	title := ts.title + " switch"
	if err := f.Save(chart.Categories(cats, colors, empty, title, periods), ts.prefix+"_agg_"); err != nil {
		return err
	}

	return f.Save(chart.Legend(ts.title, entries), "legend_"+ts.prefix)
}

// names returns the names of the technologies.
// If there are no labels,
// technologies are named by their index.
func (ts techSet) names(f *folder.Folder) ([]string, error) {
	names := make([]string, ts.techs)
	for k := range names {
		names[k] = fmt.Sprintf("%d", k+1)
	}

	ls, err := f.Project.Labels(ts.labels)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return names, nil
		}
		return nil, err
	}
	copy(names, ls)
	return names, nil
}

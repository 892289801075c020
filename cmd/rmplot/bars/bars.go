// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bars implements a command to draw
// the totals of a model run
// as stacked bars.
package bars

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"

	"github.com/js-arias/command"
	"github.com/sirupsen/logrus"
	"github.com/stre3am/rmplot/aggregate"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/cmd/rmplot/folder"
	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
	"github.com/stre3am/rmplot/table"
)

var Command = &command.Command{
	Usage: `bars [--project <file>] [--style <file>] [--format <ext>]
	[--year] [--raw] [--verbose] [-o|--output <folder>] <result-folder>`,
	Short: "draw the totals of a model run as stacked bars",
	Long: `
Command bars reads the total capacity of each technology, the demand, the
emissions, and the energy use of a model run, and draws them as stacked bars,
one bar per period.

The argument of the command is the result folder of the model run. The names
of the technologies are read from "retro_labels.csv" and "new_labels.csv". Use
the flag --project to define a project file with different paths. See
"rmplot help result-files" for the format of the files.

Values are divided by the scale factor of its kind of quantity (in the file
"s_info.csv"): "sf_cap" for capacity and demand, "sf_em" for emissions,
"sf_elec" for electricity, and "sf_heat" for fuels. Use the flag --raw to use
the values as given.

By default the periods are numbered from 1. Use the flag --year to use the
index column of the files (usually the year) as the period labels.

The command writes the following files into the output folder:

	demand-active_c.<format>   the active capacity by technology and the
	                           demand ("drcp.csv", "dncp.csv", and
	                           "demand.csv").
	inc_ret_new_em.<format>    the emissions ("em.csv").
	demand-installed.<format>  the installed capacity by technology and the
	                           demand ("drcpb.csv" and "dnc0.csv").
	expansion_cap.<format>     the installed expansion capacity
	                           ("dec_act.csv").
	ep1ge.<format>             the emissions by technology ("drep1.csv" and
	                           "dnep1.csv").
	u_by_rf.<format>           the electricity consumption by technology
	                           ("dru.csv" and "dnu.csv").
	demand-location.<format>   the capacity by location, grouped by
	                           technology, and the demand ("drcp_d_act.csv"
	                           and "dncp_d.csv").
	co2_ccap.<format>          the captured CO2.
	co2_emit_cap.<format>      the released CO2 over the captured CO2.
	energy_use.<format>        the aggregate use of electricity ("u.csv")
	                           and fuels ("dr_f_<loc>.csv" and
	                           "dn_f_<loc>.csv").

The captured CO2 is the process CO2 ("drcpe.csv" and "dncpe.csv") plus the
fuel CO2 ("drfue.csv" and "dnfue.csv") minus the released CO2 ("drep1_.csv"
and "dnep1_.csv").

The active capacity and the emissions are required. Any other chart is
skipped, with a warning, if one of its files does not exist.

By default the output folder is a new folder named after the current time.
Use the flag --output, or -o, to define the output folder. The chart style can
be defined with the flag --style (see "rmplot help style-files"), and the
image format with the flag --format. Use the flag --verbose to print the name
of each written file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var yearFlag bool
var rawFlag bool
var verbose bool
var projectFile string
var styleFile string
var formatFlag string
var outputDir string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&yearFlag, "year", false, "")
	c.Flags().BoolVar(&rawFlag, "raw", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&projectFile, "project", "", "")
	c.Flags().StringVar(&styleFile, "style", "", "")
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&outputDir, "output", "", "")
	c.Flags().StringVar(&outputDir, "o", "", "")
}

// results is a model run
// with the scale factors of its quantities.
type results struct {
	*folder.Folder
	scale info.Scale
}

// A barChart draws a chart from the results.
type barChart struct {
	name string
	draw func(r *results) error
}

// optional are the charts that are skipped
// if a file is missing.
var optional = []barChart{
	{"demand-installed", installedBars},
	{"expansion_cap", expansionBars},
	{"ep1ge", techEmissionBars},
	{"u_by_rf", electricityBars},
	{"demand-location", locationBars},
	{"co2_ccap", capturedBars},
	{"co2_emit_cap", releasedBars},
	{"energy_use", energyBars},
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting result folder")
	}

	f, err := folder.Open(folder.Config{
		Command: "bars",
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

	r := &results{Folder: f}
	if !rawFlag {
		r.scale, err = f.Project.Scale()
		if err != nil {
			return err
		}
	}

	if err := capacityBars(r); err != nil {
		return err
	}
	if err := emissionBars(r); err != nil {
		return err
	}

	for _, b := range optional {
		err := b.draw(r)
		if errors.Is(err, fs.ErrNotExist) {
			r.Log.WithField("chart", b.name).Warnf("chart skipped: %v", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("chart %q: %v", b.name, err)
		}
	}
	return nil
}

func capacityBars(r *results) error {
	retro, err := r.table(project.RetroCap, true, info.Capacity)
	if err != nil {
		return err
	}
	fresh, err := r.table(project.NewCap, true, info.Capacity)
	if err != nil {
		return err
	}
	if err := samePeriods(retro, project.NewCap, fresh); err != nil {
		return err
	}
	periods, err := periodLabels(retro)
	if err != nil {
		return fmt.Errorf("%s: %v", project.RetroCap, err)
	}
	demand, err := r.demand(retro.Rows())
	if err != nil {
		return err
	}

	var series []chart.Series
	series = r.techSeries(series, project.RetroLabels, retro, 0, r.Style.RetroColor)
	series = r.techSeries(series, project.NewLabels, fresh, 0, r.Style.NewColor)

	p, err := chart.Stacked(series, demand, "Capacity (active) and demand", "Capacity", periods)
	if err != nil {
		return err
	}
	r.Log.WithFields(logrus.Fields{
		"technologies": len(series),
		"periods":      len(periods),
	}).Info("capacity bars")
	return r.Save(p, "demand-active_c")
}

// installedBars draws the installed capacity.
// The first new plant technology
// is the base technology of the new plants
// and it is not drawn.
func installedBars(r *results) error {
	retro, err := r.table(project.RetroBaseCap, true, info.Capacity)
	if err != nil {
		return err
	}
	fresh, err := r.table(project.NewBaseCap, true, info.Capacity)
	if err != nil {
		return err
	}
	if err := samePeriods(retro, project.NewBaseCap, fresh); err != nil {
		return err
	}
	periods, err := periodLabels(retro)
	if err != nil {
		return fmt.Errorf("%s: %v", project.RetroBaseCap, err)
	}
	demand, err := r.demand(retro.Rows())
	if err != nil {
		return err
	}

	var series []chart.Series
	series = r.techSeries(series, project.RetroLabels, retro, 0, r.Style.RetroColor)
	series = r.techSeries(series, project.NewLabels, fresh, 1, r.Style.NewColor)

	p, err := chart.Stacked(series, demand, "Capacity (installed) and demand", "Capacity", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "demand-installed")
}

func expansionBars(r *results) error {
	exp, err := r.table(project.ExpansionCap, true, info.Capacity)
	if err != nil {
		return err
	}
	periods, err := periodLabels(exp)
	if err != nil {
		return fmt.Errorf("%s: %v", project.ExpansionCap, err)
	}

	series := []chart.Series{{
		Name:   "Expansion",
		Values: aggregate.Total(exp),
		Color:  r.Style.Color(r.Style.Expansion),
	}}
	p, err := chart.Stacked(series, nil, "Installed expansion capacity", "Capacity", periods)
	if err != nil {
		return err
	}
	return r.Save(p, "expansion_cap")
}

func locationBars(r *results) error {
	ri, err := r.Project.Run()
	if err != nil {
		return err
	}
	retro, err := r.table(project.RetroLocCap, true, info.Capacity)
	if err != nil {
		return err
	}
	fresh, err := r.table(project.NewLocCap, true, info.Capacity)
	if err != nil {
		return err
	}
	if err := samePeriods(retro, project.NewLocCap, fresh); err != nil {
		return err
	}
	periods, err := periodLabels(retro)
	if err != nil {
		return fmt.Errorf("%s: %v", project.RetroLocCap, err)
	}
	demand, err := r.demand(retro.Rows())
	if err != nil {
		return err
	}

	rt, err := aggregate.ByTech(retro, ri.Retrofits)
	if err != nil {
		return fmt.Errorf("%s: %v", project.RetroLocCap, err)
	}
	nt, err := aggregate.ByTech(fresh, ri.News)
	if err != nil {
		return fmt.Errorf("%s: %v", project.NewLocCap, err)
	}

	var series []chart.Series
	series = appendValues(series, rt, r.names(project.RetroLabels, len(rt)), r.Style.RetroColor)
	series = appendValues(series, nt, r.names(project.NewLabels, len(nt)), r.Style.NewColor)

	p, err := chart.Stacked(series, demand, "Capacity and demand", "Capacity", periods)
	if err != nil {
		return err
	}
	r.Log.WithFields(logrus.Fields{
		"locations": ri.Locations,
		"periods":   len(periods),
	}).Info("capacity by location")
	return r.Save(p, "demand-location")
}

// factor returns the scale factor of a kind of quantity.
func (r *results) factor(k info.Kind) (float64, error) {
	if r.scale == nil {
		return 1, nil
	}
	sf, err := r.scale.Factor(k)
	if err != nil {
		return 0, fmt.Errorf("scale factor: %v", err)
	}
	return sf, nil
}

// table reads a result table,
// rescaled by the factor of its kind of quantity.
func (r *results) table(set project.Dataset, index bool, k info.Kind) (*table.Table, error) {
	t, err := r.Project.Table(set, index)
	if err != nil {
		return nil, err
	}
	return r.rescale(t, set, k)
}

func (r *results) rescale(t *table.Table, set project.Dataset, k info.Kind) (*table.Table, error) {
	sf, err := r.factor(k)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", set, err)
	}
	t, err = t.Rescale(sf)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", set, err)
	}
	t.Clean(r.Style.Epsilon)
	return t, nil
}

// demand returns the demand line.
func (r *results) demand(periods int) (*chart.Series, error) {
	d, err := r.table(project.Demand, false, info.Capacity)
	if err != nil {
		return nil, err
	}
	if d.Rows() != periods {
		return nil, fmt.Errorf("%s: got %d periods, want %d", project.Demand, d.Rows(), periods)
	}
	if len(d.Names()) == 0 {
		return nil, fmt.Errorf("%s: no data columns", project.Demand)
	}
	return &chart.Series{
		Name:   "Demand",
		Values: d.Values(0),
		Color:  r.Style.Color(r.Style.Demand),
	}, nil
}

// techSeries adds a series for each technology column of a table,
// starting from a given column.
// If the labels file has fewer names than columns,
// the column names are used.
func (r *results) techSeries(series []chart.Series, set project.Dataset, t *table.Table, from int, clr func(int) color.Color) []chart.Series {
	names := t.Names()
	ls, err := r.Project.Labels(set)
	if err != nil {
		r.Log.WithField("set", set).Warnf("using column names: %v", err)
	}
	copy(names, ls)

	for i := from; i < len(names); i++ {
		series = append(series, chart.Series{
			Name:   names[i],
			Values: t.Values(i),
			Color:  clr(i),
		})
	}
	return series
}

// names returns the names of the technologies.
// If the labels file has fewer names than technologies,
// the missing technologies are named by its index.
func (r *results) names(set project.Dataset, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	ls, err := r.Project.Labels(set)
	if err != nil {
		r.Log.WithField("set", set).Warnf("using technology indices: %v", err)
		return names
	}
	copy(names, ls)
	return names
}

func appendValues(series []chart.Series, vals [][]float64, names []string, clr func(int) color.Color) []chart.Series {
	for i, v := range vals {
		series = append(series, chart.Series{
			Name:   names[i],
			Values: v,
			Color:  clr(i),
		})
	}
	return series
}

func samePeriods(t *table.Table, set project.Dataset, o *table.Table) error {
	if o.Rows() != t.Rows() {
		return fmt.Errorf("%s: got %d periods, want %d", set, o.Rows(), t.Rows())
	}
	return nil
}

// periodLabels returns the labels of the periods
// of a table.
func periodLabels(t *table.Table) ([]string, error) {
	x, err := t.X(yearFlag)
	if err != nil {
		return nil, err
	}
	periods := make([]string, len(x))
	for i, v := range x {
		periods[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return periods, nil
}

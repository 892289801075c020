// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package paretocmd implements a command to compare
// a list of model runs against a business-as-usual run.
package paretocmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/js-arias/command"
	"github.com/sirupsen/logrus"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/cmd/rmplot/folder"
	"github.com/stre3am/rmplot/pareto"
)

var Command = &command.Command{
	Usage: `pareto [--bau <file>] [--scenarios] [--style <file>]
	[--format <ext>] [--verbose] [-o|--output <folder>] <run-list>`,
	Short: "draw the Pareto front of a list of runs",
	Long: `
Command pareto reads a list of model runs and compares them against a
business-as-usual run.

The argument of the command is the file with the list of runs. Each line of
the file is a run, with fields separated by spaces or tabs. The first field is
the result folder of the run, the fourth field is the objective value, and the
fifth field is the CO2 emissions. Empty lines and lines starting with '#' are
ignored.

By default, the runs are taken as a sequence of increasing emission reduction
targets, evenly spaced from 0 to 0.5, and compared against the first run of
the file "bau_run.txt", in the same folder of the run list. Use the flag --bau
to define a different file for the business-as-usual run. In this mode the
command writes the following files into the output folder:

	pareto_front.<format>        the objective value against the emissions.
	pareto_incremental.<format>  the incremental cost against the avoided
	                             emissions.
	pareto_front.csv             the values of each run.

If the flag --scenarios is defined, the runs are taken as scenario pairs: each
policy run is followed by its business-as-usual run. If the number of runs is
odd, the last run is ignored. In this mode the command writes the following
files into the output folder:

	incremental.<format>         the incremental cost and avoided emissions
	                             of each scenario.
	abatement.<format>           the abatement cost of each scenario.
	scenario_increment_abat.csv  the values of each scenario.

By default the output folder is a new folder named after the current time.
Use the flag --output, or -o, to define the output folder. The chart style can
be defined with the flag --style (see "rmplot help style-files"), and the
image format with the flag --format. Use the flag --verbose to print the name
of each written file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var scenariosFlag bool
var verbose bool
var bauFile string
var styleFile string
var formatFlag string
var outputDir string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&scenariosFlag, "scenarios", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&bauFile, "bau", "", "")
	c.Flags().StringVar(&styleFile, "style", "", "")
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&outputDir, "output", "", "")
	c.Flags().StringVar(&outputDir, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting run list file")
	}

	runs, err := pareto.ReadRunsFile(args[0])
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return fmt.Errorf("on file %q: no runs", args[0])
	}

	// the business-as-usual run is read
	// before creating the output folder
	var bau pareto.Run
	if !scenariosFlag {
		if bauFile == "" {
			bauFile = filepath.Join(filepath.Dir(args[0]), "bau_run.txt")
		}
		br, err := pareto.ReadRunsFile(bauFile)
		if err != nil {
			return err
		}
		if len(br) == 0 {
			return fmt.Errorf("on file %q: no runs", bauFile)
		}
		bau = br[0]
	}

	f, err := folder.New(folder.Config{
		Command: "pareto",
		Style:   styleFile,
		Format:  formatFlag,
		Output:  outputDir,
		Log:     c.Stderr(),
		Verbose: verbose,
	})
	if err != nil {
		return err
	}
	f.Log = f.Log.WithField("runs", args[0])

	if scenariosFlag {
		return scenarios(f, runs)
	}
	return front(f, runs, bau)
}

func front(f *folder.Folder, runs []pareto.Run, bau pareto.Run) error {
	pts := pareto.Front(runs, bau)
	f.Log.WithFields(logrus.Fields{
		"runs":    len(pts),
		"bau-obj": bau.Obj,
		"bau-co2": bau.CO2,
	}).Info("pareto front")

	p, err := chart.Front(pts, bau)
	if err != nil {
		return err
	}
	if err := f.Save(p, "pareto_front"); err != nil {
		return err
	}

	p, err = chart.Incremental(pts)
	if err != nil {
		return err
	}
	if err := f.Save(p, "pareto_incremental"); err != nil {
		return err
	}

	return f.WriteFile("pareto_front.csv", func(w io.Writer) error {
		return pareto.WriteFront(w, pts, bau)
	})
}

func scenarios(f *folder.Folder, runs []pareto.Run) error {
	if len(runs)%2 != 0 {
		f.Log.WithField("run", runs[len(runs)-1].Folder).Warn("unpaired last run ignored")
	}
	pts := pareto.Scenarios(runs)
	if len(pts) == 0 {
		return fmt.Errorf("no scenario pairs")
	}
	f.Log.WithField("scenarios", len(pts)).Info("scenario pairs")

	bars, ab, err := chart.Scenarios(pts)
	if err != nil {
		return err
	}
	if err := f.Save(bars, "incremental"); err != nil {
		return err
	}
	if err := f.Save(ab, "abatement"); err != nil {
		return err
	}

	return f.WriteFile("scenario_increment_abat.csv", func(w io.Writer) error {
		return pareto.WriteScenarios(w, pts)
	})
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a result folder.
package prj

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
)

var Command = &command.Command{
	Usage: "prj [--project <file>] [--save <file>] <result-folder>",
	Short: "print information about a result folder",
	Long: `
Command prj reads the result folder of a model run and prints the information
of the different files of the folder into the standard output.

The argument of the command is the result folder. Use the flag --project to
define a project file with paths that override the default file names of the
result folder (see "rmplot help projects").

Use the flag --save to write the paths of all the datasets into a new project
file, that can be edited and used with the other commands.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var projectFile string
var saveFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&projectFile, "project", "", "")
	c.Flags().StringVar(&saveFile, "save", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting result folder")
	}

	p, err := project.Open(args[0], projectFile)
	if err != nil {
		return err
	}

	w := c.Stdout()
	if err := printRun(w, p); err != nil {
		return err
	}
	if err := printScale(w, p); err != nil {
		return err
	}
	printFiles(w, p)

	if saveFile != "" {
		p.SetName(saveFile)
		if err := p.Write(); err != nil {
			return err
		}
	}
	return nil
}

func printRun(w io.Writer, p *project.Project) error {
	r, err := p.Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Run:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Info))
	fmt.Fprintf(w, "\tlocations: %d\n", r.Locations)
	fmt.Fprintf(w, "\tretrofit technologies: %d\n", r.Retrofits)
	fmt.Fprintf(w, "\tnew plant technologies: %d\n", r.News)
	fmt.Fprintf(w, "\tperiods: %d (%d time slices)\n", r.Periods, r.Slices())
	fmt.Fprintf(w, "\n")
	return nil
}

func printScale(w io.Writer, p *project.Project) error {
	sc, err := p.Scale()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Scale factors:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Scale))
	for _, k := range []info.Kind{info.Capacity, info.Emission, info.Cash, info.Heat, info.Electricity} {
		v, err := sc.Factor(k)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "\t%s: %g\n", k, v)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func printFiles(w io.Writer, p *project.Project) {
	fmt.Fprintf(w, "Datasets:\n")
	for _, s := range p.Sets() {
		path := p.Path(s)
		status := "ok"
		if _, err := os.Stat(fileName(path)); err != nil {
			status = "missing"
		}
		fmt.Fprintf(w, "\t%s: %s [%s]\n", s, path, status)
	}
}

// fileName removes the sheet name
// from the path of a workbook sheet.
// In a per location path,
// the file of the first location is used.
func fileName(path string) string {
	path = project.LocPath(path, 1)
	if i := strings.LastIndex(path, ".xlsx:"); i >= 0 {
		return path[:i+len(".xlsx")]
	}
	return path
}

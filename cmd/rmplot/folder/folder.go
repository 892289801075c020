// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package folder implements the input and output folders
// shared by the plotting commands:
// the result folder of a model run,
// the chart style,
// and the output folder.
package folder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stre3am/rmplot/chart"
	"github.com/stre3am/rmplot/outdir"
	"github.com/stre3am/rmplot/project"
	"github.com/stre3am/rmplot/style"
	"gonum.org/v1/plot"
)

// Config is the configuration of a plotting command.
type Config struct {
	// Name of the command
	Command string

	// Result folder of the model run
	// (ignored by New)
	Dir string

	// Project file with the paths
	// that override the defaults of the result folder
	Project string

	// Style file
	Style string

	// Image format,
	// it overrides the style format
	Format string

	// Output folder
	Output string

	// Output for the log
	Log io.Writer

	// If set, debug messages are logged
	Verbose bool
}

// A Folder is an open result folder.
type Folder struct {
	// Project is nil
	// if the command does not read a result folder
	Project *project.Project
	Style   style.Style
	Out     string
	Log     *logrus.Entry
}

// Open opens a result folder
// and creates the output folder.
func Open(cfg Config) (*Folder, error) {
	if st, err := os.Stat(cfg.Dir); err != nil {
		return nil, err
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a folder", cfg.Dir)
	}

	p, err := project.Open(cfg.Dir, cfg.Project)
	if err != nil {
		return nil, err
	}

	f, err := New(cfg)
	if err != nil {
		return nil, err
	}
	f.Project = p
	f.Log = f.Log.WithField("results", cfg.Dir)
	return f, nil
}

// New creates an output folder
// for a command that does not read a result folder.
func New(cfg Config) (*Folder, error) {
	log := logrus.New()
	if cfg.Log != nil {
		log.Out = cfg.Log
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	s, err := style.ReadFile(cfg.Style)
	if err != nil {
		return nil, err
	}
	if cfg.Format != "" {
		s.Format = strings.ToLower(strings.TrimPrefix(cfg.Format, "."))
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	out, err := outdir.Create(cfg.Output, wd, time.Now())
	if err != nil {
		return nil, err
	}

	f := &Folder{
		Style: s,
		Out:   out,
		Log:   log.WithField("command", cfg.Command),
	}
	f.Log.WithField("output", out).Info("output folder")
	return f, nil
}

// Image returns the path of an image file
// in the output folder.
func (f *Folder) Image(name string) string {
	return filepath.Join(f.Out, name+"."+f.Style.Format)
}

// Size returns the size of a single chart.
func (f *Folder) Size() chart.Size {
	return chart.CM(f.Style.Width, f.Style.Height)
}

// Save saves a chart in the output folder.
func (f *Folder) Save(p *plot.Plot, name string) error {
	fn := f.Image(name)
	if err := chart.Save(p, f.Size(), fn); err != nil {
		return err
	}
	f.Log.WithField("file", fn).Debug("chart saved")
	return nil
}

// SaveGrid saves a grid of charts in the output folder.
func (f *Folder) SaveGrid(plots [][]*plot.Plot, name string) error {
	fn := f.Image(name)
	if err := chart.SaveGrid(plots, f.Size(), fn); err != nil {
		return err
	}
	f.Log.WithField("file", fn).Debug("chart saved")
	return nil
}

// WriteFile writes a data file in the output folder.
func (f *Folder) WriteFile(name string, write func(w io.Writer) error) (err error) {
	fn := filepath.Join(f.Out, name)
	w, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		e := w.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := write(w); err != nil {
		return fmt.Errorf("on file %q: %v", fn, err)
	}
	f.Log.WithField("file", fn).Debug("data saved")
	return nil
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"

	"github.com/stre3am/rmplot/info"
	"github.com/stre3am/rmplot/project"
)

type setPath struct {
	set  project.Dataset
	path string
}

func TestProject(t *testing.T) {
	p := project.New()

	sets := []setPath{
		{project.RetroLocCap, "drcp_d_act.xlsx"},
		{project.NewLocCap, "capacity.xlsx:new"},
		{project.Info, "lrn_info.csv"},
		{project.Online, "dyo.csv"},
		{project.Sites, "../plants.csv"},
	}

	for _, s := range sets {
		p.Add(s.set, s.path)
	}
	testProject(t, p, sets)

	name := filepath.Join(t.TempDir(), "project.tab")
	p.SetName(name)
	if err := p.Write(); err != nil {
		t.Fatalf("error when writing data: %v", err)
	}

	np, err := project.Read(name)
	if err != nil {
		t.Fatalf("error when reading data: %v", err)
	}
	testProject(t, np, sets)
}

func testProject(t testing.TB, p *project.Project, sets []setPath) {
	t.Helper()

	for _, s := range sets {
		if path := p.Path(s.set); path != s.path {
			t.Errorf("set %s: got path %q, want %q", s.set, path, s.path)
		}
	}
	datasets := make([]project.Dataset, 0, len(sets))
	for _, v := range sets {
		datasets = append(datasets, v.set)
	}
	slices.Sort(datasets)

	if ls := p.Sets(); !reflect.DeepEqual(ls, datasets) {
		t.Errorf("sets: got %v, want %v", ls, datasets)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	p, err := project.Open(dir, "")
	if err != nil {
		t.Fatalf("unable to open project: %v", err)
	}
	if got, want := p.Path(project.RetroLocCap), filepath.Join(dir, "drcp_d_act.csv"); got != want {
		t.Errorf("default path: got %q, want %q", got, want)
	}
	if got := p.Path(project.Sites); got != "" {
		t.Errorf("sites: got %q, want empty path", got)
	}

	abs := filepath.Join(dir, "other", "dyo.csv")
	o := project.New()
	o.Add(project.NewLocCap, "capacity.xlsx:new")
	o.Add(project.Online, abs)
	name := filepath.Join(dir, "override.tab")
	o.SetName(name)
	if err := o.Write(); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}

	p, err = project.Open(dir, name)
	if err != nil {
		t.Fatalf("unable to open project: %v", err)
	}
	tests := map[project.Dataset]string{
		project.NewLocCap: filepath.Join(dir, "capacity.xlsx:new"),
		project.Online:    abs,
		project.Info:      filepath.Join(dir, "lrn_info.csv"),
	}
	for set, want := range tests {
		if got := p.Path(set); got != want {
			t.Errorf("set %s: got path %q, want %q", set, got, want)
		}
	}

	bad := project.New()
	bad.Add("capacity", "x.csv")
	bad.SetName(filepath.Join(dir, "bad.tab"))
	if err := bad.Write(); err != nil {
		t.Fatalf("unable to write project: %v", err)
	}
	if _, err := project.Open(dir, filepath.Join(dir, "bad.tab")); err == nil {
		t.Errorf("unknown dataset: expecting error")
	}
}

func TestReaders(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"lrn_info.csv":     "n_loc,n_rtft,n_new,n_p,n_p2\n2,2,2,3,1\n",
		"s_info.csv":       "sf_em,sf_cap\n1,0.5\n",
		"dyo.csv":          "t,l_1,l_2\n1,1,1\n2,1,0\n3,0,0\n",
		"retro_labels.csv": "name\nExisting\nCCS\n",
		"new_filters.csv":  "k_1,k_2\n1,0\n1,1\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("unable to write %q: %v", name, err)
		}
	}

	p := project.Default(dir)

	run, err := p.Run()
	if err != nil {
		t.Fatalf("unable to read run: %v", err)
	}
	if want := (info.Run{Locations: 2, Retrofits: 2, News: 2, Periods: 3, Subperiods: 1}); run != want {
		t.Errorf("run: got %+v, want %+v", run, want)
	}

	sc, err := p.Scale()
	if err != nil {
		t.Fatalf("unable to read scale: %v", err)
	}
	if v, _ := sc.Factor(info.Capacity); v != 0.5 {
		t.Errorf("capacity factor: got %g, want %g", v, 0.5)
	}

	tab, err := p.Table(project.Online, true)
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	if tab.Rows() != 3 {
		t.Errorf("online rows: got %d, want %d", tab.Rows(), 3)
	}

	ls, err := p.Labels(project.RetroLabels)
	if err != nil {
		t.Fatalf("unable to read labels: %v", err)
	}
	if !reflect.DeepEqual(ls, []string{"Existing", "CCS"}) {
		t.Errorf("labels: got %v", ls)
	}

	flt, err := p.Filter(project.NewFilter)
	if err != nil {
		t.Fatalf("unable to read filter: %v", err)
	}
	if flt.On(0, 1) || !flt.On(1, 1) {
		t.Errorf("filter: wrong values")
	}

	// missing filter file enables all pairs
	flt, err = p.Filter(project.RetroFilter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flt.On(1, 1) {
		t.Errorf("missing filter: expecting all pairs enabled")
	}

	if s, err := p.Sites(2); s != nil || err != nil {
		t.Errorf("undefined sites: got %v, %v", s, err)
	}

	if _, err := p.Table(project.Demand, false); err == nil {
		t.Errorf("missing file: expecting error")
	}
}

func TestLocTables(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"dr_f_1.csv": "t,coal,dfo2,ng\n1,1,2,3\n2,4,5,6\n",
		"dr_f_2.csv": "t,coal,dfo2,ng\n1,0,0,1\n2,0,1,0\n",
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("unable to write %q: %v", name, err)
		}
	}

	p := project.Default(dir)
	if got, want := p.Path(project.RetroFuel), filepath.Join(dir, "dr_f_{loc}.csv"); got != want {
		t.Errorf("fuel path: got %q, want %q", got, want)
	}

	ts, err := p.LocTables(project.RetroFuel, 2, true)
	if err != nil {
		t.Fatalf("unable to read tables: %v", err)
	}
	if len(ts) != 2 {
		t.Fatalf("tables: got %d, want %d", len(ts), 2)
	}
	if v, _ := ts[1].Column("ng"); !reflect.DeepEqual(v, []float64{1, 0}) {
		t.Errorf("location 2: got %v, want %v", v, []float64{1, 0})
	}

	// missing files are reported as fs.ErrNotExist
	if _, err := p.LocTables(project.RetroFuel, 3, true); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing location: got %v, want %v", err, fs.ErrNotExist)
	}
	if _, err := p.Table(project.Electricity, false); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing table: got %v, want %v", err, fs.ErrNotExist)
	}

	p.Add(project.NewFuel, filepath.Join(dir, "dn_f.csv"))
	if _, err := p.LocTables(project.NewFuel, 2, true); err == nil {
		t.Errorf("path without placeholder: expecting error")
	}

	if got, want := project.LocPath("a/dr_f_{loc}.csv", 12), "a/dr_f_12.csv"; got != want {
		t.Errorf("location path: got %q, want %q", got, want)
	}
}

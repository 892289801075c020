// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package bars

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stre3am/rmplot/cmd/rmplot/folder"
	"github.com/stre3am/rmplot/project"
)

var resultFiles = map[string]string{
	"lrn_info.csv":     "n_loc,n_rtft,n_new,n_p\n2,2,2,2\n",
	"s_info.csv":       "sf_em,sf_cap,sf_heat,sf_elec\n1,1,2,1\n",
	"retro_labels.csv": "name\nExisting\nCCS\n",
	"new_labels.csv":   "name\nBase\nH2\n",
	"u.csv":            "u_r,u_n\n10,0\n8,4\n",
	"dr_f_1.csv":       "t,coal,dfo2,ng\n1,4,0,2\n2,2,0,2\n",
	"dr_f_2.csv":       "t,coal,dfo2,ng\n1,2,2,0\n2,0,2,0\n",
	"dn_f_1.csv":       "t,coal,dfo2,ng\n1,0,0,0\n2,0,0,4\n",
	"dn_f_2.csv":       "t,coal,dfo2,ng\n1,0,0,0\n2,0,0,2\n",
	"drcpe.csv":        "t,l_1,l_2\n1,10,5\n2,10,5\n",
	"drfue.csv":        "t,l_1,l_2\n1,2,1\n2,2,1\n",
	"drep1_.csv":       "t,l_1,l_2\n1,12,6\n2,4,2\n",
	"dncpe.csv":        "t,l_1,l_2\n1,0,0\n2,3,0\n",
	"dnfue.csv":        "t,l_1,l_2\n1,0,0\n2,1,0\n",
	"dnep1_.csv":       "t,l_1,l_2\n1,0,0\n2,1,0\n",
}

func openResults(t testing.TB) *results {
	t.Helper()

	dir := t.TempDir()
	for name, data := range resultFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("unable to write %q: %v", name, err)
		}
	}

	f, err := folder.Open(folder.Config{
		Command: "bars",
		Dir:     dir,
		Output:  filepath.Join(t.TempDir(), "plots"),
		Log:     io.Discard,
	})
	if err != nil {
		t.Fatalf("unable to open folder: %v", err)
	}
	sc, err := f.Project.Scale()
	if err != nil {
		t.Fatalf("unable to read scale: %v", err)
	}
	return &results{Folder: f, scale: sc}
}

func TestEnergyBars(t *testing.T) {
	r := openResults(t)

	retro, periods, err := r.fuelUse(project.RetroFuel, 2)
	if err != nil {
		t.Fatalf("unable to read fuel use: %v", err)
	}
	if len(periods) != 2 || periods[0] != "1" {
		t.Errorf("periods: got %v, want [1 2]", periods)
	}

	// fuel use is divided by the heat scale factor
	want := [][]float64{{3, 1}, {1, 1}, {1, 1}}
	for i := range want {
		for j := range want[i] {
			if retro[i][j] != want[i][j] {
				t.Errorf("fuel %d, period %d: got %g, want %g", i, j, retro[i][j], want[i][j])
			}
		}
	}

	if err := energyBars(r); err != nil {
		t.Fatalf("unable to draw energy use: %v", err)
	}
	if _, err := os.Stat(r.Image("energy_use")); err != nil {
		t.Errorf("energy use chart not written: %v", err)
	}
}

func TestCO2Bars(t *testing.T) {
	r := openResults(t)

	retro, fresh, err := r.plantsCO2()
	if err != nil {
		t.Fatalf("unable to read CO2: %v", err)
	}
	if got := retro.captured; got[0] != 0 || got[1] != 12 {
		t.Errorf("existing captured: got %v, want [0 12]", got)
	}
	if got := fresh.released; got[0] != 0 || got[1] != 1 {
		t.Errorf("new released: got %v, want [0 1]", got)
	}

	for name, draw := range map[string]func(*results) error{
		"co2_ccap":     capturedBars,
		"co2_emit_cap": releasedBars,
	} {
		if err := draw(r); err != nil {
			t.Errorf("%s: unable to draw: %v", name, err)
			continue
		}
		if _, err := os.Stat(r.Image(name)); err != nil {
			t.Errorf("%s: chart not written: %v", name, err)
		}
	}
}

func TestMissingChartFile(t *testing.T) {
	r := openResults(t)

	// no "dec_act.csv" in the result folder
	if err := expansionBars(r); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expansion: got %v, want %v", err, fs.ErrNotExist)
	}
}

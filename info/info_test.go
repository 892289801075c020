// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package info_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stre3am/rmplot/info"
)

func TestReadRun(t *testing.T) {
	data := "n_loc,n_rtft,n_new,n_p,n_p2\n10,3,3,4,2\n"
	r, err := info.ReadRun(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read run: %v", err)
	}

	want := info.Run{
		Locations:  10,
		Retrofits:  3,
		News:       3,
		Periods:    4,
		Subperiods: 2,
	}
	if r != want {
		t.Errorf("run: got %+v, want %+v", r, want)
	}
	if s := r.Slices(); s != 8 {
		t.Errorf("slices: got %d, want %d", s, 8)
	}
}

func TestReadRunDefaults(t *testing.T) {
	data := "N_LOC,n_rtft,n_new,n_p,extra\n2,1,2,5,x\n"
	r, err := info.ReadRun(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read run: %v", err)
	}
	if r.Subperiods != 1 {
		t.Errorf("subperiods: got %d, want %d", r.Subperiods, 1)
	}
	if r.Locations != 2 || r.News != 2 {
		t.Errorf("run: got %+v", r)
	}
}

func TestReadRunErrors(t *testing.T) {
	data := "n_loc,n_rtft,n_p\n10,3,4\n"
	if _, err := info.ReadRun(strings.NewReader(data)); !errors.Is(err, info.ErrMissingField) {
		t.Errorf("missing field: got error %v, want %v", err, info.ErrMissingField)
	}

	data = "n_loc,n_rtft,n_new,n_p\n10.5,3,3,4\n"
	if _, err := info.ReadRun(strings.NewReader(data)); err == nil {
		t.Errorf("fractional count: expecting error")
	}

	data = "n_loc,n_rtft,n_new,n_p\n"
	if _, err := info.ReadRun(strings.NewReader(data)); err == nil {
		t.Errorf("no data row: expecting error")
	}
}

func TestReadScale(t *testing.T) {
	data := "sf_em,sf_cap,sf_cash\n1e-6,0.001,0\n"
	s, err := info.ReadScale(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read scale: %v", err)
	}

	v, err := s.Factor(info.Capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0.001 {
		t.Errorf("capacity factor: got %g, want %g", v, 0.001)
	}
	if v, _ := s.Factor(info.Emission); v != 1e-6 {
		t.Errorf("emission factor: got %g, want %g", v, 1e-6)
	}

	if _, err := s.Factor(info.Heat); !errors.Is(err, info.ErrMissingField) {
		t.Errorf("heat factor: got error %v, want %v", err, info.ErrMissingField)
	}
	if _, err := s.Factor(info.Cash); err == nil {
		t.Errorf("zero factor: expecting error")
	}
}

func TestReadSites(t *testing.T) {
	data := `# plant positions
Location,X,Y
2,-95.37,29.76
1,-87.62,41.88
`
	s, err := info.ReadSites(strings.NewReader(data), 2)
	if err != nil {
		t.Fatalf("unable to read sites: %v", err)
	}
	want := []info.Site{
		{X: -87.62, Y: 41.88},
		{X: -95.37, Y: 29.76},
	}
	for i, w := range want {
		if s[i] != w {
			t.Errorf("site %d: got %v, want %v", i+1, s[i], w)
		}
	}
}

func TestReadSitesErrors(t *testing.T) {
	tests := map[string]string{
		"missing field": "location,x\n1,2\n",
		"out of range":  "location,x,y\n1,0,0\n3,0,0\n",
		"repeated":      "location,x,y\n1,0,0\n1,0,0\n",
		"undefined":     "location,x,y\n1,0,0\n",
		"bad value":     "location,x,y\n1,a,0\n2,0,0\n",
	}
	for name, data := range tests {
		if _, err := info.ReadSites(strings.NewReader(data), 2); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}

	_, err := info.ReadSites(strings.NewReader("location,x\n"), 1)
	if !errors.Is(err, info.ErrMissingField) {
		t.Errorf("missing field: got error %v, want %v", err, info.ErrMissingField)
	}
}

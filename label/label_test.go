// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package label_test

import (
	"errors"
	"testing"

	"github.com/stre3am/rmplot/label"
)

func TestParse(t *testing.T) {
	tests := map[string]label.Key{
		"k_1_l_1":   {Tech: 1, Loc: 1},
		"k_3_l_12":  {Tech: 3, Loc: 12},
		" k_2_l_7 ": {Tech: 2, Loc: 7},
	}
	for s, want := range tests {
		got, err := label.Parse(s)
		if err != nil {
			t.Errorf("label %q: unexpected error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("label %q: got %+v, want %+v", s, got, want)
		}
	}

	k := label.Key{Tech: 4, Loc: 9}
	if got, err := label.Parse(k.String()); err != nil || got != k {
		t.Errorf("key %+v: got %+v (err %v) after a string round", k, got, err)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"yr",
		"k_1_l",
		"k_0_l_1",
		"k_1_l_0",
		"k_a_l_1",
		"x_1_l_1",
		"k_1_x_1",
		"k_1_l_1_2",
		"l_1",
	}
	for _, s := range bad {
		_, err := label.Parse(s)
		if err == nil {
			t.Errorf("label %q: expecting error", s)
			continue
		}
		if !errors.Is(err, label.ErrSyntax) {
			t.Errorf("label %q: got error %v, want %v", s, err, label.ErrSyntax)
		}
	}
}

func TestParseLoc(t *testing.T) {
	l, err := label.ParseLoc("l_5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l != 5 {
		t.Errorf("location: got %d, want %d", l, 5)
	}
	if s := label.Loc(l); s != "l_5" {
		t.Errorf("label: got %q, want %q", s, "l_5")
	}

	for _, s := range []string{"l", "l_", "l_0", "k_1_l_1", "loc_1"} {
		if _, err := label.ParseLoc(s); !errors.Is(err, label.ErrSyntax) {
			t.Errorf("label %q: got error %v, want %v", s, err, label.ErrSyntax)
		}
	}
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package switches_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stre3am/rmplot/label"
	"github.com/stre3am/rmplot/switches"
	"github.com/stre3am/rmplot/table"
	"gonum.org/v1/gonum/mat"
)

func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	v := make([][]float64, r)
	for i := range v {
		v[i] = mat.Row(nil, i, m)
	}
	return v
}

func dense(v [][]float64) *mat.Dense {
	m := mat.NewDense(len(v), len(v[0]), nil)
	for i, r := range v {
		m.SetRow(i, r)
	}
	return m
}

func TestRetirement(t *testing.T) {
	tests := map[string]struct {
		in   []float64
		base float64
		want []float64
	}{
		"retired":       {[]float64{1, 1, 0, 0}, 0, []float64{0, 0, 1, 0}},
		"never retired": {[]float64{0, 0, 1, 1}, 0, []float64{0, 0, 0, 0}},
		"constant":      {[]float64{1, 1, 1, 1}, 0, []float64{0, 0, 0, 0}},
		"at baseline":   {[]float64{0, 0, 0, 0}, 1, []float64{1, 0, 0, 0}},
		"every drop":    {[]float64{1, 0.5, 0.5, 0}, 0, []float64{0, 1, 0, 1}},
		"partial":       {[]float64{0.5, 0.5, 0.2, 0.2}, 1, []float64{1, 0, 0, 0}},
		"drop at start": {[]float64{0, 1, 0, 0}, 1, []float64{1, 0, 0, 0}},
	}

	for name, test := range tests {
		m := dense([][]float64{test.in})
		got := rows(switches.Retirement(m, test.base))[0]
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestRetirementMonotonic(t *testing.T) {
	online := dense([][]float64{
		{1, 1, 1, 0, 0},
		{1, 0, 0, 0, 0},
		{1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1},
	})
	sw := switches.Retirement(online, 0)

	first := []int{3, 1, 4, -1}
	for l, f := range first {
		row := mat.Row(nil, l, sw)
		for p, v := range row {
			w := 0.0
			if p == f {
				w = 1
			}
			if v != w {
				t.Errorf("location %d, period %d: got %g, want %g", l, p, v, w)
			}
		}
	}

	n := switches.Count(sw)
	if want := []int{1, 1, 1, 0}; !reflect.DeepEqual(n, want) {
		t.Errorf("count: got %v, want %v", n, want)
	}
}

func TestExpansion(t *testing.T) {
	tests := map[string]struct {
		in   []float64
		base float64
		want []float64
	}{
		"expanded":     {[]float64{0, 0, 2, 2}, 0, []float64{0, 0, 1, 0}},
		"at start":     {[]float64{1, 1, 1, 1}, 0, []float64{1, 0, 0, 0}},
		"constant":     {[]float64{0, 0, 0, 0}, 0, []float64{0, 0, 0, 0}},
		"twice":        {[]float64{0, 1, 1, 3}, 0, []float64{0, 1, 0, 1}},
		"no tolerance": {[]float64{1, 1 + 1e-12, 1}, 1, []float64{0, 1, 0}},
		"grows later":  {[]float64{5, 5, 8, 8}, 0, []float64{1, 0, 0, 0}},
		"above base":   {[]float64{2, 3, 3, 4}, 1, []float64{1, 0, 0, 0}},
		"from base":    {[]float64{1, 3, 3, 4}, 1, []float64{0, 1, 0, 1}},
	}

	for name, test := range tests {
		m := dense([][]float64{test.in})
		got := rows(switches.Expansion(m, test.base))[0]
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestFirstPeriodMark(t *testing.T) {
	exp := dense([][]float64{
		{5, 5, 8, 8},
		{0, 5, 5, 8},
		{2, 1, 4, 4},
	})
	got := rows(switches.Expansion(exp, 0))
	want := [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 1},
		{1, 0, 0, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expansion: got %v, want %v", got, want)
	}

	online := dense([][]float64{
		{0.5, 0.5, 0.2, 0.2},
		{1, 0.5, 0.5, 0},
		{0, 1, 0, 1},
	})
	got = rows(switches.Retirement(online, 1))
	want = [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 1},
		{1, 0, 0, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("retirement: got %v, want %v", got, want)
	}
}

func TestFirstOnly(t *testing.T) {
	sw := dense([][]float64{
		{0, 1, 0, 1},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	})
	got := rows(switches.FirstOnly(sw))
	want := [][]float64{
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("first only: got %v, want %v", got, want)
	}
}

func TestMask(t *testing.T) {
	exp := dense([][]float64{
		{0, 2, 2, 2},
		{1, 1, 1, 1},
	})
	online := dense([][]float64{
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})

	m, err := switches.Mask(exp, online)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]float64{
		{0, 2, 0, 0},
		{0, 0, 1, 1},
	}
	if got := rows(m); !reflect.DeepEqual(got, want) {
		t.Errorf("mask: got %v, want %v", got, want)
	}

	sw := rows(switches.Expansion(m, 0))
	wantSw := [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
	if !reflect.DeepEqual(sw, wantSw) {
		t.Errorf("masked expansion: got %v, want %v", sw, wantSw)
	}

	if _, err := switches.Mask(exp, dense([][]float64{{1, 1, 1, 1}})); err == nil {
		t.Errorf("dimension mismatch: expecting error")
	}
}

func readTable(t testing.TB, data string) *table.Table {
	t.Helper()

	tab, err := table.ReadCSV(strings.NewReader(data), true)
	if err != nil {
		t.Fatalf("unable to read table: %v", err)
	}
	return tab
}

func TestIndicator(t *testing.T) {
	tab := readTable(t, "t,l_1,l_3\n1,1,0\n2,1,1\n3,0,1\n")

	m, err := switches.Indicator(tab, 3)
	if err != nil {
		t.Fatalf("unable to read indicator: %v", err)
	}
	want := [][]float64{
		{1, 1, 0},
		{0, 0, 0},
		{0, 1, 1},
	}
	if got := rows(m); !reflect.DeepEqual(got, want) {
		t.Errorf("indicator: got %v, want %v", got, want)
	}

	nt, err := switches.ToTable(m, "t", tab.Index())
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}
	if got := nt.Names(); !reflect.DeepEqual(got, []string{"l_1", "l_2", "l_3"}) {
		t.Errorf("table columns: got %v", got)
	}
	if v, _ := nt.Column("l_3"); !reflect.DeepEqual(v, []float64{0, 1, 1}) {
		t.Errorf("table column l_3: got %v, want %v", v, []float64{0, 1, 1})
	}
}

func TestIndicatorErrors(t *testing.T) {
	tab := readTable(t, "t,l_1,l_4\n1,1,0\n")
	if _, err := switches.Indicator(tab, 3); !errors.Is(err, switches.ErrOutOfRange) {
		t.Errorf("out of range: got error %v, want %v", err, switches.ErrOutOfRange)
	}

	tab = readTable(t, "t,l_1,total\n1,1,0\n")
	if _, err := switches.Indicator(tab, 3); !errors.Is(err, label.ErrSyntax) {
		t.Errorf("bad label: got error %v, want %v", err, label.ErrSyntax)
	}
}

func TestStackAndAssign(t *testing.T) {
	status := readTable(t, `t,k_1_l_1,k_2_l_1,k_1_l_2,k_2_l_2,k_3_l_2
1,1,0,1,0,0
2,0,1,0,1,0
3,0,1,0,0,1
`)
	online := dense([][]float64{
		{1, 1, 1},
		{1, 1, 1},
	})
	filter, err := table.ReadFilter(strings.NewReader("k_1,k_2,k_3\n1,1,1\n1,1,0\n"))
	if err != nil {
		t.Fatalf("unable to read filter: %v", err)
	}

	stack, err := switches.Stack(status, online, filter, 2, 3)
	if err != nil {
		t.Fatalf("unable to build stack: %v", err)
	}
	if len(stack) != 3 {
		t.Fatalf("stack: got %d technologies, want %d", len(stack), 3)
	}
	if got := rows(stack[2]); !reflect.DeepEqual(got, [][]float64{{0, 0, 0}, {0, 0, 0}}) {
		t.Errorf("filtered technology: got %v", got)
	}

	cats, err := switches.Assign(stack, false)
	if err != nil {
		t.Fatalf("unable to assign: %v", err)
	}
	want := [][]int{
		{0, 1, 1},
		{0, 1, switches.None},
	}
	testCategories(t, "all", cats, want)

	cats, err = switches.Assign(stack, true)
	if err != nil {
		t.Fatalf("unable to assign: %v", err)
	}
	want = [][]int{
		{0, 1, switches.None},
		{0, 1, switches.None},
	}
	testCategories(t, "first only", cats, want)
	if cats.Overlaps != 0 {
		t.Errorf("overlaps: got %d, want %d", cats.Overlaps, 0)
	}
}

func TestAssignOverlaps(t *testing.T) {
	stack := []*mat.Dense{
		dense([][]float64{{1, 1}}),
		dense([][]float64{{0, 1}}),
	}
	cats, err := switches.Assign(stack, false)
	if err != nil {
		t.Fatalf("unable to assign: %v", err)
	}
	if cats.Overlaps != 1 {
		t.Errorf("overlaps: got %d, want %d", cats.Overlaps, 1)
	}
	testCategories(t, "overlaps", cats, [][]int{{0, 1}})

	stack = append(stack, dense([][]float64{{0, 1, 1}}))
	if _, err := switches.Assign(stack, false); err == nil {
		t.Errorf("dimension mismatch: expecting error")
	}
}

func testCategories(t testing.TB, name string, c *switches.Categories, want [][]int) {
	t.Helper()

	r, p := c.Dims()
	if r != len(want) || p != len(want[0]) {
		t.Fatalf("%s: dims: got (%d, %d), want (%d, %d)", name, r, p, len(want), len(want[0]))
	}
	for l, ps := range want {
		for t0, w := range ps {
			if g := c.At(l, t0); g != w {
				t.Errorf("%s: cell [%d, %d]: got %d, want %d", name, l, t0, g, w)
			}
		}
	}
}

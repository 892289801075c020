// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package label implements the column keys
// used by the roadmap model result tables.
//
// A result table stores one column per technology and location pair,
// using a label in the form "k_<tech>_l_<loc>",
// or one column per location,
// using a label in the form "l_<loc>".
// Indices in the labels are 1-based.
package label

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned when a label
// does not follow the column key convention.
var ErrSyntax = errors.New("invalid column label")

// Key is a technology and location pair
// as encoded in a column label.
// Both indices are 1-based.
type Key struct {
	Tech int
	Loc  int
}

// String returns the column label of the key.
func (k Key) String() string {
	return fmt.Sprintf("k_%d_l_%d", k.Tech, k.Loc)
}

// Parse parses a column label in the form "k_<tech>_l_<loc>".
func Parse(s string) (Key, error) {
	f := strings.Split(strings.TrimSpace(s), "_")
	if len(f) != 4 || f[0] != "k" || f[2] != "l" {
		return Key{}, fmt.Errorf("%w: %q: expecting k_<tech>_l_<loc>", ErrSyntax, s)
	}

	k, err := index(f[1])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: technology: %v", ErrSyntax, s, err)
	}
	l, err := index(f[3])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: location: %v", ErrSyntax, s, err)
	}
	return Key{Tech: k, Loc: l}, nil
}

// Loc returns the column label of a location.
func Loc(l int) string {
	return fmt.Sprintf("l_%d", l)
}

// ParseLoc parses a column label in the form "l_<loc>"
// and returns the location index.
func ParseLoc(s string) (int, error) {
	f := strings.Split(strings.TrimSpace(s), "_")
	if len(f) != 2 || f[0] != "l" {
		return 0, fmt.Errorf("%w: %q: expecting l_<loc>", ErrSyntax, s)
	}
	l, err := index(f[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: location: %v", ErrSyntax, s, err)
	}
	return l, nil
}

func index(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("index %d: must be positive", v)
	}
	return v, nil
}

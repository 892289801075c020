// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/js-arias/blind"
)

// Gradienter is an interface for types
// that return a color gradient.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Gradient returns a gradient by its name.
func Gradient(name string) (Gradienter, error) {
	switch strings.ToLower(name) {
	case "", "iridescent":
		return Iridescent{}, nil
	case "incandescent":
		return Incandescent{}, nil
	case "rainbow":
		return RainbowPurpleToRed{}, nil
	case "gray":
		return GrayScale{}, nil
	}
	return nil, fmt.Errorf("unknown gradient %q", name)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// GrayScale returns a gray scale
// between 230 (light gray)
// and 0 (black).
type GrayScale struct{}

func (g GrayScale) Gradient(v float64) color.Color {
	c := 230 - uint8(clamp(v)*230)
	return color.RGBA{c, c, c, 255}
}

// Incandescent is the incandescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_incandescent>.
type Incandescent struct{}

func (i Incandescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Incandescent, clamp(v))
}

// Iridescent is the iridescent color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_iridescent>.
type Iridescent struct{}

func (i Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp(v))
}

// RainbowPurpleToRed is the rainbow color scheme
// of Paul Tol
// <https://personal.sron.nl/~pault/#fig:scheme_rainbow_smooth>
// starting at purple and ending at red.
type RainbowPurpleToRed struct{}

func (r RainbowPurpleToRed) Gradient(v float64) color.Color {
	return blind.Sequential(blind.RainbowPurpleToRed, clamp(v))
}

// Palette is a palette of a gradient
// sampled at a given number of colors.
// It implements the palette.Palette interface.
type Palette struct {
	G Gradienter
	N int
}

// Colors implements the palette.Palette interface.
func (p Palette) Colors() []color.Color {
	n := p.N
	if n < 2 {
		n = 2
	}
	cs := make([]color.Color, n)
	for i := range cs {
		cs[i] = p.G.Gradient(float64(i) / float64(n-1))
	}
	return cs
}

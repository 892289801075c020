// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package style implements the chart style
// used to render the results of a roadmap model run.
//
// A style is read from a TOML file.
// Any field that is not defined in the file
// keeps its default value.
package style

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Formats are the valid image formats.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Style is a chart style.
type Style struct {
	// Image format
	Format string `toml:"format"`

	// Size of a single chart, in centimeters
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Colors of the retrofit technologies
	// (the first is the base technology)
	Retro []string `toml:"retro_colors"`

	// Colors of the new plant technologies
	New []string `toml:"new_colors"`

	// Color of cells without an active technology
	Empty string `toml:"empty_color"`

	// Colors of the switch maps
	Online     string `toml:"online_color"`
	Retirement string `toml:"retirement_color"`
	Expansion  string `toml:"expansion_color"`

	// Color of the demand line
	Demand string `toml:"demand_color"`

	// Color gradient for capacity heat maps
	Gradient string `toml:"gradient"`

	// Number of rows in a grid of pie charts
	PieRows int `toml:"pie_rows"`

	// Radius of the largest pie,
	// in units of the map
	PieScale float64 `toml:"pie_scale"`

	// Values smaller than epsilon are set to zero
	Epsilon float64 `toml:"epsilon"`
}

// Default returns the default style.
func Default() Style {
	return Style{
		Format: "png",
		Width:  16,
		Height: 12,
		Retro: []string{
			"#e7b24b",
			"#cec44b",
			"#b0d54b",
			"#daefb3",
			"#68c5db",
			"#6adc75",
			"#68b7a7",
			"#6890ca",
			"#6a5ee6",
		},
		New: []string{
			"#ffffff",
			"#e7b24b",
			"#ffebee",
			"#daefb3",
			"#68c5db",
			"#6adc75",
			"#68b7a7",
			"#6890ca",
			"#6a5ee6",
		},
		Empty:      "#ffffff",
		Online:     "#08519c",
		Retirement: "#7f2704",
		Expansion:  "#67000d",
		Demand:     "#0000ff",
		Gradient:   "iridescent",
		PieRows:    4,
		PieScale:   5,
		Epsilon:    1e-8,
	}
}

// Read reads a style from a TOML file.
func Read(r io.Reader) (Style, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		return Style{}, fmt.Errorf("unknown field %q", und[0].String())
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// ReadFile reads a style from a file.
// If name is empty,
// it returns the default style.
func ReadFile(name string) (Style, error) {
	if name == "" {
		return Default(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return Style{}, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return Style{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// Validate returns an error
// if a field of the style is invalid.
func (s Style) Validate() error {
	if !validFormat(s.Format) {
		return fmt.Errorf("field %q: unknown image format %q", "format", s.Format)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid chart size %gx%g", s.Width, s.Height)
	}
	if len(s.Retro) == 0 {
		return fmt.Errorf("field %q: empty color list", "retro_colors")
	}
	if len(s.New) == 0 {
		return fmt.Errorf("field %q: empty color list", "new_colors")
	}

	cs := map[string][]string{
		"retro_colors":     s.Retro,
		"new_colors":       s.New,
		"empty_color":      {s.Empty},
		"online_color":     {s.Online},
		"retirement_color": {s.Retirement},
		"expansion_color":  {s.Expansion},
		"demand_color":     {s.Demand},
	}
	for f, ls := range cs {
		for _, h := range ls {
			if _, err := ParseColor(h); err != nil {
				return fmt.Errorf("field %q: %v", f, err)
			}
		}
	}

	if s.PieRows < 1 {
		return fmt.Errorf("field %q: invalid value %d", "pie_rows", s.PieRows)
	}
	if s.PieScale <= 0 {
		return fmt.Errorf("field %q: invalid value %g", "pie_scale", s.PieScale)
	}
	if s.Epsilon < 0 {
		return fmt.Errorf("field %q: invalid value %g", "epsilon", s.Epsilon)
	}
	return nil
}

func validFormat(f string) bool {
	f = strings.ToLower(f)
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

// RetroColor returns the color of a retrofit technology
// (0-based).
// Colors are reused
// if there are more technologies than colors.
func (s Style) RetroColor(k int) color.Color {
	return pick(s.Retro, k)
}

// NewColor returns the color of a new plant technology
// (0-based).
// Colors are reused
// if there are more technologies than colors.
func (s Style) NewColor(k int) color.Color {
	return pick(s.New, k)
}

// Color returns a color in hexadecimal notation,
// or black if the color is invalid.
func (s Style) Color(hex string) color.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return color.Black
	}
	return c
}

func pick(ls []string, k int) color.Color {
	if len(ls) == 0 || k < 0 {
		return color.Black
	}
	c, err := ParseColor(ls[k%len(ls)])
	if err != nil {
		return color.Black
	}
	return c
}

// ParseColor parses a color
// in hexadecimal notation ("#rrggbb" or "#rgb").
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

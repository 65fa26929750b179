// seehuhn.de/go/polyview - a filled polygon chart widget
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyview

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Vertex selects how consecutive data points are joined.
type Vertex int

const (
	// Sharp joins data points with straight lines.
	Sharp Vertex = iota

	// Curved smooths the outline with quadratic curves through the
	// midpoints between neighbouring data points.
	Curved
)

func (v Vertex) String() string {
	switch v {
	case Sharp:
		return "sharp"
	case Curved:
		return "curved"
	default:
		return fmt.Sprintf("Vertex(%d)", int(v))
	}
}

// ParseVertex parses "sharp", "curved" or the numeric values 0 and 1.
func ParseVertex(s string) (Vertex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp", "0":
		return Sharp, nil
	case "curved", "1":
		return Curved, nil
	}
	return 0, fmt.Errorf("invalid vertex type %q", s)
}

// Range is an interval of the x-axis in data space.
type Range struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Config holds the style of a View.
type Config struct {
	Color                color.NRGBA
	StrokeColor          color.NRGBA
	StrokeWidth          float64
	HighlightColor       color.NRGBA
	HighlightStrokeColor color.NRGBA
	HighlightStrokeWidth float64
	VertexType           Vertex
}

var (
	black     = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	blue      = color.NRGBA{0x00, 0x00, 0xFF, 0xFF}
	lightGray = color.NRGBA{0xCC, 0xCC, 0xCC, 0xFF}
)

// DefaultConfig returns the style used when no attributes are given:
// a light gray fill without outline, and a blue highlight without
// outline.
func DefaultConfig() Config {
	return Config{
		Color:                lightGray,
		StrokeColor:          black,
		HighlightColor:       blue,
		HighlightStrokeColor: blue,
		VertexType:           Sharp,
	}
}

// Attribute names understood by [Config.WithAttributes].
const (
	AttrColor                = "color"
	AttrStrokeColor          = "strokeColor"
	AttrStrokeWidth          = "strokeWidth"
	AttrHighlightColor       = "highlightColor"
	AttrHighlightStrokeColor = "highlightStrokeColor"
	AttrHighlightStrokeWidth = "highlightStrokeWidth"
	AttrVertexType           = "vertexType"
)

// ParseAttributes returns the default configuration, modified by attrs.
func ParseAttributes(attrs map[string]string) (Config, error) {
	return DefaultConfig().WithAttributes(attrs)
}

// WithAttributes returns a copy of c with the given declarative
// attributes applied.  Keys are processed in sorted order and the first
// invalid entry is reported.
func (c Config) WithAttributes(attrs map[string]string) (Config, error) {
	for _, key := range slices.Sorted(maps.Keys(attrs)) {
		val := attrs[key]
		var err error
		switch key {
		case AttrColor:
			c.Color, err = ParseColor(val)
		case AttrStrokeColor:
			c.StrokeColor, err = ParseColor(val)
		case AttrStrokeWidth:
			c.StrokeWidth, err = ParseDimension(val)
		case AttrHighlightColor:
			c.HighlightColor, err = ParseColor(val)
		case AttrHighlightStrokeColor:
			c.HighlightStrokeColor, err = ParseColor(val)
		case AttrHighlightStrokeWidth:
			c.HighlightStrokeWidth, err = ParseDimension(val)
		case AttrVertexType:
			c.VertexType, err = ParseVertex(val)
		default:
			err = errUnknownAttribute
		}
		if err != nil {
			return Config{}, fmt.Errorf("attribute %q: %w", key, err)
		}
	}
	return c, nil
}

// Attributes returns the attribute form of c.  Feeding the result to
// [ParseAttributes] gives back c.
func (c Config) Attributes() map[string]string {
	return map[string]string{
		AttrColor:                FormatColor(c.Color),
		AttrStrokeColor:          FormatColor(c.StrokeColor),
		AttrStrokeWidth:          strconv.FormatFloat(c.StrokeWidth, 'g', -1, 64),
		AttrHighlightColor:       FormatColor(c.HighlightColor),
		AttrHighlightStrokeColor: FormatColor(c.HighlightStrokeColor),
		AttrHighlightStrokeWidth: strconv.FormatFloat(c.HighlightStrokeWidth, 'g', -1, 64),
		AttrVertexType:           c.VertexType.String(),
	}
}

var errUnknownAttribute = errors.New("unknown attribute")

var namedColors = map[string]color.NRGBA{
	"black":       black,
	"white":       {0xFF, 0xFF, 0xFF, 0xFF},
	"gray":        {0x88, 0x88, 0x88, 0xFF},
	"grey":        {0x88, 0x88, 0x88, 0xFF},
	"lightgray":   lightGray,
	"lightgrey":   lightGray,
	"ltgray":      lightGray,
	"darkgray":    {0x44, 0x44, 0x44, 0xFF},
	"darkgrey":    {0x44, 0x44, 0x44, 0xFF},
	"dkgray":      {0x44, 0x44, 0x44, 0xFF},
	"red":         {0xFF, 0x00, 0x00, 0xFF},
	"green":       {0x00, 0xFF, 0x00, 0xFF},
	"blue":        blue,
	"yellow":      {0xFF, 0xFF, 0x00, 0xFF},
	"cyan":        {0x00, 0xFF, 0xFF, 0xFF},
	"magenta":     {0xFF, 0x00, 0xFF, 0xFF},
	"transparent": {},
}

// ParseColor parses a colour given as #RGB, #RRGGBB, #AARRGGBB or as one
// of the names black, white, gray, lightgray, darkgray, red, green, blue,
// yellow, cyan, magenta and transparent.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	switch len(hex) {
	case 3:
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return color.NRGBA{r * 0x11, g * 0x11, b * 0x11, 0xFF}, nil
	case 6:
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
	case 8:
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
}

// FormatColor returns c as #RRGGBB, or as #AARRGGBB if c is not opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

// ParseDimension parses a non-negative length in pixels.  An optional
// "px" suffix is accepted.
func ParseDimension(s string) (float64, error) {
	num := strings.TrimSuffix(strings.TrimSpace(s), "px")
	x, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	if x < 0 {
		return 0, fmt.Errorf("negative dimension %q", s)
	}
	return x, nil
}

// toNRGBA converts any colour to non-premultiplied RGBA.
func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

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
	"image/color"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Color != (color.NRGBA{0xCC, 0xCC, 0xCC, 0xFF}) {
		t.Errorf("fill colour %v", cfg.Color)
	}
	if cfg.StrokeColor != (color.NRGBA{0, 0, 0, 0xFF}) || cfg.StrokeWidth != 0 {
		t.Errorf("stroke %v, width %g", cfg.StrokeColor, cfg.StrokeWidth)
	}
	if cfg.HighlightColor != (color.NRGBA{0, 0, 0xFF, 0xFF}) ||
		cfg.HighlightStrokeColor != (color.NRGBA{0, 0, 0xFF, 0xFF}) ||
		cfg.HighlightStrokeWidth != 0 {
		t.Errorf("highlight %v, %v, %g", cfg.HighlightColor, cfg.HighlightStrokeColor, cfg.HighlightStrokeWidth)
	}
	if cfg.VertexType != Sharp {
		t.Errorf("vertex type %v", cfg.VertexType)
	}
}

func TestParseAttributes(t *testing.T) {
	cfg, err := ParseAttributes(map[string]string{
		"color":                "#336699",
		"strokeColor":          "red",
		"strokeWidth":          "2.5px",
		"highlightColor":       "#8000ff00",
		"highlightStrokeColor": "#fff",
		"highlightStrokeWidth": "1",
		"vertexType":           "curved",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Color:                color.NRGBA{0x33, 0x66, 0x99, 0xFF},
		StrokeColor:          color.NRGBA{0xFF, 0, 0, 0xFF},
		StrokeWidth:          2.5,
		HighlightColor:       color.NRGBA{0, 0xFF, 0, 0x80},
		HighlightStrokeColor: color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF},
		HighlightStrokeWidth: 1,
		VertexType:           Curved,
	}
	if cfg != want {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}

	back, err := ParseAttributes(cfg.Attributes())
	if err != nil {
		t.Fatal(err)
	}
	if back != cfg {
		t.Errorf("Attributes round trip: got %+v", back)
	}
}

func TestParseAttributesErrors(t *testing.T) {
	cases := []struct {
		attrs map[string]string
		key   string
	}{
		{map[string]string{"color": "#12345"}, "color"},
		{map[string]string{"strokeWidth": "-1"}, "strokeWidth"},
		{map[string]string{"highlightStrokeWidth": "wide"}, "highlightStrokeWidth"},
		{map[string]string{"vertexType": "round"}, "vertexType"},
		{map[string]string{"colour": "red"}, "colour"},
		// keys are checked in sorted order
		{map[string]string{"vertexType": "x", "color": "nope"}, "color"},
	}
	for _, tc := range cases {
		_, err := ParseAttributes(tc.attrs)
		if err == nil {
			t.Errorf("%v: no error", tc.attrs)
			continue
		}
		if !strings.Contains(err.Error(), `"`+tc.key+`"`) {
			t.Errorf("%v: error %q does not name %q", tc.attrs, err, tc.key)
		}
	}

	_, err := ParseAttributes(map[string]string{"size": "1"})
	if !errors.Is(err, errUnknownAttribute) {
		t.Errorf("unknown attribute: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#000":        {0, 0, 0, 0xFF},
		"#a1b2c3":     {0xA1, 0xB2, 0xC3, 0xFF},
		"#00FFFFFF":   {0xFF, 0xFF, 0xFF, 0},
		"LTGRAY":      {0xCC, 0xCC, 0xCC, 0xFF},
		" darkgray ":  {0x44, 0x44, 0x44, 0xFF},
		"transparent": {},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "#", "#ggg", "336699", "#1234567", "purple-ish"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if s := FormatColor(color.NRGBA{0x12, 0x34, 0x56, 0xFF}); s != "#123456" {
		t.Errorf("opaque: %s", s)
	}
	if s := FormatColor(color.NRGBA{0x12, 0x34, 0x56, 0x78}); s != "#78123456" {
		t.Errorf("translucent: %s", s)
	}
}

func TestParseDimension(t *testing.T) {
	for in, want := range map[string]float64{"0": 0, "3": 3, "1.5px": 1.5, " 2 px": 2} {
		got, err := ParseDimension(in)
		if err != nil || got != want {
			t.Errorf("%q: got %g, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "px", "-2", "NaN", "Inf", "3em"} {
		if _, err := ParseDimension(in); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
}

func TestParseVertex(t *testing.T) {
	for in, want := range map[string]Vertex{"sharp": Sharp, "CURVED": Curved, "0": Sharp, "1": Curved} {
		got, err := ParseVertex(in)
		if err != nil || got != want {
			t.Errorf("%q: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseVertex("2"); err == nil {
		t.Error("ParseVertex(2) succeeded")
	}
	if s := Vertex(7).String(); s != "Vertex(7)" {
		t.Errorf("String = %q", s)
	}
}

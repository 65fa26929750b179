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

// Package testcases holds reference charts together with their expected
// screen geometry.  The charts are shared by the unit tests and by the
// tools generating reference output.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/chartfile"
)

// TestCase is a single reference chart.
type TestCase struct {
	Name  string          // lowercase a-z and _ only
	Chart chartfile.Chart // the chart to draw

	// Points are the expected screen points.  A nil slice means that the
	// chart has no geometry.
	Points []vec.Vec2

	// Highlight reports whether a highlight shape is expected.
	Highlight bool
}

// NewView returns a View showing the chart, using the default style for
// all attributes the chart does not set.
func (tc *TestCase) NewView() (*polyview.View, error) {
	if err := tc.Chart.Validate(); err != nil {
		return nil, err
	}
	return tc.Chart.NewView(polyview.DefaultConfig())
}

// pts builds a list of points from alternating x and y coordinates.
func pts(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, vec.Vec2{X: xy[i], Y: xy[i+1]})
	}
	return res
}

// chart builds a chart literal.
func chart(sz chartfile.Size, r *polyview.Range, style map[string]string, data [][]float64) chartfile.Chart {
	return chartfile.Chart{Size: sz, Range: r, Style: style, Data: data}
}

// rng returns a pointer to a range, for use in chart literals.
func rng(start, end float64) *polyview.Range {
	return &polyview.Range{Start: start, End: end}
}

// size returns a chart size.
func size(w, h int) chartfile.Size {
	return chartfile.Size{Width: w, Height: h}
}

// noStroke is the style of a chart without outline.
var noStroke = map[string]string{polyview.AttrStrokeWidth: "0"}

// withStyle returns a copy of base with the given key-value pairs added.
func withStyle(base map[string]string, kv ...string) map[string]string {
	res := make(map[string]string, len(base)+len(kv)/2)
	for k, v := range base {
		res[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		res[kv[i]] = kv[i+1]
	}
	return res
}

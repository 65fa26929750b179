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

// Command export writes the chart test cases, together with the geometry
// derived from them, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyview/internal/pathfmt"
	"seehuhn.de/go/polyview/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				log.Fatal("invalid test case", "name", category+"_"+tc.Name, "error", err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		log.Fatal("cannot create output directory", "error", err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		log.Fatal("cannot create output file", "error", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal("cannot write output", "error", err)
	}
}

type jsonTestCase struct {
	Name      string            `json:"name"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Start     float64           `json:"start"`
	End       float64           `json:"end"`
	Highlight []float64         `json:"highlight,omitempty"`
	Style     map[string]string `json:"style,omitempty"`
	Data      [][]float64       `json:"data"`
	Points    [][]float64       `json:"points"`
	Outline   []pathfmt.Segment `json:"outline,omitempty"`
	Band      []pathfmt.Segment `json:"highlight_path,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	v, err := tc.NewView()
	if err != nil {
		return jsonTestCase{}, err
	}
	r, _ := v.Range()

	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		Width:   tc.Chart.Size.Width,
		Height:  tc.Chart.Size.Height,
		Start:   r.Start,
		End:     r.End,
		Style:   tc.Chart.Style,
		Data:    tc.Chart.Data,
		Points:  points(v.ScreenPoints()),
		Outline: pathfmt.Segments(v.Outline()),
		Band:    pathfmt.Segments(v.Highlight()),
	}
	if hl, ok := v.HighlightRange(); ok {
		jtc.Highlight = []float64{hl.Start, hl.End}
	}
	return jtc, nil
}

func points(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}

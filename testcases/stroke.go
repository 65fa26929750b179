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

package testcases

import "seehuhn.de/go/polyview"

var strokeCases = []TestCase{
	{
		// the outline is inset by the stroke width
		Name: "thick",
		Chart: chart(size(104, 104), rng(0, 4),
			map[string]string{polyview.AttrStrokeWidth: "4"},
			[][]float64{{0, 0}, {2, 4}, {4, 8}}),
		Points: pts(2, 102, 52, 52, 102, 2),
	},
	{
		Name: "hairline",
		Chart: chart(size(101, 51), rng(0, 1),
			map[string]string{polyview.AttrStrokeWidth: "1px"},
			[][]float64{{0, 0}, {1, 1}}),
		Points: pts(0.5, 50.5, 100.5, 0.5),
	},
	{
		Name: "highlight_stroke",
		Chart: withHighlight(chart(size(104, 104), rng(0, 4),
			map[string]string{
				polyview.AttrStrokeWidth:          "4",
				polyview.AttrHighlightStrokeWidth: "2",
				polyview.AttrHighlightStrokeColor: "red",
			},
			[][]float64{{0, 0}, {2, 4}, {4, 8}}), 1, 3),
		Points:    pts(2, 102, 52, 52, 102, 2),
		Highlight: true,
	},
}

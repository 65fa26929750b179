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

var degenerateCases = []TestCase{
	{
		Name:  "single_point",
		Chart: chart(size(50, 50), rng(0, 2), noStroke, [][]float64{{1, 1}}),
	},
	{
		Name:  "empty_range",
		Chart: chart(size(50, 50), rng(1, 1), noStroke, example),
	},
	{
		Name:  "nothing_visible",
		Chart: chart(size(50, 50), rng(5, 6), noStroke, example),
	},
	{
		// the stroke inset leaves no room for the chart
		Name: "stroke_fills_widget",
		Chart: chart(size(4, 4), rng(0, 3),
			map[string]string{polyview.AttrStrokeWidth: "4"}, example),
	},
}

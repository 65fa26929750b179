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

var curved = withStyle(noStroke, polyview.AttrVertexType, "curved")

var curvedCases = []TestCase{
	{
		Name: "zigzag",
		Chart: chart(size(120, 80), rng(0, 4), curved,
			[][]float64{{0, 0}, {1, 4}, {2, 2}, {3, 8}, {4, 6}}),
		Points: pts(0, 80, 30, 40, 60, 60, 90, 0, 120, 20),
	},
	{
		Name: "two_points",
		Chart: chart(size(60, 30), rng(0, 1), curved,
			[][]float64{{0, 1}, {1, 3}}),
		Points: pts(0, 20, 60, 0),
	},
	{
		Name: "stroked",
		Chart: chart(size(104, 54), rng(0, 2),
			withStyle(curved, polyview.AttrStrokeWidth, "4"),
			[][]float64{{0, 2}, {1, 5}, {2, 1}}),
		Points: pts(2, 32, 52, 2, 102, 42),
	},
}

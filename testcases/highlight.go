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

import "seehuhn.de/go/polyview/chartfile"

var example = [][]float64{{0, 0}, {1, 5}, {2, 3}, {3, 8}}

var examplePoints = pts(0, 100, 100./3, 37.5, 200./3, 62.5, 100, 0)

var highlightCases = []TestCase{
	{
		Name:      "inside",
		Chart:     withHighlight(chart(size(100, 100), rng(0, 3), noStroke, example), 1, 2),
		Points:    examplePoints,
		Highlight: true,
	},
	{
		Name:      "reversed",
		Chart:     withHighlight(chart(size(100, 100), rng(0, 3), noStroke, example), 2, 1),
		Points:    examplePoints,
		Highlight: true,
	},
	{
		Name:      "covers_all",
		Chart:     withHighlight(chart(size(100, 100), rng(0, 3), noStroke, example), -1, 4),
		Points:    examplePoints,
		Highlight: true,
	},
	{
		Name:   "outside",
		Chart:  withHighlight(chart(size(100, 100), rng(0, 3), noStroke, example), 10, 20),
		Points: examplePoints,
	},
	{
		Name:   "zero_width",
		Chart:  withHighlight(chart(size(100, 100), rng(0, 3), noStroke, example), 1, 1),
		Points: examplePoints,
	},
}

func withHighlight(c chartfile.Chart, start, end float64) chartfile.Chart {
	c.Highlight = rng(start, end)
	return c
}

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

var sharpCases = []TestCase{
	{
		Name: "zigzag",
		Chart: chart(size(120, 80), rng(0, 4), noStroke,
			[][]float64{{0, 0}, {1, 4}, {2, 2}, {3, 8}, {4, 6}}),
		Points: pts(0, 80, 30, 40, 60, 60, 90, 0, 120, 20),
	},
	{
		// points outside the range are dropped, the rest is sorted by x,
		// and the scale uses the largest y of all data
		Name: "unsorted_filtered",
		Chart: chart(size(90, 100), rng(0, 3), noStroke,
			[][]float64{{3, 8}, {-1, 2}, {1, 5}, {0, 0}, {2, 3}, {5, 10}}),
		Points: pts(0, 100, 30, 50, 60, 70, 90, 20),
	},
	{
		Name: "all_zero",
		Chart: chart(size(40, 20), rng(0, 2), noStroke,
			[][]float64{{0, 0}, {1, 0}, {2, 0}}),
		Points: pts(0, 20, 20, 20, 40, 20),
	},
	{
		// the range extends past the data on both sides
		Name: "wide_range",
		Chart: chart(size(100, 50), rng(-1, 3), noStroke,
			[][]float64{{0, 1}, {2, 2}}),
		Points: pts(25, 25, 75, 0),
	},
}

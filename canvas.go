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
	"image/color"

	"seehuhn.de/go/geom/path"
)

// Canvas is a 2D drawing surface a View can draw onto.
// Coordinates are in pixels, with the y-axis pointing down.
type Canvas interface {
	// Fill paints the interior of p, using the nonzero winding rule.
	Fill(p *path.Data, c color.Color)

	// Stroke paints the outline of p with a line of the given width.
	Stroke(p *path.Data, width float64, c color.Color)
}

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

// Package clip intersects polygons with axis-aligned rectangles.
//
// The clipping uses the Sutherland–Hodgman algorithm: the polygon is cut
// successively against the four half-planes bounding the rectangle.  Since
// the rectangle is convex, the result is exact for any simple polygon.
// Concave input can produce zero-width bridges along the rectangle
// boundary; these carry no area.
package clip

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// dupThreshold is the distance below which consecutive vertices are merged.
const dupThreshold = 1e-9

// Rect returns the intersection of the closed polygon poly with r.
// The result is nil if the intersection has fewer than three vertices.
func Rect(poly []vec.Vec2, r rect.Rect) []vec.Vec2 {
	if len(poly) < 3 {
		return nil
	}

	var a, b []vec.Vec2
	a = append(a, poly...)

	b = halfPlane(b, a, func(v vec.Vec2) float64 { return v.X - r.LLx })
	a = halfPlane(a, b, func(v vec.Vec2) float64 { return r.URx - v.X })
	b = halfPlane(b, a, func(v vec.Vec2) float64 { return v.Y - r.LLy })
	a = halfPlane(a, b, func(v vec.Vec2) float64 { return r.URy - v.Y })

	a = compact(a)
	if len(a) < 3 {
		return nil
	}
	return a
}

// halfPlane clips the closed polygon in against the half-plane dist(v) >= 0
// and writes the result to out, reusing its storage.
// The dist function must be affine in v.
func halfPlane(out, in []vec.Vec2, dist func(vec.Vec2) float64) []vec.Vec2 {
	out = out[:0]
	if len(in) == 0 {
		return out
	}

	prev := in[len(in)-1]
	dPrev := dist(prev)
	for _, cur := range in {
		dCur := dist(cur)
		switch {
		case dCur >= 0 && dPrev >= 0:
			out = append(out, cur)
		case dCur >= 0:
			out = append(out, crossing(prev, cur, dPrev, dCur), cur)
		case dPrev >= 0:
			out = append(out, crossing(prev, cur, dPrev, dCur))
		}
		prev, dPrev = cur, dCur
	}
	return out
}

// crossing returns the point on segment a-b where dist becomes zero.
// The distances da and db must have different signs.
func crossing(a, b vec.Vec2, da, db float64) vec.Vec2 {
	t := da / (da - db)
	return a.Add(b.Sub(a).Mul(t))
}

// compact removes repeated vertices, including a last vertex which
// repeats the first one.
func compact(poly []vec.Vec2) []vec.Vec2 {
	if len(poly) == 0 {
		return poly
	}
	out := poly[:1]
	for _, v := range poly[1:] {
		if v.Sub(out[len(out)-1]).Length() > dupThreshold {
			out = append(out, v)
		}
	}
	for len(out) > 1 && out[len(out)-1].Sub(out[0]).Length() <= dupThreshold {
		out = out[:len(out)-1]
	}
	return out
}

// Area returns the signed area of the closed polygon poly.  The sign is
// positive for counter-clockwise vertex order in a y-up coordinate system.
func Area(poly []vec.Vec2) float64 {
	var sum float64
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Empty reports whether a clipped polygon encloses no area.
func Empty(poly []vec.Vec2) bool {
	return len(poly) < 3 || math.Abs(Area(poly)) <= areaThreshold
}

// areaThreshold is the smallest area, in square device units, which is
// treated as a non-empty region.
const areaThreshold = 1e-9

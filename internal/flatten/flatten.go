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

// Package flatten converts paths with curve segments into polylines.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Polyline is one flattened subpath.
type Polyline struct {
	Points []vec.Vec2
	Closed bool
}

// Linear maps a user-space vector to device space, ignoring translation.
// It is used to measure the flattening error in device pixels.
// A nil Linear means the identity.
type Linear func(vec.Vec2) vec.Vec2

func (l Linear) apply(v vec.Vec2) vec.Vec2 {
	if l == nil {
		return v
	}
	return l(v)
}

// Path flattens p into polylines. Curves are subdivided until the
// deviation from the true curve, measured after applying lin, is at most
// tolerance. Subpaths consisting of a single MoveTo are dropped.
func Path(p *path.Data, tolerance float64, lin Linear) []Polyline {
	if p == nil {
		return nil
	}

	var res []Polyline
	var cur []vec.Vec2
	var current, start vec.Vec2
	open := false

	finish := func(closed bool) {
		if len(cur) > 1 || closed && len(cur) > 0 {
			res = append(res, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
		open = false
	}
	begin := func() {
		if !open {
			cur = append(cur, current)
			start = current
			open = true
		}
	}
	emit := func(pt vec.Vec2) {
		cur = append(cur, pt)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			current = p.Coords[k]
			k++
			begin()

		case path.CmdLineTo:
			begin()
			current = p.Coords[k]
			emit(current)
			k++

		case path.CmdQuadTo:
			begin()
			Quadratic(current, p.Coords[k], p.Coords[k+1], tolerance, lin, emit)
			current = p.Coords[k+1]
			k += 2

		case path.CmdCubeTo:
			begin()
			Cubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], tolerance, lin, emit)
			current = p.Coords[k+2]
			k += 3

		case path.CmdClose:
			if open {
				finish(true)
			}
			// A drawing command after Close starts at the subpath start.
			current = start
		}
	}
	if open {
		finish(false)
	}
	return res
}

// Quadratic flattens the quadratic Bézier curve p0, p1, p2. The start
// point p0 is not emitted; the end point p2 always is.
func Quadratic(p0, p1, p2 vec.Vec2, tolerance float64, lin Linear, emit func(vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the distance between the curve
	// and its chord.
	e := lin.apply(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if dev := e.Length(); dev > tolerance {
		n = int(math.Ceil(math.Sqrt(dev / tolerance)))
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		emit(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
	emit(p2)
}

// Cubic flattens the cubic Bézier curve p0, p1, p2, p3 using Wang's bound
// for the number of segments. The start point p0 is not emitted.
func Cubic(p0, p1, p2, p3 vec.Vec2, tolerance float64, lin Linear, emit func(vec.Vec2)) {
	d1 := lin.apply(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := lin.apply(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * tolerance)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		emit(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
	emit(p3)
}

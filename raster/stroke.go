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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/polyview/internal/clip"
	"seehuhn.de/go/polyview/internal/flatten"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
// The coverage slice passed to emit is only valid during the call.
//
// The stroke is built as a union of convex pieces: one quadrilateral per
// segment, one piece per join and one per cap.  All pieces are oriented
// the same way, so that the nonzero rule paints overlaps only once.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	d := r.Width / 2
	if d <= 0 {
		return
	}

	for _, pl := range flatten.Path(p, r.Flatness, r.linear) {
		pts := dedupe(pl.Points, pl.Closed)
		switch len(pts) {
		case 0:
			continue
		case 1:
			// a zero-length subpath has no direction, only round caps show
			if r.Cap == graphics.LineCapRound {
				r.addDisc(pts[0], d)
			}
		default:
			r.strokePolyline(pts, pl.Closed, d)
		}
	}

	r.scan(integrateNonZero, emit)
}

func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	nSeg := n - 1
	if closed {
		nSeg = n
	}

	for i := range nSeg {
		a, b := pts[i], pts[(i+1)%n]
		off := normal(unit(b.Sub(a))).Mul(d)
		r.addPiece(a.Add(off), b.Add(off), b.Sub(off), a.Sub(off))
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
		r.addJoin(cur, unit(cur.Sub(prev)), unit(next.Sub(cur)), d)
	}

	if !closed {
		r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
		r.addCap(pts[n-1], unit(pts[n-1].Sub(pts[n-2])), d)
	}
}

// addJoin adds the join at P, where the path direction changes from T1 to
// T2.  The join fills the wedge on the outer side of the turn.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cross := T1.X*T2.Y - T1.Y*T2.X
	dot := T1.Dot(T2)

	if math.Abs(cross) < collinearityThreshold {
		// straight on, or a cusp where the path turns back on itself
		if dot < 0 && r.Join == graphics.LineJoinRound {
			r.addDisc(P, d)
		}
		return
	}
	if r.Join == graphics.LineJoinRound {
		r.addDisc(P, d)
		return
	}

	// Turning towards +N puts the outer side at -N.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n1 := normal(T1).Mul(side * d)
	n2 := normal(T2).Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		// The miter tip is d/cos(θ/2) away from P along the bisector,
		// where θ is the turning angle.
		cosHalf := math.Sqrt((1 + dot) / 2)
		bisector := n1.Add(n2)
		if l := bisector.Length(); cosHalf > 0 && l > zeroLengthThreshold &&
			1/cosHalf <= r.MiterLimit+miterEpsilon {
			tip := P.Add(bisector.Mul(d / cosHalf / l))
			r.addPiece(P, P.Add(n1), tip, P.Add(n2))
			return
		}
	}
	r.addPiece(P, P.Add(n1), P.Add(n2))
}

// addCap adds a cap at the end point P of an open subpath.  T points
// away from the path.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		n := normal(T).Mul(d)
		e := T.Mul(d)
		r.addPiece(P.Add(n), P.Add(n).Add(e), P.Sub(n).Add(e), P.Sub(n))
	case graphics.LineCapRound:
		r.addDisc(P, d)
	}
}

// addDisc adds a polygonal approximation of a circle.  The number of
// vertices is chosen so that the sagitta of each chord, in device space,
// stays below the flatness tolerance.
func (r *Rasterizer) addDisc(center vec.Vec2, radius float64) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length())

	n := minDiscVertices
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.piece = r.piece[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.piece = append(r.piece, center.Add(vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(radius)))
	}
	r.addOriented(r.piece)
}

// addPiece adds one convex stroke piece.
func (r *Rasterizer) addPiece(pts ...vec.Vec2) {
	r.piece = append(r.piece[:0], pts...)
	r.addOriented(r.piece)
}

// addOriented adds poly with positive orientation.
func (r *Rasterizer) addOriented(poly []vec.Vec2) {
	if clip.Area(poly) < 0 {
		slices.Reverse(poly)
	}
	r.addPolygon(poly)
}

// dedupe removes zero-length segments from a flattened subpath.  For
// closed subpaths a final vertex equal to the first one is dropped too.
func dedupe(pts []vec.Vec2, closed bool) []vec.Vec2 {
	if len(pts) == 0 {
		return nil
	}
	out := []vec.Vec2{pts[0]}
	for _, p := range pts[1:] {
		if p.Sub(out[len(out)-1]).Length() >= zeroLengthThreshold {
			out = append(out, p)
		}
	}
	if closed {
		for len(out) > 1 && out[len(out)-1].Sub(out[0]).Length() < zeroLengthThreshold {
			out = out[:len(out)-1]
		}
	}
	return out
}

func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// normal returns v rotated by 90° counter-clockwise.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

const (
	// zeroLengthThreshold is the shortest segment which is stroked.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin θ| for which two
	// consecutive segments are treated as parallel.
	collinearityThreshold = 1e-6

	miterEpsilon = 1e-10

	minDiscVertices = 8
)

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

// Package raster converts chart paths into anti-aliased pixel coverage.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/polyview/internal/flatten"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer computes, for each pixel, the fraction of its area covered by
// a filled or stroked path.  Results are delivered row by row to an emit
// callback as values between 0 and 1.
//
// Internal buffers are reused between calls.  A Rasterizer is not safe for
// concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is used at the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is used at the vertices of stroked paths.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width.  Longer miters are drawn as bevels.
	MiterLimit float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int
	piece  []vec.Vec2

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasterizer returns a Rasterizer for the given clip rectangle, with an
// identity CTM and PDF default stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero fills p using the nonzero winding rule.  The coverage slice
// passed to emit is only valid during the call.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.  The coverage slice passed
// to emit is only valid during the call.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasterizer) fill(p *path.Data, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	r.startEdges()
	for _, pl := range flatten.Path(p, r.Flatness, r.linear) {
		// every subpath is implicitly closed for filling
		r.addPolygon(pl.Points)
	}
	r.scan(integrate, emit)
}

// linear applies the 2×2 part of the CTM.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasterizer) toDevice(v vec.Vec2) (float64, float64) {
	m := r.CTM
	return m[0]*v.X + m[2]*v.Y + m[4], m[1]*v.X + m[3]*v.Y + m[5]
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addPolygon adds the edges of the closed polygon poly, given in user space.
func (r *Rasterizer) addPolygon(poly []vec.Vec2) {
	n := len(poly)
	if n < 2 {
		return
	}
	for i := range n {
		r.addEdge(poly[i], poly[(i+1)%n])
	}
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	x0, y0 := r.toDevice(a)
	x1, y1 := r.toDevice(b)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// bounds returns the pixel bounding box of the collected edges, clamped to
// the clip rectangle.
func (r *Rasterizer) bounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan walks the scanlines with an active edge list, integrates the
// accumulated signed area and emits the non-zero part of each row.
//
// For every pixel two values are accumulated.  cover is the signed
// vertical extent of the edges crossing the pixel; area is cover weighted
// by the part of the pixel to the right of the crossing.  Walking a row
// from left to right, the coverage of pixel i is the running sum of cover
// for pixels < i plus area[i].
func (r *Rasterizer) scan(integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.bounds()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, top, bot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if row, off := trimZeros(r.cover); row != nil {
			emit(y, xMin+off, row)
		}
	}
}

// accumulate adds the contribution of e within the scanline [top, bot)
// to the cover and area buffers, which are indexed by x - xMin.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) bool {
	yTop := max(top, e.yMin())
	yBot := min(bot, e.yMax())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	colLo := int(math.Floor(min(xa, xb)))
	colHi := int(math.Floor(max(xa, xb)))

	if colLo == colHi {
		r.deposit(e, yTop, yBot, sign, colLo, xMin, xMax)
		return true
	}

	// Split the part of the edge inside this scanline at the pixel column
	// boundaries.  x is linear in y, so each column covers a y-interval.
	dydx := 1 / e.dxdy
	for col := colLo; col <= colHi; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi > lo {
			r.deposit(e, lo, hi, sign, col, xMin, xMax)
		}
	}
	return true
}

// deposit records the part of e between y-values lo and hi, which lies
// inside pixel column col.
func (r *Rasterizer) deposit(e *edge, lo, hi float64, sign float32, col, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case col < xMin:
		// left of the clip: the whole row is affected
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		xm := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xm - float64(col)
		i := col - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated values into coverage using the
// nonzero winding rule.  The result replaces the contents of cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated values into coverage using the
// even-odd rule.  The result replaces the contents of cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of row between the first and the last
// non-zero entry, together with its offset.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10
)

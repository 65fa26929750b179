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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyview/internal/clip"
	"seehuhn.de/go/polyview/internal/flatten"
)

// transform maps data space to screen space.
type transform struct {
	start, span   float64 // visible x-range
	maxY          float64
	width, height float64 // canvas size, excluding the stroke inset
	offset        float64
}

// apply maps a data point to a screen point.  The x-range is scaled to
// [0, width] and [0, maxY] to [height, 0], both shifted by offset.
// If maxY is not positive, every point maps onto the baseline.
func (t *transform) apply(p vec.Vec2) vec.Vec2 {
	x := (p.X-t.start)*t.width/t.span + t.offset
	y := t.height + t.offset
	if t.maxY > 0 {
		y = t.height - p.Y*t.height/t.maxY + t.offset
	}
	return vec.Vec2{X: x, Y: y}
}

// visible returns the points with r.Start <= x <= r.End, sorted by x.
// Points with equal x keep their relative order.
func visible(data []vec.Vec2, r Range) []vec.Vec2 {
	var res []vec.Vec2
	for _, p := range data {
		if p.X >= r.Start && p.X <= r.End {
			res = append(res, p)
		}
	}
	slices.SortStableFunc(res, func(a, b vec.Vec2) int {
		return cmp.Compare(a.X, b.X)
	})
	return res
}

func maxY(data []vec.Vec2) float64 {
	m := data[0].Y
	for _, p := range data[1:] {
		m = max(m, p.Y)
	}
	return m
}

// midpoints returns the curve end points for the Curved vertex style.
// The first entry is the first screen point, entry i > 0 is the mean of
// screen points i-1 and i.
func midpoints(screen []vec.Vec2) []vec.Vec2 {
	if len(screen) == 0 {
		return nil
	}
	mid := make([]vec.Vec2, len(screen))
	mid[0] = screen[0]
	for i := 1; i < len(screen); i++ {
		a, b := screen[i-1], screen[i]
		mid[i] = vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	return mid
}

// outline builds the closed fill shape: the data curve, then down to the
// bottom of the canvas at the last x, across to the first x and back up.
func outline(screen, mid []vec.Vec2, vt Vertex, height float64) *path.Data {
	first, last := screen[0], screen[len(screen)-1]

	p := &path.Data{}
	if vt == Curved && len(mid) == len(screen) {
		p = p.MoveTo(mid[0])
		for i := 1; i < len(mid); i++ {
			p = p.QuadTo(screen[i-1], mid[i])
		}
		p = p.LineTo(last)
	} else {
		p = p.MoveTo(first)
		for _, pt := range screen[1:] {
			p = p.LineTo(pt)
		}
	}

	p = p.LineTo(vec.Vec2{X: last.X, Y: height})
	p = p.LineTo(vec.Vec2{X: first.X, Y: height})
	if first.Y != 0 {
		p = p.LineTo(first)
	}
	return p.Close()
}

// highlightFlatness is the tolerance, in pixels, used to flatten the
// outline before it is clipped to the highlight band.
const highlightFlatness = 0.1

// intersectBand intersects the fill shape with the vertical band between
// x0 and x1, spanning the canvas height.  The result is nil if the
// intersection has no area.
func intersectBand(shape *path.Data, x0, x1, height float64) *path.Data {
	band := rect.Rect{LLx: min(x0, x1), LLy: 0, URx: max(x0, x1), URy: height}
	if band.URx <= band.LLx {
		return nil
	}

	var res *path.Data
	for _, pl := range flatten.Path(shape, highlightFlatness, nil) {
		poly := clip.Rect(pl.Points, band)
		if clip.Empty(poly) {
			continue
		}
		if res == nil {
			res = &path.Data{}
		}
		res = res.MoveTo(poly[0])
		for _, pt := range poly[1:] {
			res = res.LineTo(pt)
		}
		res = res.Close()
	}
	return res
}

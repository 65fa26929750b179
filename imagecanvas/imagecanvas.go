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

// Package imagecanvas draws charts into in-memory images.
//
// Paths are rasterized with anti-aliasing by [raster.Rasterizer] and the
// resulting coverage mask is composited onto the destination image with
// golang.org/x/image/draw.
package imagecanvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/polyview/raster"
)

// Canvas is a polyview.Canvas which paints onto an *image.RGBA.
type Canvas struct {
	Dst *image.RGBA

	// Transform maps chart coordinates to image pixels.  Use a scaling
	// matrix to render at a higher resolution.
	Transform matrix.Matrix

	// Stroke parameters.  New sets the defaults of most 2D toolkits:
	// miter joins with limit 4 and butt caps.
	Join       graphics.LineJoinStyle
	Cap        graphics.LineCapStyle
	MiterLimit float64

	r    *raster.Rasterizer
	mask *image.Alpha
}

// New returns a Canvas drawing onto dst.
func New(dst *image.RGBA) *Canvas {
	return &Canvas{
		Dst:        dst,
		Transform:  matrix.Identity,
		Join:       graphics.LineJoinMiter,
		Cap:        graphics.LineCapButt,
		MiterLimit: 4,
	}
}

// Clear fills the whole image with bg.
func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.Dst, c.Dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// Fill paints the interior of p using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	r := c.rasterizer()
	c.paint(col, func(emit func(y, xMin int, coverage []float32)) {
		r.FillNonZero(p, emit)
	})
}

// Stroke paints the outline of p.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	r := c.rasterizer()
	r.Width = width
	r.Join = c.Join
	r.Cap = c.Cap
	r.MiterLimit = c.MiterLimit
	c.paint(col, func(emit func(y, xMin int, coverage []float32)) {
		r.Stroke(p, emit)
	})
}

// rasterizer returns the shared rasterizer, reset to the current image
// bounds and transformation.
func (c *Canvas) rasterizer() *raster.Rasterizer {
	b := c.Dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if c.r == nil {
		c.r = raster.NewRasterizer(clip)
	} else {
		c.r.Reset(clip)
	}
	if c.Transform != (matrix.Matrix{}) {
		c.r.CTM = c.Transform
	}
	return c.r
}

// paint renders a coverage mask and composites col through it.
func (c *Canvas) paint(col color.Color, render func(emit func(y, xMin int, coverage []float32))) {
	b := c.Dst.Bounds()
	if c.mask == nil || c.mask.Bounds() != b {
		c.mask = image.NewAlpha(b)
	}
	m := c.mask

	var dirty image.Rectangle
	render(func(y, xMin int, coverage []float32) {
		row := m.Pix[m.PixOffset(xMin, y):]
		for i, v := range coverage {
			row[i] = uint8(v*255 + 0.5)
		}
		dirty = dirty.Union(image.Rect(xMin, y, xMin+len(coverage), y+1))
	})
	if dirty.Empty() {
		return
	}

	draw.DrawMask(c.Dst, dirty, image.NewUniform(col), image.Point{}, m, dirty.Min, draw.Over)

	for y := dirty.Min.Y; y < dirty.Max.Y; y++ {
		clear(m.Pix[m.PixOffset(dirty.Min.X, y):m.PixOffset(dirty.Max.X, y)])
	}
}

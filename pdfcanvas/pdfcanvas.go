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

// Package pdfcanvas draws charts as vector graphics into PDF files.
//
// Colours are converted to DeviceGray.  Translucent colours are blended
// over a white page.
package pdfcanvas

import (
	"image/color"
	"os"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyview"
)

// Writer is the part of a PDF content stream writer used by Canvas.
// It is implemented by the page returned from
// [document.CreateSinglePage].
type Writer interface {
	Transform(m matrix.Matrix)
	SetFillColor(c pdfcolor.Color)
	SetStrokeColor(c pdfcolor.Color)
	SetLineWidth(w float64)
	SetLineCap(c graphics.LineCapStyle)
	SetLineJoin(j graphics.LineJoinStyle)
	SetMiterLimit(l float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
	Fill()
	Stroke()
}

// Canvas is a polyview.Canvas which writes PDF path operators.
type Canvas struct {
	w Writer

	Join       graphics.LineJoinStyle
	Cap        graphics.LineCapStyle
	MiterLimit float64
}

// New returns a Canvas drawing onto w.  The y-axis is flipped so that
// the chart origin is the top-left corner of a page of the given height.
func New(w Writer, height float64) *Canvas {
	w.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	return &Canvas{
		w:          w,
		Join:       graphics.LineJoinMiter,
		Cap:        graphics.LineCapButt,
		MiterLimit: 4,
	}
}

// Fill paints the interior of p using the nonzero winding rule.
func (c *Canvas) Fill(p *path.Data, col color.Color) {
	c.w.SetFillColor(gray(col))
	c.emit(p)
	c.w.Fill()
}

// Stroke paints the outline of p.
func (c *Canvas) Stroke(p *path.Data, width float64, col color.Color) {
	c.w.SetStrokeColor(gray(col))
	c.w.SetLineWidth(width)
	c.w.SetLineCap(c.Cap)
	c.w.SetLineJoin(c.Join)
	c.w.SetMiterLimit(c.MiterLimit)
	c.emit(p)
	c.w.Stroke()
}

// emit writes the path construction operators.  PDF has no quadratic
// curves, so these are converted to cubic ones.
func (c *Canvas) emit(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.w.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.w.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.w.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.w.ClosePath()
		}
	}
}

// gray converts col to a DeviceGray colour using the Rec. 601 luma
// weights.
func gray(col color.Color) pdfcolor.Color {
	return pdfcolor.DeviceGray(luminance(col))
}

func luminance(col color.Color) float64 {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	l := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	a := float64(c.A) / 255
	return l*a + (1 - a)
}

// Drawer is implemented by *polyview.View.
type Drawer interface {
	Draw(c polyview.Canvas) error
}

// WriteFile writes a single page PDF of the given size in points, with
// a white background and d drawn on top.  If drawing fails, no file is
// left behind.
func WriteFile(name string, d Drawer, width, height float64) error {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	if err := d.Draw(New(page, height)); err != nil {
		_ = page.Close()
		_ = os.Remove(name)
		return err
	}
	if err := page.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	polyview.Logger().Info("wrote PDF", "file", name)
	return nil
}

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

// Package fynechart provides a Fyne widget which displays a polyview chart.
package fynechart

import (
	"errors"
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/imagecanvas"
)

// Chart is a widget showing a [polyview.View].
//
// The View works in device independent units.  On high resolution
// screens the chart is rendered with the corresponding scale factor.
type Chart struct {
	widget.BaseWidget

	view       *polyview.View
	background color.Color
	minSize    fyne.Size
}

// New returns a widget showing v.  The widget refreshes itself whenever
// v changes; the OnInvalidate hook of v is taken over.
func New(v *polyview.View) *Chart {
	c := &Chart{
		view:    v,
		minSize: fyne.NewSize(100, 60),
	}
	c.ExtendBaseWidget(c)
	v.OnInvalidate = c.Refresh
	return c
}

// View returns the chart data and style.
func (c *Chart) View() *polyview.View {
	return c.view
}

// SetMinSize sets the minimum size of the widget.
func (c *Chart) SetMinSize(size fyne.Size) {
	c.minSize = size
	c.Refresh()
}

// SetBackground sets the colour painted behind the chart.  The default
// nil leaves the background transparent.
func (c *Chart) SetBackground(bg color.Color) {
	c.background = bg
	c.Refresh()
}

// CreateRenderer implements [fyne.Widget].
func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{chart: c}
	r.raster = canvas.NewRaster(r.generate)
	r.objects = []fyne.CanvasObject{r.raster}
	return r
}

type chartRenderer struct {
	chart   *Chart
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *chartRenderer) MinSize() fyne.Size {
	return r.chart.minSize
}

func (r *chartRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *chartRenderer) Destroy() {}

// generate draws the chart into a w×h pixel image.
func (r *chartRenderer) generate(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// The View is sized in widget units, the image in pixels.
	size := r.chart.Size()
	lw, lh := int(math.Round(float64(size.Width))), int(math.Round(float64(size.Height)))
	if lw <= 0 || lh <= 0 {
		lw, lh = w, h
	}
	sx, sy := float64(w)/float64(lw), float64(h)/float64(lh)

	v := r.chart.view
	// Resizing the View invalidates it, which must not trigger another
	// refresh while we are drawing.
	hook := v.OnInvalidate
	v.OnInvalidate = nil
	v.Resize(lw, lh)
	v.OnInvalidate = hook

	ic := imagecanvas.New(img)
	ic.Transform = matrix.Matrix{sx, 0, 0, sy, 0, 0}
	if r.chart.background != nil {
		ic.Clear(r.chart.background)
	}
	err := v.Draw(ic)
	if err != nil && !errors.Is(err, polyview.ErrNoData) {
		polyview.Logger().Warn("fynechart: cannot draw chart", "error", err)
	}
	return img
}

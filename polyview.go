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

// Package polyview draws filled polygon charts (area charts).
//
// A [View] holds a data series, a visible x-range and an optional
// highlighted sub-range.  It maps the visible data to screen space, builds
// the closed outline of the area below the data and clips the highlight
// band to that outline.  The result is drawn onto any [Canvas].
//
// Typical use:
//
//	v := polyview.New(polyview.DefaultConfig())
//	v.Resize(320, 200)
//	v.SetRange(0, 3)
//	v.SetData([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 8}})
//	v.SetHighlightRange(1, 2)
//	err := v.Draw(canvas)
//
// A View is not safe for concurrent use.
package polyview

import (
	"errors"
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var (
	// ErrNoData is returned by Draw if SetData has not been called.
	ErrNoData = errors.New("polyview: no data")

	// ErrNoRange is returned by Draw if SetRange has not been called.
	ErrNoRange = errors.New("polyview: no range")

	// ErrInvalidRange is returned by SetRange for a range with
	// start > end, or with a NaN endpoint.
	ErrInvalidRange = errors.New("polyview: invalid range")
)

// View is a filled polygon chart.
//
// Geometry is derived from the data whenever the data, the range or the
// size changes.  If the size is not yet known, the update is deferred
// until the first call to Resize with non-zero dimensions.
type View struct {
	cfg Config

	data     []vec.Vec2
	hasData  bool
	rng      Range
	hasRange bool
	hl       *Range

	// widget size in pixels, zero if unknown
	width, height int
	pending       bool

	// derived geometry, nil if there is nothing to draw
	tr     transform
	screen []vec.Vec2
	mid    []vec.Vec2

	// OnInvalidate, if set, is called whenever the View needs to be
	// redrawn.
	OnInvalidate func()
}

// New returns a View with the given style.
func New(cfg Config) *View {
	v := &View{}
	v.cfg = cfg
	v.cfg.StrokeWidth = max(cfg.StrokeWidth, 0)
	v.cfg.HighlightStrokeWidth = max(cfg.HighlightStrokeWidth, 0)
	return v
}

// Config returns the current style.
func (v *View) Config() Config {
	return v.cfg
}

// SetColor sets the fill colour.
func (v *View) SetColor(c color.Color) {
	v.cfg.Color = toNRGBA(c)
	v.invalidate()
}

// SetStrokeColor sets the outline colour.
func (v *View) SetStrokeColor(c color.Color) {
	v.cfg.StrokeColor = toNRGBA(c)
	v.invalidate()
}

// SetStrokeWidth sets the outline width.  A width of zero disables the
// outline.  Negative widths are treated as zero.
//
// The outline width also determines the inset of the chart within the
// widget.  The new inset is used the next time the geometry is derived.
func (v *View) SetStrokeWidth(w float64) {
	v.cfg.StrokeWidth = max(w, 0)
	v.invalidate()
}

// SetHighlightColor sets the fill colour of the highlight.
func (v *View) SetHighlightColor(c color.Color) {
	v.cfg.HighlightColor = toNRGBA(c)
	v.invalidate()
}

// SetHighlightStrokeColor sets the outline colour of the highlight.
func (v *View) SetHighlightStrokeColor(c color.Color) {
	v.cfg.HighlightStrokeColor = toNRGBA(c)
	v.invalidate()
}

// SetHighlightStrokeWidth sets the outline width of the highlight.  A
// width of zero disables the highlight outline.
func (v *View) SetHighlightStrokeWidth(w float64) {
	v.cfg.HighlightStrokeWidth = max(w, 0)
	v.invalidate()
}

// HasStroke reports whether the chart outline is drawn.
func (v *View) HasStroke() bool {
	return v.cfg.StrokeWidth != 0
}

// HasHighlightStroke reports whether the highlight outline is drawn.
func (v *View) HasHighlightStroke() bool {
	return v.cfg.HighlightStrokeWidth != 0
}

// SetVertexType selects straight or curved interpolation between data
// points.  The screen points are kept, only the outline changes.
func (v *View) SetVertexType(vt Vertex) {
	v.cfg.VertexType = vt
	if vt == Curved && v.screen != nil && v.mid == nil {
		v.mid = midpoints(v.screen)
	}
	v.invalidate()
}

// VertexType returns the current interpolation style.
func (v *View) VertexType() Vertex {
	return v.cfg.VertexType
}

// SetData replaces the data series.  The slice is copied.
func (v *View) SetData(points []vec.Vec2) {
	v.data = slices.Clone(points)
	v.hasData = true
	v.update()
}

// SetRange sets the visible x-range.  Data points outside the range are
// not drawn.
func (v *View) SetRange(start, end float64) error {
	if math.IsNaN(start) || math.IsNaN(end) || start > end {
		return ErrInvalidRange
	}
	v.rng = Range{Start: start, End: end}
	v.hasRange = true
	v.update()
	return nil
}

// Range returns the visible x-range, if one has been set.
func (v *View) Range() (Range, bool) {
	return v.rng, v.hasRange
}

// SetHighlightRange sets the highlighted x-range.  The endpoints may be
// given in either order.
func (v *View) SetHighlightRange(start, end float64) {
	v.hl = &Range{Start: min(start, end), End: max(start, end)}
	if v.sizeKnown() {
		v.invalidate()
	}
}

// ClearHighlightRange removes the highlight.
func (v *View) ClearHighlightRange() {
	v.hl = nil
	if v.sizeKnown() {
		v.invalidate()
	}
}

// HighlightRange returns the highlighted x-range, if one is set.
func (v *View) HighlightRange() (Range, bool) {
	if v.hl == nil {
		return Range{}, false
	}
	return *v.hl, true
}

// Resize sets the size of the drawing area in pixels.  Calls with a zero
// or negative dimension are ignored.  The geometry is derived again if
// the size changed or an update was pending.
func (v *View) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == v.width && height == v.height && !v.pending {
		return
	}
	v.width, v.height = width, height
	v.update()
}

// Size returns the size set by the last effective call to Resize.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Pending reports whether a geometry update is waiting for the size to
// become known.
func (v *View) Pending() bool {
	return v.pending
}

// canvasSize returns the drawing area inside the stroke inset.
func (v *View) canvasSize() (w, h float64, ok bool) {
	inset := v.cfg.StrokeWidth
	w = float64(v.width) - inset
	h = float64(v.height) - inset
	return w, h, v.width > 0 && v.height > 0 && w > 0 && h > 0
}

func (v *View) sizeKnown() bool {
	_, _, ok := v.canvasSize()
	return ok
}

// update derives the screen geometry from the data.
func (v *View) update() {
	if !v.hasData {
		return
	}
	log := Logger()

	w, h, ok := v.canvasSize()
	if !ok {
		v.pending = true
		log.Debug("polyview: size unknown, update deferred")
		return
	}
	v.pending = false
	v.screen, v.mid = nil, nil

	switch {
	case !v.hasRange:
		log.Debug("polyview: no range set")
		return
	case v.rng.End == v.rng.Start:
		log.Debug("polyview: empty range", "start", v.rng.Start)
		v.invalidate()
		return
	}

	pts := visible(v.data, v.rng)
	if len(pts) < 2 {
		log.Debug("polyview: not enough visible points", "n", len(pts))
		v.invalidate()
		return
	}

	v.tr = transform{
		start:  v.rng.Start,
		span:   v.rng.End - v.rng.Start,
		maxY:   maxY(v.data),
		width:  w,
		height: h,
		offset: v.cfg.StrokeWidth / 2,
	}
	v.screen = make([]vec.Vec2, len(pts))
	for i, p := range pts {
		v.screen[i] = v.tr.apply(p)
	}
	if v.cfg.VertexType == Curved {
		v.mid = midpoints(v.screen)
	}
	v.invalidate()
}

func (v *View) invalidate() {
	if v.OnInvalidate != nil {
		v.OnInvalidate()
	}
}

// ScreenPoints returns the visible data points in screen coordinates,
// sorted by x.  The result is nil if there is nothing to draw.
func (v *View) ScreenPoints() []vec.Vec2 {
	return slices.Clone(v.screen)
}

// Midpoints returns the curve end points used by the Curved vertex
// style, or nil for Sharp.
func (v *View) Midpoints() []vec.Vec2 {
	if v.cfg.VertexType != Curved {
		return nil
	}
	return slices.Clone(v.mid)
}

// Outline returns the closed fill shape, or nil if there is nothing to
// draw.
func (v *View) Outline() *path.Data {
	if len(v.screen) < 2 {
		return nil
	}
	return outline(v.screen, v.mid, v.cfg.VertexType, v.tr.height)
}

// Highlight returns the part of the fill shape inside the highlight
// range, or nil if no highlight is set or the intersection is empty.
func (v *View) Highlight() *path.Data {
	shape := v.Outline()
	if shape == nil {
		return nil
	}
	return v.highlight(shape)
}

func (v *View) highlight(shape *path.Data) *path.Data {
	if v.hl == nil {
		return nil
	}
	x0 := v.tr.apply(vec.Vec2{X: v.hl.Start}).X
	x1 := v.tr.apply(vec.Vec2{X: v.hl.End}).X
	res := intersectBand(shape, x0, x1, v.tr.height)
	if res == nil {
		Logger().Debug("polyview: highlight does not intersect the chart",
			"start", v.hl.Start, "end", v.hl.End)
	}
	return res
}

// Draw paints the chart onto c: the fill, then the highlight and its
// outline, then the chart outline.  Nothing is drawn while the size is
// unknown or fewer than two data points are visible.
func (v *View) Draw(c Canvas) error {
	if !v.hasData {
		return ErrNoData
	}
	if !v.hasRange {
		return ErrNoRange
	}

	shape := v.Outline()
	if shape == nil {
		return nil
	}

	c.Fill(shape, v.cfg.Color)
	if hl := v.highlight(shape); hl != nil {
		c.Fill(hl, v.cfg.HighlightColor)
		if v.HasHighlightStroke() {
			c.Stroke(hl, v.cfg.HighlightStrokeWidth, v.cfg.HighlightStrokeColor)
		}
	}
	if v.HasStroke() {
		c.Stroke(shape, v.cfg.StrokeWidth, v.cfg.StrokeColor)
	}
	return nil
}

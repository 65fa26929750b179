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

package pdfcanvas

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/polyview"
)

// fakeWriter records the operators it receives.
type fakeWriter struct {
	ops       []string
	transform matrix.Matrix
	width     float64
}

func (w *fakeWriter) Transform(m matrix.Matrix)          { w.transform = m; w.ops = append(w.ops, "cm") }
func (w *fakeWriter) SetFillColor(pdfcolor.Color)        { w.ops = append(w.ops, "fill-colour") }
func (w *fakeWriter) SetStrokeColor(pdfcolor.Color)      { w.ops = append(w.ops, "stroke-colour") }
func (w *fakeWriter) SetLineWidth(x float64)             { w.width = x; w.ops = append(w.ops, "w") }
func (w *fakeWriter) SetLineCap(graphics.LineCapStyle)   { w.ops = append(w.ops, "J") }
func (w *fakeWriter) SetLineJoin(graphics.LineJoinStyle) { w.ops = append(w.ops, "j") }
func (w *fakeWriter) SetMiterLimit(float64)              { w.ops = append(w.ops, "M") }
func (w *fakeWriter) MoveTo(x, y float64)                { w.ops = append(w.ops, "m") }
func (w *fakeWriter) LineTo(x, y float64)                { w.ops = append(w.ops, "l") }
func (w *fakeWriter) CurveTo(_, _, _, _, _, _ float64)   { w.ops = append(w.ops, "c") }
func (w *fakeWriter) ClosePath()                         { w.ops = append(w.ops, "h") }
func (w *fakeWriter) Fill()                              { w.ops = append(w.ops, "f") }
func (w *fakeWriter) Stroke()                            { w.ops = append(w.ops, "S") }

func TestCanvasOperators(t *testing.T) {
	w := &fakeWriter{}
	c := New(w, 50)
	if w.transform != (matrix.Matrix{1, 0, 0, -1, 0, 50}) {
		t.Errorf("page transform %v", w.transform)
	}

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 0}).
		Close()

	w.ops = nil
	c.Fill(p, color.Black)
	c.Stroke(p, 3, color.White)

	want := "fill-colour m c l h f stroke-colour w J j M m c l h S"
	if got := strings.Join(w.ops, " "); got != want {
		t.Errorf("operators\n got %s\nwant %s", got, want)
	}
	if w.width != 3 {
		t.Errorf("line width %g", w.width)
	}
}

func TestLuminance(t *testing.T) {
	cases := []struct {
		c    color.Color
		want float64
	}{
		{color.Black, 0},
		{color.White, 1},
		{color.NRGBA{0xFF, 0, 0, 0xFF}, 0.299},
		{color.NRGBA{0, 0, 0xFF, 0xFF}, 0.114},
		{color.NRGBA{0, 0, 0, 0}, 1},
		{color.NRGBA{0, 0, 0, 0x80}, 1 - 128.0/255},
	}
	for _, tc := range cases {
		if got := luminance(tc.c); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("luminance(%v) = %g, want %g", tc.c, got, tc.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	v := polyview.New(polyview.DefaultConfig())
	v.Resize(120, 80)
	if err := v.SetRange(0, 3); err != nil {
		t.Fatal(err)
	}
	v.SetData([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 8}})
	v.SetHighlightRange(1, 2)

	name := filepath.Join(t.TempDir(), "chart.pdf")
	if err := WriteFile(name, v, 120, 80); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 10)])
	}
}

func TestWriteFileError(t *testing.T) {
	v := polyview.New(polyview.DefaultConfig())
	name := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WriteFile(name, v, 10, 10); err == nil {
		t.Error("drawing a View without data succeeded")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Errorf("incomplete PDF left on disk: %v", err)
	}
}

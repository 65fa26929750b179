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

package imagecanvas

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyview"
)

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

var (
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	red   = color.RGBA{0xFF, 0, 0, 0xFF}
)

func TestFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := New(img)
	c.Clear(white)
	c.Fill(square(2, 2, 6, 6), red)

	for y := range 10 {
		for x := range 10 {
			want := white
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = red
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillHalfCoverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c := New(img)
	c.Clear(color.White)
	c.Fill(square(0, 0, 2.5, 4), color.Black)

	got := img.RGBAAt(2, 1)
	if got.R < 0x70 || got.R > 0x90 {
		t.Errorf("half covered pixel = %v", got)
	}
	if img.RGBAAt(3, 1) != white {
		t.Errorf("uncovered pixel = %v", img.RGBAAt(3, 1))
	}
}

func TestStroke(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := New(img)
	c.Clear(white)
	c.Stroke(square(2, 2, 8, 8), 2, red)

	if got := img.RGBAAt(2, 5); got != red {
		t.Errorf("outline pixel = %v", got)
	}
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("interior pixel = %v", got)
	}
	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("miter corner pixel = %v", got)
	}
}

func TestTransform(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	c := New(img)
	c.Transform = matrix.Matrix{2, 0, 0, 2, 0, 0}
	c.Clear(white)
	c.Fill(square(1, 1, 3, 3), red)

	if got := img.RGBAAt(2, 2); got != red {
		t.Errorf("pixel (2,2) = %v", got)
	}
	if got := img.RGBAAt(6, 6); got != white {
		t.Errorf("pixel (6,6) = %v", got)
	}
}

func TestMaskCleared(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	c := New(img)
	c.Clear(white)
	c.Fill(square(0, 0, 3, 3), red)
	c.Fill(square(3, 3, 6, 6), color.Black)

	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("first fill was repainted: %v", got)
	}
}

func TestDrawView(t *testing.T) {
	cfg := polyview.DefaultConfig()
	cfg.StrokeWidth = 2
	v := polyview.New(cfg)
	v.Resize(40, 40)
	if err := v.SetRange(0, 3); err != nil {
		t.Fatal(err)
	}
	v.SetData([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 8}})
	v.SetHighlightRange(1, 2)

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	c := New(img)
	c.Clear(white)
	if err := v.Draw(c); err != nil {
		t.Fatal(err)
	}

	// bottom centre lies inside the highlight band
	if got := img.RGBAAt(20, 36); got != (color.RGBA{0, 0, 0xFF, 0xFF}) {
		t.Errorf("highlight pixel = %v", got)
	}
	// bottom left lies in the plain fill
	if got := img.RGBAAt(5, 36); got != (color.RGBA{0xCC, 0xCC, 0xCC, 0xFF}) {
		t.Errorf("fill pixel = %v", got)
	}
	// top left lies above the data
	if got := img.RGBAAt(3, 3); got != white {
		t.Errorf("background pixel = %v", got)
	}
}

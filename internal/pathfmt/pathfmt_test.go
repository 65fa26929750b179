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

package pathfmt

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestString(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 10}).
		QuadTo(vec.Vec2{X: 5, Y: 0}, vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 1.75, Y: 10}).
		Close()

	want := "M 0.0 10.0 Q 5.0 0.0 10.0 10.0 L 1.8 10.0 Z"
	if got := String(p, 1); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSegments(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 2}).
		CubeTo(vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 5, Y: 6}, vec.Vec2{X: 7, Y: 8}).
		Close()

	segs := Segments(p)
	if len(segs) != 3 {
		t.Fatalf("got %d segments", len(segs))
	}
	if segs[1].Cmd != "C" || len(segs[1].Pts) != 3 || segs[1].Pts[2][1] != 8 {
		t.Errorf("cubic segment %v", segs[1])
	}
	if segs[2].Cmd != "Z" || segs[2].Pts != nil {
		t.Errorf("close segment %v", segs[2])
	}
	if Segments(nil) != nil {
		t.Error("nil path has segments")
	}
}

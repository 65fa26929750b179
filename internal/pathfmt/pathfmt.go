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

// Package pathfmt converts paths into text and JSON friendly forms.
package pathfmt

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
)

// Segment is one path command with its points.
type Segment struct {
	Cmd string      `json:"cmd" yaml:"cmd"`
	Pts [][]float64 `json:"pts,omitempty" yaml:"pts,omitempty,flow"`
}

var cmdNames = map[path.Command]string{
	path.CmdMoveTo: "M",
	path.CmdLineTo: "L",
	path.CmdQuadTo: "Q",
	path.CmdCubeTo: "C",
	path.CmdClose:  "Z",
}

// Segments lists the commands of p, using the SVG letters M, L, Q, C
// and Z.
func Segments(p *path.Data) []Segment {
	if p == nil {
		return nil
	}
	var segs []Segment
	k := 0
	for _, cmd := range p.Cmds {
		n := numPoints(cmd)
		seg := Segment{Cmd: cmdNames[cmd]}
		for _, pt := range p.Coords[k : k+n] {
			seg.Pts = append(seg.Pts, []float64{pt.X, pt.Y})
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}

// String formats p as SVG path data, for example "M 0 10 L 5 0 Z".
// Coordinates are rounded to the given number of decimal places.
func String(p *path.Data, prec int) string {
	var b strings.Builder
	for i, seg := range Segments(p) {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(seg.Cmd)
		for _, pt := range seg.Pts {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(pt[0], 'f', prec, 64))
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(pt[1], 'f', prec, 64))
		}
	}
	return b.String()
}

func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

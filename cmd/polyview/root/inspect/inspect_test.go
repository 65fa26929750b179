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

package inspect

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const chartYAML = `
size: {width: 100, height: 100}
range: {start: 0, end: 3}
highlight: {start: 1, end: 2}
style: {vertexType: curved}
data: [[0, 0], [1, 5], [2, 3], [3, 8]]
`

func execute(t *testing.T, args ...string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(name, []byte(chartYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewInspectCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs(append([]string{"-f", name}, args...))
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestInspectJSON(t *testing.T) {
	var r Report
	if err := json.Unmarshal([]byte(execute(t)), &r); err != nil {
		t.Fatal(err)
	}

	if len(r.ScreenPoints) != 4 {
		t.Fatalf("got %d screen points", len(r.ScreenPoints))
	}
	if p := r.ScreenPoints[1]; math.Abs(p[0]-100.0/3) > 1e-9 || p[1] != 37.5 {
		t.Errorf("screen point %v", p)
	}
	if len(r.Midpoints) != 4 {
		t.Errorf("got %d midpoints", len(r.Midpoints))
	}
	if !strings.HasPrefix(r.Outline, "M 0.00 100.00 Q ") || !strings.HasSuffix(r.Outline, " Z") {
		t.Errorf("outline %q", r.Outline)
	}
	if r.Highlight == nil || r.HighlightPath == "" {
		t.Errorf("highlight missing: %v %q", r.Highlight, r.HighlightPath)
	}
	if r.Style["vertexType"] != "curved" {
		t.Errorf("style %v", r.Style)
	}
}

func TestInspectYAML(t *testing.T) {
	var r Report
	if err := yaml.Unmarshal([]byte(execute(t, "--format", "yaml")), &r); err != nil {
		t.Fatal(err)
	}
	if r.Size.Width != 100 || r.Range.End != 3 {
		t.Errorf("report %+v", r)
	}
}

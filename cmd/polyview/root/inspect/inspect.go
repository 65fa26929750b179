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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/chartfile"
	"seehuhn.de/go/polyview/internal/cliutil"
	"seehuhn.de/go/polyview/internal/pathfmt"
)

// Report describes the geometry derived from a chart file.
type Report struct {
	Size          chartfile.Size    `json:"size" yaml:"size"`
	Range         polyview.Range    `json:"range" yaml:"range"`
	Highlight     *polyview.Range   `json:"highlight,omitempty" yaml:"highlight,omitempty"`
	Style         map[string]string `json:"style" yaml:"style"`
	ScreenPoints  [][]float64       `json:"screenPoints" yaml:"screenPoints,flow"`
	Midpoints     [][]float64       `json:"midpoints,omitempty" yaml:"midpoints,omitempty,flow"`
	Outline       string            `json:"outline,omitempty" yaml:"outline,omitempty"`
	HighlightPath string            `json:"highlightPath,omitempty" yaml:"highlightPath,omitempty"`
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "inspect -f <chart.yaml>",
		Short: "Show the screen geometry of a chart",
		Long: heredoc.Doc(`
			Print the screen points, the outline and the clipped highlight
			derived from a chart file.  Paths are given as SVG path data.
		`),
		Example: heredoc.Doc(`
			# Show the geometry as JSON
			$ polyview inspect -f chart.yaml

			# Show the geometry as YAML
			$ polyview inspect -f chart.yaml --format yaml
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, v, err := cliutil.LoadChart(file)
			if err != nil {
				return err
			}
			return cliutil.HandleOutput(cmd, NewReport(chart, v))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the chart file (required)")
	cmd.Flags().String("format", "json", "Output format. Accepts 'json' or 'yaml'")
	cmd.MarkFlagRequired("file")

	return cmd
}

// NewReport collects the geometry of v.
func NewReport(chart *chartfile.Chart, v *polyview.View) *Report {
	r := &Report{
		Size:         chart.Size,
		Style:        v.Config().Attributes(),
		ScreenPoints: points(v.ScreenPoints()),
		Midpoints:    points(v.Midpoints()),
		Outline:      pathfmt.String(v.Outline(), precision),
	}
	r.Range, _ = v.Range()
	if hl, ok := v.HighlightRange(); ok {
		r.Highlight = &hl
		r.HighlightPath = pathfmt.String(v.Highlight(), precision)
	}
	return r
}

// precision is the number of decimal places used for path data.
const precision = 2

func points(pts []vec.Vec2) [][]float64 {
	if pts == nil {
		return nil
	}
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}

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

// Command polyviewdemo shows a chart in a desktop window.
//
// Usage:
//
//	polyviewdemo [chart.yaml]
//
// Without an argument a built-in data set is shown.
package main

import (
	"log/slog"
	"math"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/chartfile"
	"seehuhn.de/go/polyview/fynechart"
)

func main() {
	polyview.SetLogger(slog.New(log.Default()))

	chart, err := loadChart(os.Args[1:])
	if err != nil {
		log.Fatal("cannot load chart", "error", err)
	}
	v, err := chart.NewView(polyview.DefaultConfig())
	if err != nil {
		log.Fatal("cannot create chart view", "error", err)
	}

	hl := highlightRange(chart)

	a := app.New()
	w := a.NewWindow("polyview")

	c := fynechart.New(v)
	c.SetMinSize(fyne.NewSize(float32(chart.Size.Width), float32(chart.Size.Height)))
	c.SetBackground(theme.Color(theme.ColorNameBackground))

	curved := widget.NewCheck("Curved", func(on bool) {
		if on {
			v.SetVertexType(polyview.Curved)
		} else {
			v.SetVertexType(polyview.Sharp)
		}
	})
	curved.SetChecked(v.VertexType() == polyview.Curved)

	highlight := widget.NewCheck("Highlight", func(on bool) {
		if on {
			v.SetHighlightRange(hl.Start, hl.End)
		} else {
			v.ClearHighlightRange()
		}
	})
	_, hasHighlight := v.HighlightRange()
	highlight.SetChecked(hasHighlight)

	controls := container.NewHBox(curved, highlight, layout.NewSpacer())
	w.SetContent(container.NewBorder(nil, container.NewPadded(controls), nil, nil, c))
	w.Resize(fyne.NewSize(float32(chart.Size.Width)+40, float32(chart.Size.Height)+80))
	w.ShowAndRun()
}

func loadChart(args []string) (*chartfile.Chart, error) {
	if len(args) > 0 {
		return chartfile.ReadFile(args[0])
	}
	return sampleChart(), nil
}

// sampleChart returns a chart with a smooth, bumpy data series.
func sampleChart() *chartfile.Chart {
	c := &chartfile.Chart{
		Size:  chartfile.Size{Width: 480, Height: 240},
		Range: &polyview.Range{Start: 0, End: 24},
		Style: map[string]string{
			polyview.AttrStrokeWidth:          "2",
			polyview.AttrStrokeColor:          "#336699",
			polyview.AttrColor:                "#a0c0e0",
			polyview.AttrHighlightColor:       "#f0a030",
			polyview.AttrHighlightStrokeColor: "#a06010",
			polyview.AttrHighlightStrokeWidth: "1",
		},
	}
	for i := range 25 {
		x := float64(i)
		y := 3 + 2*math.Sin(x/3) + math.Cos(x/1.3)
		c.Data = append(c.Data, []float64{x, y})
	}
	return c
}

// highlightRange returns the highlight of the chart, or the middle third
// of its range if none is set.
func highlightRange(c *chartfile.Chart) polyview.Range {
	if c.Highlight != nil {
		return *c.Highlight
	}
	r := c.DataRange()
	if c.Range != nil {
		r = *c.Range
	}
	third := (r.End - r.Start) / 3
	return polyview.Range{Start: r.Start + third, End: r.End - third}
}

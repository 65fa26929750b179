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

// Package chartfile reads chart descriptions from YAML files.
//
// A chart file looks like this:
//
//	size: {width: 320, height: 200}
//	range: {start: 0, end: 3}
//	highlight: {start: 1, end: 2}
//	style:
//	  color: "#cccccc"
//	  strokeWidth: 2
//	  vertexType: curved
//	data: [[0, 0], [1, 5], [2, 3], [3, 8]]
//
// The highlight and style sections are optional.  Style keys are the
// attribute names understood by [polyview.Config.WithAttributes].
package chartfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/polyview"
)

// Size is the size of a chart in pixels.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Chart is the content of a chart file.
type Chart struct {
	Size      Size              `yaml:"size"`
	Range     *polyview.Range   `yaml:"range,omitempty"`
	Highlight *polyview.Range   `yaml:"highlight,omitempty"`
	Style     map[string]string `yaml:"style,omitempty"`
	Data      [][]float64       `yaml:"data"`
}

// Load decodes and validates a chart from r.
func Load(r io.Reader) (*Chart, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	c := &Chart{}
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty chart file")
		}
		return nil, fmt.Errorf("failed to parse chart: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// ReadFile loads the chart stored in the named file.
func ReadFile(name string) (*Chart, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Validate checks the chart for structural errors.
func (c *Chart) Validate() error {
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Size.Width, c.Size.Height)
	}
	for i, p := range c.Data {
		if len(p) != 2 {
			return fmt.Errorf("data point %d: expected [x, y], got %d values", i, len(p))
		}
		if !finite(p[0]) || !finite(p[1]) {
			return fmt.Errorf("data point %d: non-finite coordinate", i)
		}
	}
	if r := c.Range; r != nil && !(finite(r.Start) && finite(r.End) && r.Start <= r.End) {
		return fmt.Errorf("invalid range [%g, %g]", r.Start, r.End)
	}
	if r := c.Highlight; r != nil && !(finite(r.Start) && finite(r.End)) {
		return fmt.Errorf("invalid highlight [%g, %g]", r.Start, r.End)
	}
	if _, err := polyview.ParseAttributes(c.Style); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Points returns the data as vectors.
func (c *Chart) Points() []vec.Vec2 {
	pts := make([]vec.Vec2, len(c.Data))
	for i, p := range c.Data {
		pts[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return pts
}

// DataRange returns the range of x-values covered by the data.
func (c *Chart) DataRange() polyview.Range {
	if len(c.Data) == 0 {
		return polyview.Range{}
	}
	r := polyview.Range{Start: c.Data[0][0], End: c.Data[0][0]}
	for _, p := range c.Data[1:] {
		r.Start = min(r.Start, p[0])
		r.End = max(r.End, p[0])
	}
	return r
}

// NewView returns a View showing the chart.  The style attributes of the
// chart are applied on top of base.  If the file has no range, the data
// range is used.
func (c *Chart) NewView(base polyview.Config) (*polyview.View, error) {
	cfg, err := base.WithAttributes(c.Style)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	r := c.DataRange()
	if c.Range != nil {
		r = *c.Range
	}

	v := polyview.New(cfg)
	v.Resize(c.Size.Width, c.Size.Height)
	if err := v.SetRange(r.Start, r.End); err != nil {
		return nil, err
	}
	v.SetData(c.Points())
	if c.Highlight != nil {
		v.SetHighlightRange(c.Highlight.Start, c.Highlight.End)
	}
	return v, nil
}

// Encode writes c as YAML.
func (c *Chart) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

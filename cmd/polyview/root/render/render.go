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

package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/chartfile"
	"seehuhn.de/go/polyview/imagecanvas"
	"seehuhn.de/go/polyview/internal/cliutil"
	"seehuhn.de/go/polyview/pdfcanvas"
)

type options struct {
	file       string
	output     string
	format     string
	scale      float64
	background string
}

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "render -f <chart.yaml> -o <output>",
		Short: "Render a chart to PNG or PDF",
		Long: heredoc.Doc(`
			Render a chart file as a PNG image or a PDF page.  The format is
			taken from the output file name unless --format is given.
		`),
		Example: heredoc.Doc(`
			# Render a chart as PNG
			$ polyview render -f chart.yaml -o chart.png

			# Render at twice the resolution
			$ polyview render -f chart.yaml -o chart@2x.png --scale 2

			# Render as vector graphics
			$ polyview render -f chart.yaml -o chart.pdf
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scale") && viper.IsSet("render.scale") {
				opts.scale = viper.GetFloat64("render.scale")
			}
			if !cmd.Flags().Changed("background") && viper.IsSet("render.background") {
				opts.background = viper.GetString("render.background")
			}
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the chart file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (required)")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: png or pdf (default from the file name)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "Pixels per chart unit for PNG output")
	cmd.Flags().StringVar(&opts.background, "background", "white", "Background colour for PNG output")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("output")

	return cmd
}

func run(opts *options) error {
	format := opts.format
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	}

	chart, v, err := cliutil.LoadChart(opts.file)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		err = writePNG(opts, chart, v)
	case "pdf":
		err = pdfcanvas.WriteFile(opts.output, v, float64(chart.Size.Width), float64(chart.Size.Height))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return err
	}
	log.Info("Rendered chart", "file", opts.output, "format", format)
	return nil
}

func writePNG(opts *options, chart *chartfile.Chart, v *polyview.View) (err error) {
	if !(opts.scale > 0) || math.IsInf(opts.scale, 0) {
		return fmt.Errorf("invalid scale %g", opts.scale)
	}
	bg, err := polyview.ParseColor(opts.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	w := int(math.Ceil(float64(chart.Size.Width) * opts.scale))
	h := int(math.Ceil(float64(chart.Size.Height) * opts.scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := imagecanvas.New(img)
	c.Transform = matrix.Matrix{opts.scale, 0, 0, opts.scale, 0, 0}
	c.Clear(bg)
	if err := v.Draw(c); err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

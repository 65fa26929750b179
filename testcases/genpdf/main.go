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

// Command genpdf generates reference output for the chart test cases.
// It writes one PDF per test case and, if Ghostscript is installed,
// renders each PDF to a PNG.
package main

import (
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/pdfcanvas"
	"seehuhn.de/go/polyview/testcases"
)

const refDir = "testdata/reference"

func main() {
	polyview.SetLogger(slog.New(log.Default()))

	if err := os.MkdirAll(refDir, 0755); err != nil {
		log.Fatal("cannot create output directory", "error", err)
	}

	gs, err := exec.LookPath("gs")
	if err != nil {
		log.Warn("Ghostscript not found, skipping PNG output")
		gs = ""
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			v, err := tc.NewView()
			if err != nil {
				log.Fatal("invalid test case", "name", name, "error", err)
			}
			if v.Outline() == nil {
				log.Debug("no geometry, skipped", "name", name)
				continue
			}

			pdfPath := filepath.Join(refDir, name+".pdf")
			w, h := float64(tc.Chart.Size.Width), float64(tc.Chart.Size.Height)
			if err := pdfcanvas.WriteFile(pdfPath, v, w, h); err != nil {
				log.Fatal("cannot write PDF", "name", name, "error", err)
			}

			if gs == "" {
				continue
			}
			pngPath := filepath.Join(refDir, name+".png")
			if err := renderPNG(gs, pdfPath, pngPath); err != nil {
				log.Fatal("cannot render PNG", "name", name, "error", err)
			}
		}
	}
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale, matching the PDF colour space
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

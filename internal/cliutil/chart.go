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

package cliutil

import (
	"fmt"

	"github.com/spf13/viper"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/chartfile"
)

// BaseConfig returns the default chart style, modified by the style
// section of the configuration file.
func BaseConfig() (polyview.Config, error) {
	cfg, err := polyview.ParseAttributes(viper.GetStringMapString("style"))
	if err != nil {
		return polyview.Config{}, fmt.Errorf("config file style: %w", err)
	}
	return cfg, nil
}

// LoadChart reads a chart file and returns it together with a View
// showing it.
func LoadChart(name string) (*chartfile.Chart, *polyview.View, error) {
	base, err := BaseConfig()
	if err != nil {
		return nil, nil, err
	}
	c, err := chartfile.ReadFile(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read chart: %w", err)
	}
	v, err := c.NewView(base)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, v, nil
}

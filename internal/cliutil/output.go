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

// Package cliutil holds helpers shared by the polyview commands.
package cliutil

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// HandleOutput writes v to the command output, formatted according to
// the --format flag of cmd.  Supported formats are json and yaml.
func HandleOutput(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("format")

	var output []byte
	var err error
	switch format {
	case "yaml":
		output, err = yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case "json", "":
		output, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		output = append(output, '\n')
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	_, err = cmd.OutOrStdout().Write(output)
	return err
}

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
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func run(t *testing.T, format string, v any) (string, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("format", "json", "")
	if err := cmd.Flags().Set("format", format); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	err := HandleOutput(cmd, v)
	return buf.String(), err
}

func TestHandleOutput(t *testing.T) {
	v := map[string]any{"version": "dev", "n": 3}

	out, err := run(t, "json", v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"version": "dev"`) {
		t.Errorf("json output %q", out)
	}

	out, err = run(t, "yaml", v)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "version: dev\n") {
		t.Errorf("yaml output %q", out)
	}

	if _, err := run(t, "xml", v); err == nil {
		t.Error("unknown format accepted")
	}
}

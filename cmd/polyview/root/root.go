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

package root

import (
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seehuhn.de/go/polyview"
	"seehuhn.de/go/polyview/cmd/polyview/root/inspect"
	"seehuhn.de/go/polyview/cmd/polyview/root/render"
	"seehuhn.de/go/polyview/cmd/polyview/root/version"
)

// NewRootCmd creates the polyview command with all subcommands.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "polyview <command> [flags]",
		Short: "Render filled polygon charts",
		Long: heredoc.Doc(`
			Render area charts described in YAML chart files.

			Default style attributes can be set in the style section of the
			config file, for example:

			  style:
			    color: "#cccccc"
			    strokeWidth: 1
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") && viper.IsSet("log-level") {
				logLevel = viper.GetString("log-level")
			}
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)
			polyview.SetLogger(slog.New(log.Default()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(render.NewRenderCmd())
	cmd.AddCommand(inspect.NewInspectCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}

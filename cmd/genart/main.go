// seehuhn.de/go/genart - generative art demos
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

// Genart renders generative art pictures to PNG files.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/genart/internal/cli"
	"seehuhn.de/go/genart/internal/logging"
)

func main() {
	var logLevel string

	var rootCmd = &cobra.Command{
		Use:           "genart",
		Short:         "Generative art demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(os.Stderr, logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error or none")
	rootCmd.AddCommand(cli.RenderCommand(), cli.DefaultsCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("genart failed")
		os.Exit(1)
	}
}

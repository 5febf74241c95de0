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

package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/genart"
)

var (
	errMissingValue = errors.New("expected id=value")
	errScale        = errors.New("scale must be at least 1")
)

func DefaultsCommand() *cobra.Command {
	var art, fractal string
	var defaultsCmd = &cobra.Command{
		Use:   "defaults",
		Short: "Print the default scene",
		Long:  `Print the default scene as YAML, for use with render --scene`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Defaults(cmd.OutOrStdout(), art, fractal)
		},
	}
	defaultsCmd.Flags().StringVar(&art, "art", "fractal", "art type to select in the scene")
	defaultsCmd.Flags().StringVar(&fractal, "fractal", "tree", "fractal type to select in the scene")
	return defaultsCmd
}

// Defaults writes the default scene with the given selection to w.
func Defaults(w io.Writer, art, fractal string) error {
	scene := genart.DefaultScene()
	var err error
	scene.Art, err = genart.ParseArtType(art)
	if err != nil {
		return err
	}
	scene.Fractal, err = genart.ParseFractalType(fractal)
	if err != nil {
		return err
	}
	return scene.WriteYAML(w)
}

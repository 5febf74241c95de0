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

// Package cli implements the commands of the genart tool.
package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"seehuhn.de/go/genart"
	"seehuhn.de/go/genart/surface"
)

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	Scene   string
	Art     string
	Fractal string
	Set     []string
	Seed    uint64
	Scale   int
	Output  string
}

func RenderCommand() *cobra.Command {
	opts := &RenderOptions{}
	var renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a picture to a PNG file",
		Long: `Render a picture to a PNG file.

Options are read from the scene file, if given, and then overridden by the
--art, --fractal and --set flags.  The --set flag uses the form field ids,
for example --set treeDepth=10 --set treeColored=true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Render(opts)
		},
	}
	renderCmd.Flags().StringVarP(&opts.Scene, "scene", "s", "", "path to YAML scene file")
	renderCmd.Flags().StringVar(&opts.Art, "art", "", "art type: fractal or mosaic")
	renderCmd.Flags().StringVar(&opts.Fractal, "fractal", "", "fractal type: tree, colorField or stretchedField")
	renderCmd.Flags().StringArrayVar(&opts.Set, "set", nil, "set an option, as id=value")
	renderCmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for the session random number generator (0 for random)")
	renderCmd.Flags().IntVar(&opts.Scale, "scale", 1, "enlarge the output by this integer factor")
	renderCmd.Flags().StringVarP(&opts.Output, "output", "o", "genart.png", "output file")
	return renderCmd
}

// BuildScene combines the scene file with the command line overrides.
func BuildScene(opts *RenderOptions) (genart.Scene, error) {
	scene := genart.DefaultScene()
	if opts.Scene != "" {
		f, err := os.Open(opts.Scene)
		if err != nil {
			return genart.Scene{}, err
		}
		defer f.Close()
		scene, err = genart.LoadScene(f)
		if err != nil {
			return genart.Scene{}, fmt.Errorf("%s: %w", opts.Scene, err)
		}
	}

	if opts.Art != "" {
		a, err := genart.ParseArtType(opts.Art)
		if err != nil {
			return genart.Scene{}, err
		}
		scene.Art = a
	}
	if opts.Fractal != "" {
		f, err := genart.ParseFractalType(opts.Fractal)
		if err != nil {
			return genart.Scene{}, err
		}
		scene.Fractal = f
	}

	for _, kv := range opts.Set {
		id, value, ok := strings.Cut(kv, "=")
		if !ok {
			return genart.Scene{}, &genart.ConfigError{Field: "set", Value: kv, Err: errMissingValue}
		}
		if err := scene.Config.Set(id, value); err != nil {
			return genart.Scene{}, err
		}
	}
	if err := scene.Config.Validate(); err != nil {
		return genart.Scene{}, err
	}
	if opts.Scale < 1 {
		return genart.Scene{}, &genart.ConfigError{Field: "scale", Value: fmt.Sprint(opts.Scale), Err: errScale}
	}
	return scene, nil
}

// Render draws the scene described by opts and writes the PNG file.
func Render(opts *RenderOptions) error {
	scene, err := BuildScene(opts)
	if err != nil {
		return err
	}

	sess := genart.NewSession(opts.Seed)
	sess.SelectArt(scene.Art)
	sess.SelectFractal(scene.Fractal)
	log.Debug().Str("selection", sess.Selection().String()).
		Int("width", scene.Config.Width).Int("height", scene.Config.Height).
		Msg("rendering")

	canvas := surface.NewCanvas(scene.Config.Width, scene.Config.Height)
	if err := sess.Draw(canvas, scene.Config); err != nil {
		return err
	}

	img := scaleImage(canvas.Image(), opts.Scale)
	if err := writePNG(opts.Output, img); err != nil {
		return err
	}
	log.Info().Str("file", opts.Output).Str("selection", sess.Selection().String()).Msg("picture written")
	return nil
}

// scaleImage enlarges img by an integer factor without smoothing.
func scaleImage(img *image.RGBA, k int) image.Image {
	if k == 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*k, b.Dy()*k))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

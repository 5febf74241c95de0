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

package genart

import (
	"math/rand/v2"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genart/field"
	"seehuhn.de/go/genart/mosaic"
	"seehuhn.de/go/genart/sample"
	"seehuhn.de/go/genart/surface"
	"seehuhn.de/go/genart/tree"
)

// Session owns the state of one drawing area: the current selection and
// the random number generator used for mosaics.  A Session must not be
// used concurrently.
type Session struct {
	Selector

	rng *rand.Rand

	drawTree   func(surface.Surface, tree.Params) (int, error)
	drawField  func(surface.Surface, field.Params) error
	drawMosaic func(surface.Surface, sample.Source, RenderConfig) error
}

// NewSession returns an idle session.  If seed is zero, the random number
// generator is seeded randomly.
func NewSession(seed uint64) *Session {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Session{
		rng:        newRand(seed),
		drawTree:   tree.Render,
		drawField:  field.Render,
		drawMosaic: renderMosaic,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Draw clears dst and paints the selected art.  If nothing drawable is
// selected, dst is only cleared.
//
// On error, dst is left cleared.  Configuration problems match
// ErrInvalidConfiguration, and mosaics asking for too many cells match
// ErrSamplingExhausted.
func (s *Session) Draw(dst surface.Surface, cfg RenderConfig) error {
	dst.Clear()

	sel := s.Selection()
	log := Logger().With("art", sel.String())

	var render func() error
	switch sel.Art {
	case ArtFractal:
		switch sel.Fractal {
		case FractalTree:
			render = func() error {
				n, err := s.drawTree(dst, treeParams(cfg))
				log.Debug("tree drawn", "branches", n)
				return err
			}
		case FractalColorField, FractalStretchedField:
			render = func() error {
				return s.drawField(dst, fieldParams(sel.Fractal, cfg))
			}
		}
	case ArtMosaic:
		src := sample.Source(s.rng)
		if cfg.Seed != 0 {
			src = newRand(cfg.Seed)
		}
		render = func() error {
			return s.drawMosaic(dst, src, cfg)
		}
	}
	if render == nil {
		log.Debug("nothing selected")
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return render()
}

func treeParams(cfg RenderConfig) tree.Params {
	return tree.Params{
		Depth:   cfg.Depth,
		X:       float64(cfg.Width) / 2,
		Y:       float64(cfg.Height),
		Length:  float64(cfg.Height) / 4,
		Angle1:  cfg.Angle1,
		Angle2:  cfg.Angle2,
		Colored: cfg.Colored,
		Growth:  cfg.Growth,
		Width:   cfg.LineWidth,
		Taper:   cfg.Taper,
		Cap:     graphics.LineCapStyle(cfg.LineCap),
	}
}

func fieldParams(f FractalType, cfg RenderConfig) field.Params {
	kind := field.XOR
	if f == FractalStretchedField {
		kind = field.Stretched
	}
	return field.Params{
		Kind:   kind,
		Width:  cfg.Width,
		Height: cfg.Height,
		Zoom:   cfg.Zoom,
		Dim:    cfg.Dim,
	}
}

// renderMosaic generates the whole mosaic before touching dst, so that a
// sampling failure leaves dst unchanged.
func renderMosaic(dst surface.Surface, src sample.Source, cfg RenderConfig) error {
	m, err := mosaic.Generate(src, cfg.LineCount, cfg.RectangleCount, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	log := Logger()
	log.Debug("mosaic generated", "lines", len(m.Lines), "cells", len(m.Cells))
	for i, c := range m.Cells {
		if c.Degenerate() {
			log.Warn("degenerate mosaic cell", "cell", i,
				"x", c.X, "y", c.Y, "width", c.Width, "height", c.Height)
		}
	}

	dst.SetLineWidth(cfg.LineWidth)
	dst.SetLineCap(graphics.LineCapStyle(cfg.LineCap))
	m.Draw(dst)
	return nil
}

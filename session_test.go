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
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genart/field"
	"seehuhn.de/go/genart/sample"
	"seehuhn.de/go/genart/surface"
	"seehuhn.de/go/genart/tree"
)

type calls struct {
	tree, field, mosaic int
}

// countingSession replaces the renderers of a session by counters.
func countingSession(t *testing.T) (*Session, *calls) {
	t.Helper()
	s := NewSession(1)
	c := &calls{}
	s.drawTree = func(surface.Surface, tree.Params) (int, error) {
		c.tree++
		return 0, nil
	}
	s.drawField = func(surface.Surface, field.Params) error {
		c.field++
		return nil
	}
	s.drawMosaic = func(surface.Surface, sample.Source, RenderConfig) error {
		c.mosaic++
		return nil
	}
	return s, c
}

func TestDispatchMosaic(t *testing.T) {
	s, c := countingSession(t)
	s.SelectArt(ArtMosaic)
	s.SelectFractal(FractalTree) // ignored for mosaics

	rec := surface.NewRecorder(300, 300)
	require.NoError(t, s.Draw(rec, DefaultConfig()))

	assert.Equal(t, calls{mosaic: 1}, *c)
	assert.Equal(t, 1, rec.Clears)
}

func TestDispatchFractals(t *testing.T) {
	s, c := countingSession(t)
	s.SelectArt(ArtFractal)
	rec := surface.NewRecorder(300, 300)

	s.SelectFractal(FractalTree)
	require.NoError(t, s.Draw(rec, DefaultConfig()))
	s.SelectFractal(FractalColorField)
	require.NoError(t, s.Draw(rec, DefaultConfig()))
	s.SelectFractal(FractalStretchedField)
	require.NoError(t, s.Draw(rec, DefaultConfig()))

	assert.Equal(t, calls{tree: 1, field: 2}, *c)
	assert.Equal(t, 3, rec.Clears)
}

func TestDispatchNothing(t *testing.T) {
	for _, sel := range []Selection{
		{},
		{Art: ArtFractal},
		{Art: ArtFractal, Fractal: FractalType(99)},
		{Art: ArtType(99), Fractal: FractalTree},
		{Art: ArtNone, Fractal: FractalTree},
	} {
		s, c := countingSession(t)
		s.SelectArt(sel.Art)
		s.SelectFractal(sel.Fractal)

		rec := surface.NewRecorder(300, 300)
		err := s.Draw(rec, DefaultConfig())
		require.NoError(t, err, sel.String())

		assert.Equal(t, calls{}, *c, sel.String())
		assert.Equal(t, 1, rec.Clears, sel.String())
		assert.Zero(t, rec.DrawCalls(), sel.String())
	}
}

func TestDispatchNothingIgnoresConfig(t *testing.T) {
	s := NewSession(1)
	rec := surface.NewRecorder(300, 300)
	cfg := DefaultConfig()
	cfg.Depth = -1
	assert.NoError(t, s.Draw(rec, cfg))
}

func TestDrawTree(t *testing.T) {
	s := NewSession(1)
	s.SelectArt(ArtFractal)
	s.SelectFractal(FractalTree)

	cfg := DefaultConfig()
	cfg.Depth = 2
	rec := surface.NewRecorder(cfg.Width, cfg.Height)
	require.NoError(t, s.Draw(rec, cfg))

	assert.Equal(t, 7, rec.Strokes)
	require.Len(t, rec.Segments, 7)
	// the trunk stands in the middle of the bottom edge
	assert.InDelta(t, 150, rec.Segments[0].From.X, 1e-9)
	assert.InDelta(t, 300, rec.Segments[0].From.Y, 1e-9)
	assert.InDelta(t, 225, rec.Segments[0].To.Y, 1e-9)
}

func TestDrawLineStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Depth = 1
	cfg.LineWidth = 4
	cfg.LineCap = LineCap(graphics.LineCapRound)
	cfg.Taper = true

	s := NewSession(1)
	s.SelectArt(ArtFractal)
	s.SelectFractal(FractalTree)
	rec := surface.NewRecorder(cfg.Width, cfg.Height)
	require.NoError(t, s.Draw(rec, cfg))
	require.Len(t, rec.Segments, 3)
	assert.Equal(t, 4.0, rec.Segments[0].Width)
	assert.InDelta(t, 4*tree.Shrink, rec.Segments[1].Width, 1e-12)
	for _, seg := range rec.Segments {
		assert.Equal(t, graphics.LineCapRound, seg.Cap)
	}

	cfg.Seed = 3
	cfg.LineCap = LineCap(graphics.LineCapSquare)
	s.SelectArt(ArtMosaic)
	require.NoError(t, s.Draw(rec, cfg))
	require.Len(t, rec.Segments, cfg.LineCount)
	for _, seg := range rec.Segments {
		assert.Equal(t, 4.0, seg.Width)
		assert.Equal(t, graphics.LineCapSquare, seg.Cap)
	}
}

func TestDrawField(t *testing.T) {
	s := NewSession(1)
	s.SelectArt(ArtFractal)
	s.SelectFractal(FractalStretchedField)

	cfg := DefaultConfig()
	cfg.Width = 4
	cfg.Height = 3
	rec := surface.NewRecorder(cfg.Width, cfg.Height)
	require.NoError(t, s.Draw(rec, cfg))

	assert.Equal(t, 12, rec.Fills)
	assert.Zero(t, rec.Strokes)
}

func TestDrawMosaicSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	var recs []*surface.Recorder
	for sessionSeed := range uint64(2) {
		s := NewSession(sessionSeed + 1)
		s.SelectArt(ArtMosaic)
		rec := surface.NewRecorder(cfg.Width, cfg.Height)
		require.NoError(t, s.Draw(rec, cfg))
		recs = append(recs, rec)
	}

	assert.Equal(t, cfg.LineCount, recs[0].Strokes)
	assert.Equal(t, cfg.RectangleCount, recs[0].Fills)
	assert.Equal(t, recs[0].Segments, recs[1].Segments)
	assert.Equal(t, recs[0].Rects, recs[1].Rects)
}

func TestErrorLeavesSurfaceCleared(t *testing.T) {
	type testCase struct {
		name string
		sel  Selection
		cfg  func(*RenderConfig)
		want error
	}
	cases := []testCase{
		{
			name: "tree depth",
			sel:  Selection{Art: ArtFractal, Fractal: FractalTree},
			cfg:  func(c *RenderConfig) { c.Depth = tree.MaxDepth + 1 },
			want: ErrInvalidConfiguration,
		},
		{
			name: "zoom",
			sel:  Selection{Art: ArtFractal, Fractal: FractalColorField},
			cfg:  func(c *RenderConfig) { c.Zoom = 0.5 },
			want: ErrInvalidConfiguration,
		},
		{
			name: "too many cells",
			sel:  Selection{Art: ArtMosaic},
			cfg:  func(c *RenderConfig) { c.RectangleCount = 20 },
			want: ErrSamplingExhausted,
		},
		{
			name: "negative lines",
			sel:  Selection{Art: ArtMosaic},
			cfg:  func(c *RenderConfig) { c.LineCount = -1 },
			want: ErrInvalidConfiguration,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(7)
			s.SelectArt(tc.sel.Art)
			s.SelectFractal(tc.sel.Fractal)

			cfg := DefaultConfig()
			tc.cfg(&cfg)
			rec := surface.NewRecorder(cfg.Width, cfg.Height)
			err := s.Draw(rec, cfg)

			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, rec.Clears)
			assert.Zero(t, rec.DrawCalls())
		})
	}
}

func TestLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewSession(3)
	require.NoError(t, s.Draw(surface.NewRecorder(10, 10), DefaultConfig()))
	assert.Contains(t, buf.String(), "nothing selected")

	SetLogger(nil)
	buf.Reset()
	require.NoError(t, s.Draw(surface.NewRecorder(10, 10), DefaultConfig()))
	assert.Empty(t, buf.String())
}

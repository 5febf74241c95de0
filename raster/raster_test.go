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

package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// collect renders into a w×h float buffer.
func collect(w, h int) ([]float32, EmitFunc) {
	buf := make([]float32, w*h)
	return buf, func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	}
}

func sum(buf []float32) float64 {
	var total float64
	for _, c := range buf {
		total += float64(c)
	}
	return total
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The diagonal edge is y = x/10, so pixel x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&Builder{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	buf, emit := collect(10, 1)
	r.FillNonZero(p.Path(), emit)

	for x := range 10 {
		want := float64(2*x+1) / 20
		assert.InDelta(t, want, buf[x], 1e-6, "pixel %d", x)
	}
}

func TestFillRectangleUnderCTM(t *testing.T) {
	p := (&Builder{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 2}).
		LineTo(vec.Vec2{X: 0, Y: 2}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 16, URy: 16})
	r.CTM = matrix.Scale(2, 2).Translate(3, 5)
	buf, emit := collect(16, 16)
	r.FillNonZero(p.Path(), emit)

	for y := range 16 {
		for x := range 16 {
			want := float32(0)
			if x >= 3 && x < 11 && y >= 5 && y < 9 {
				want = 1
			}
			require.InDelta(t, want, buf[y*16+x], 1e-6, "pixel (%d,%d)", x, y)
		}
	}
}

func TestFillClipped(t *testing.T) {
	p := (&Builder{}).
		MoveTo(vec.Vec2{X: -10, Y: -10}).
		LineTo(vec.Vec2{X: 20, Y: -10}).
		LineTo(vec.Vec2{X: 20, Y: 20}).
		LineTo(vec.Vec2{X: -10, Y: 20})

	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	buf, emit := collect(4, 4)
	r.FillNonZero(p.Path(), emit)

	for i, c := range buf {
		assert.InDelta(t, 1, c, 1e-6, "pixel %d", i)
	}
}

func TestStrokeArea(t *testing.T) {
	type testCase struct {
		name string
		cap  graphics.LineCapStyle
		want float64
	}
	cases := []testCase{
		{"butt", graphics.LineCapButt, 20 * 2},
		{"square", graphics.LineCapSquare, 22 * 2},
		// two half circles of radius 1, approximated by arcSteps chords
		{"round", graphics.LineCapRound, 20*2 + float64(arcSteps)*math.Sin(math.Pi/arcSteps)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := (&Builder{}).
				MoveTo(vec.Vec2{X: 10, Y: 16}).
				LineTo(vec.Vec2{X: 30, Y: 16})

			r := NewRasteriser(rect.Rect{URx: 40, URy: 32})
			r.Width = 2
			r.Cap = tc.cap
			buf, emit := collect(40, 32)
			r.Stroke(p.Path(), emit)

			assert.InDelta(t, tc.want, sum(buf), 1e-3)
		})
	}
}

// TestStrokeHalfPixel checks that a unit-width line on a pixel boundary
// covers both neighbouring columns by one half.
func TestStrokeHalfPixel(t *testing.T) {
	p := (&Builder{}).
		MoveTo(vec.Vec2{X: 5, Y: 0}).
		LineTo(vec.Vec2{X: 5, Y: 8})

	r := NewRasteriser(rect.Rect{URx: 10, URy: 8})
	buf, emit := collect(10, 8)
	r.Stroke(p.Path(), emit)

	for y := range 8 {
		assert.InDelta(t, 0.5, buf[y*10+4], 1e-6)
		assert.InDelta(t, 0.5, buf[y*10+5], 1e-6)
		assert.Zero(t, buf[y*10+3])
		assert.Zero(t, buf[y*10+6])
	}
}

func TestStrokeOverlapPaintedOnce(t *testing.T) {
	p := (&Builder{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 18, Y: 5}).
		LineTo(vec.Vec2{X: 2, Y: 5})

	r := NewRasteriser(rect.Rect{URx: 20, URy: 10})
	r.Width = 2
	buf, emit := collect(20, 10)
	r.Stroke(p.Path(), emit)

	for _, c := range buf {
		require.LessOrEqual(t, c, float32(1))
	}
	assert.InDelta(t, 32, sum(buf), 1e-3)
}

func TestStrokeDegenerate(t *testing.T) {
	p := (&Builder{}).
		MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 3, Y: 3})

	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	called := false
	r.Stroke(p.Path(), func(int, int, []float32) { called = true })
	assert.False(t, called)
}

// TestAgainstVector compares a rotated square with golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 48
	corners := []vec.Vec2{{X: -12, Y: -12}, {X: 12, Y: -12}, {X: 12, Y: 12}, {X: -12, Y: 12}}
	m := matrix.Rotate(0.3).Translate(24.3, 23.7)

	p := &Builder{}
	p.MoveTo(corners[0])
	for _, v := range corners[1:] {
		p.LineTo(v)
	}
	p.Close()

	r := NewRasteriser(rect.Rect{URx: size, URy: size})
	r.CTM = m
	buf, emit := collect(size, size)
	r.FillNonZero(p.Path(), emit)

	vr := vector.NewRasterizer(size, size)
	for i, v := range corners {
		x, y := m.Apply(v.X, v.Y)
		if i == 0 {
			vr.MoveTo(float32(x), float32(y))
		} else {
			vr.LineTo(float32(x), float32(y))
		}
	}
	vr.ClosePath()
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	vr.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	for y := range size {
		for x := range size {
			ours := int(buf[y*size+x]*255 + 0.5)
			theirs := int(dst.Pix[y*dst.Stride+x])
			require.InDelta(t, theirs, ours, 3, "pixel (%d,%d)", x, y)
		}
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	r.Width = 7
	r.Cap = graphics.LineCapRound

	clip := rect.Rect{URx: 9, URy: 9}
	r.Reset(clip)
	assert.Equal(t, matrix.Identity, r.CTM)
	assert.Equal(t, clip, r.Clip)
	assert.Equal(t, 1.0, r.Width)
	assert.Equal(t, graphics.LineCapButt, r.Cap)
}

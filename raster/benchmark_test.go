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
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// ringPoints returns n points on a circle, counter-clockwise on screen if
// reverse is false.
func ringPoints(cx, cy, r float64, n int, reverse bool) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			phi = -phi
		}
		pts[i] = vec.Vec2{X: cx + r*math.Cos(phi), Y: cy - r*math.Sin(phi)}
	}
	return pts
}

// makeRing builds an annulus from two polygons of opposite orientation.
func makeRing(size int) (path.Path, [][]vec.Vec2) {
	c := float64(size) / 2
	rings := [][]vec.Vec2{
		ringPoints(c, c, float64(size)*0.45, 64, false),
		ringPoints(c, c, float64(size)*0.30, 64, true),
	}
	p := &Builder{}
	for _, ring := range rings {
		p.MoveTo(ring[0])
		for _, v := range ring[1:] {
			p.LineTo(v)
		}
		p.Close()
	}
	return p.Path(), rings
}

// BenchmarkFillRing benchmarks our rasteriser filling an annulus.
func BenchmarkFillRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			p, _ := makeRing(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorRing benchmarks x/image/vector filling the same annulus.
func BenchmarkVectorRing(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			_, rings := makeRing(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for _, ring := range rings {
					r.MoveTo(float32(ring[0].X), float32(ring[0].Y))
					for _, v := range ring[1:] {
						r.LineTo(float32(v.X), float32(v.Y))
					}
					r.ClosePath()
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeFan strokes a fan of short segments, similar to the
// outer levels of a tree.
func BenchmarkStrokeFan(b *testing.B) {
	const size = 300
	clip := rect.Rect{URx: size, URy: size}
	p := &Builder{}
	centre := vec.Vec2{X: size / 2, Y: size / 2}
	for _, v := range ringPoints(size/2, size/2, 140, 256, false) {
		p.MoveTo(centre)
		p.LineTo(v)
	}

	for _, lineCap := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound} {
		b.Run(fmt.Sprintf("cap%d", lineCap), func(b *testing.B) {
			r := NewRasteriser(clip)
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.Width = 1
				r.Cap = lineCap
				r.Stroke(p.Path(), func(int, int, []float32) {})
			}
		})
	}
}

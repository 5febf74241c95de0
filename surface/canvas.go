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

package surface

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genart/raster"
)

// Canvas is a Surface which paints anti-aliased pixels into an RGBA image.
// A cleared canvas is fully transparent.
//
// Path coordinates are transformed when MoveTo and LineTo are called, as in
// the HTML canvas.  The line width is scaled by the transformation current
// at the time of Stroke.
type Canvas struct {
	transformStack

	img  *image.RGBA
	r    *raster.Rasteriser
	clip rect.Rect

	path       raster.Builder // device space
	box        raster.Builder
	fill       color.RGBA
	stroke     color.RGBA
	lineWidth  float64
	lineCap    graphics.LineCapStyle
	emitFill   raster.EmitFunc
	emitStroke raster.EmitFunc
}

var _ Surface = (*Canvas)(nil)

// NewCanvas allocates a transparent canvas of the given size.  Fill and
// stroke colours start out black, the line width is 1 and line ends use
// butt caps.
func NewCanvas(width, height int) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	c := &Canvas{
		transformStack: newTransformStack(),
		img:            image.NewRGBA(image.Rect(0, 0, width, height)),
		r:              raster.NewRasteriser(clip),
		clip:           clip,
		fill:           Black.Pixel(),
		stroke:         Black.Pixel(),
		lineWidth:      1,
		lineCap:        graphics.LineCapButt,
	}
	c.emitFill = func(y, xMin int, coverage []float32) {
		c.blend(y, xMin, coverage, c.fill)
	}
	c.emitStroke = func(y, xMin int, coverage []float32) {
		c.blend(y, xMin, coverage, c.stroke)
	}
	return c
}

// Image returns the backing image.  It is modified by later drawing calls.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

func (c *Canvas) BeginPath() {
	c.path.Reset()
}

func (c *Canvas) MoveTo(x, y float64) {
	dx, dy := c.ctm.Apply(x, y)
	c.path.MoveTo(vec.Vec2{X: dx, Y: dy})
}

// LineTo adds a line from the current point.  Without a current point it
// behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	dx, dy := c.ctm.Apply(x, y)
	if c.path.Empty() {
		c.path.MoveTo(vec.Vec2{X: dx, Y: dy})
		return
	}
	c.path.LineTo(vec.Vec2{X: dx, Y: dy})
}

func (c *Canvas) Stroke() {
	c.r.Reset(c.clip)
	c.r.Width = c.lineWidth * math.Sqrt(math.Abs(c.ctm[0]*c.ctm[3]-c.ctm[1]*c.ctm[2]))
	c.r.Cap = c.lineCap
	c.r.Stroke(c.path.Path(), c.emitStroke)
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.box.Reset()
	c.box.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()

	c.r.Reset(c.clip)
	c.r.CTM = c.ctm
	c.r.FillNonZero(c.box.Path(), c.emitFill)
}

func (c *Canvas) SetFillColor(col Color) {
	c.fill = col.Pixel()
}

func (c *Canvas) SetStrokeColor(col Color) {
	c.stroke = col.Pixel()
}

func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

func (c *Canvas) SetLineCap(lineCap graphics.LineCapStyle) {
	c.lineCap = lineCap
}

// blend composites the opaque colour col over one row of pixels, weighted
// by coverage.
func (c *Canvas) blend(y, xMin int, coverage []float32, col color.RGBA) {
	row := c.img.Pix[y*c.img.Stride+4*xMin:]
	for i, cov := range coverage {
		px := row[4*i : 4*i+4 : 4*i+4]
		if cov >= 1 {
			px[0], px[1], px[2], px[3] = col.R, col.G, col.B, 255
			continue
		}
		a := float64(cov)
		px[0] = mix(px[0], col.R, a)
		px[1] = mix(px[1], col.G, a)
		px[2] = mix(px[2], col.B, a)
		px[3] = mix(px[3], 255, a)
	}
}

// mix returns dst*(1-a) + src*a for premultiplied 8-bit values.
func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a + 0.5)
}

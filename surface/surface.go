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

// Package surface defines the drawing surface the art renderers paint on,
// together with two implementations: [Canvas], which produces pixels, and
// [Recorder], which only records the drawing calls.
//
// The coordinate system follows the HTML canvas convention: the origin is
// the top-left corner, x grows to the right and y grows downwards.  Angles
// are in radians and positive angles rotate clockwise on screen.
package surface

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// Surface is a 2D drawing surface with a current path, fill and stroke
// colours, and a stack of affine transformations.
type Surface interface {
	Width() int
	Height() int

	// Clear erases all pixels.  The transformation and colours are kept.
	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Stroke paints the current path with the stroke colour.
	Stroke()

	// FillRect fills a rectangle with the fill colour.  The current path is
	// not affected.
	FillRect(x, y, w, h float64)

	SetFillColor(c Color)
	SetStrokeColor(c Color)

	// SetLineWidth sets the stroke width in user-space units.  The width is
	// scaled by the transformation current at the time of Stroke.
	SetLineWidth(w float64)

	// SetLineCap sets the style used at both ends of stroked segments.
	SetLineCap(lineCap graphics.LineCapStyle)

	// Save pushes the current transformation onto the stack.
	Save()

	// Restore pops the transformation saved by the matching Save.
	// Calling Restore on an empty stack does nothing.
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)

	// Transform applies m in front of the current transformation, so that
	// m acts on user coordinates first.
	Transform(m matrix.Matrix)
}

// transformStack is the save/restore state shared by both implementations.
type transformStack struct {
	ctm   matrix.Matrix
	saved []matrix.Matrix
}

func newTransformStack() transformStack {
	return transformStack{ctm: matrix.Identity}
}

func (t *transformStack) Save() {
	t.saved = append(t.saved, t.ctm)
}

func (t *transformStack) Restore() {
	n := len(t.saved)
	if n == 0 {
		return
	}
	t.ctm = t.saved[n-1]
	t.saved = t.saved[:n-1]
}

func (t *transformStack) Translate(x, y float64) {
	t.ctm = matrix.Translate(x, y).Mul(t.ctm)
}

func (t *transformStack) Rotate(angle float64) {
	t.ctm = matrix.Rotate(angle).Mul(t.ctm)
}

func (t *transformStack) Transform(m matrix.Matrix) {
	t.ctm = m.Mul(t.ctm)
}

// CTM returns the current transformation matrix.
func (t *transformStack) CTM() matrix.Matrix {
	return t.ctm
}

// Depth returns the number of saved transformations.
func (t *transformStack) Depth() int {
	return len(t.saved)
}

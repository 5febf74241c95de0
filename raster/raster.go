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

// Package raster converts straight-line paths into anti-aliased pixel
// coverage.
//
// Only the operations needed by the art renderers are provided: filling
// with the nonzero winding rule, and stroking of polylines with a fixed
// line width and cap style.  Curve segments are not supported; the
// renderers only ever build paths from MoveTo, LineTo and Close.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  Coverage values range
// from 0 (outside) to 1 (inside).  The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts paths to pixel coverage values.
// Internal buffers grow as needed and are reused across calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-space rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at both ends of every stroked segment.
	Cap graphics.LineCapStyle

	cover       []float32
	area        []float32
	rowHasEdges []bool
	edges       []edge
	poly        []vec.Vec2

	bboxEmpty        bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with an
// identity CTM, unit line width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,
		Cap:   graphics.LineCapButt,
	}
}

// Reset restores the default parameters for a new clip rectangle while
// keeping the buffer capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
	r.edges = r.edges[:0]
	r.poly = r.poly[:0]
}

// FillNonZero fills p using the nonzero winding rule.  Subpaths are closed
// implicitly.  Curve segments are replaced by straight lines to their end
// points.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.beginEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			end := pts[len(pts)-1]
			r.addEdge(current, end)
			current = end
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.rasterise(emit)
}

// Stroke strokes every straight segment of p using Width and Cap.
// Segments are stroked individually, so there are no line joins; the
// outlines are combined with the nonzero rule so that overlaps are only
// painted once.
func (r *Rasteriser) Stroke(p path.Path, emit EmitFunc) {
	r.beginEdges()
	d := r.Width / 2

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			end := pts[len(pts)-1]
			r.strokeSegment(current, end, d)
			current = end
		case path.CmdClose:
			r.strokeSegment(current, start, d)
			current = start
		}
	}

	r.rasterise(emit)
}

// strokeSegment adds the outline of the segment a→b, thickened by d on
// either side, to the edge list.
func (r *Rasteriser) strokeSegment(a, b vec.Vec2, d float64) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold || d <= 0 {
		return
	}
	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}

	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}

	r.poly = append(r.poly[:0], a.Add(n.Mul(d)), b.Add(n.Mul(d)))
	if r.Cap == graphics.LineCapRound {
		r.addArc(b, n, t, d)
	}
	r.poly = append(r.poly, b.Sub(n.Mul(d)), a.Sub(n.Mul(d)))
	if r.Cap == graphics.LineCapRound {
		r.addArc(a, n.Mul(-1), t.Mul(-1), d)
	}

	for k := 1; k < len(r.poly); k++ {
		r.addEdge(r.poly[k-1], r.poly[k])
	}
	r.addEdge(r.poly[len(r.poly)-1], r.poly[0])
}

// addArc appends the interior points of a half circle around c, starting
// in direction from and bulging out in direction via.
func (r *Rasteriser) addArc(c, from, via vec.Vec2, d float64) {
	for k := 1; k < arcSteps; k++ {
		phi := math.Pi * float64(k) / arcSteps
		dir := from.Mul(math.Cos(phi)).Add(via.Mul(math.Sin(phi)))
		r.poly = append(r.poly, c.Add(dir.Mul(d)))
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge transforms the user-space segment p0→p1 to device space and adds
// it to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// Coverage model:
//
// For every pixel two values are accumulated.  cover is the signed vertical
// extent of all edge pieces inside the pixel; area is the same quantity
// weighted by the fraction of the pixel lying to the right of the piece.
// Sweeping a row from left to right, the coverage of pixel i is the running
// sum of cover over pixels 0..i-1 plus area[i].  This is the exact signed
// area of the path inside each pixel.

// rasterise turns the collected edges into coverage and emits it row by
// row.
func (r *Rasteriser) rasterise(emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.rowHasEdges)

	for k := range r.edges {
		e := &r.edges[k]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// accumulate adds the contribution of e within scanline y to the cover and
// area buffers, which are indexed by x - xMin.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left, right := min(xTop, xBot), max(xTop, xBot)
	pixLeft := int(math.Floor(left))
	pixRight := int(math.Floor(right))

	if pixRight < xMin {
		// everything to the right of the edge is covered
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= xMax {
		return
	}

	if pixLeft == pixRight {
		addPiece(e, yTop, yBot, sign, pixLeft, cover, area, xMin, xMax)
		return
	}

	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addPiece(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// addPiece records the part of e between lo and hi, which lies inside pixel
// column pix.
func addPiece(e *edge, lo, hi float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(hi-lo)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}
	xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
	frac := xMid - float64(pix)
	idx := pix - xMin
	cover[idx] += c
	area[idx] += c * float32(1-frac)
}

// integrateNonZero converts the accumulated buffers of one row into final
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or nil if
// the row is empty.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge to
	// contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimum length of a stroked segment.
	zeroLengthThreshold = 1e-10

	// arcSteps is the number of chords used for a round cap.
	arcSteps = 8
)

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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Segment is a stroked line segment in device coordinates.  Width is the
// line width in user units.
type Segment struct {
	From, To vec.Vec2
	Color    Color
	Width    float64
	Cap      graphics.LineCapStyle
}

// Rect is a filled rectangle.  Corner is the device-space image of the
// rectangle's (x, y) corner, W and H are in user units.
type Rect struct {
	Corner vec.Vec2
	W, H   float64
	Color  Color
}

// Recorder is a Surface which records the drawing calls instead of
// producing pixels.
//
// Clear discards the recorded Segments and Rects; the call counters keep
// counting.
type Recorder struct {
	transformStack

	W, H int

	Clears  int
	Strokes int
	Fills   int

	Segments []Segment
	Rects    []Rect

	path        []vec.Vec2 // device space
	starts      []bool     // starts[i] is true if path[i] begins a subpath
	fillColor   Color
	strokeColor Color
	lineWidth   float64
	lineCap     graphics.LineCapStyle
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder for a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		transformStack: newTransformStack(),
		W:              width,
		H:              height,
		lineWidth:      1,
		lineCap:        graphics.LineCapButt,
	}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Clear() {
	r.Clears++
	r.Segments = r.Segments[:0]
	r.Rects = r.Rects[:0]
}

// DrawCalls returns the number of Stroke and FillRect calls so far.
func (r *Recorder) DrawCalls() int {
	return r.Strokes + r.Fills
}

func (r *Recorder) BeginPath() {
	r.path = r.path[:0]
	r.starts = r.starts[:0]
}

func (r *Recorder) MoveTo(x, y float64) {
	dx, dy := r.ctm.Apply(x, y)
	r.path = append(r.path, vec.Vec2{X: dx, Y: dy})
	r.starts = append(r.starts, true)
}

func (r *Recorder) LineTo(x, y float64) {
	dx, dy := r.ctm.Apply(x, y)
	r.path = append(r.path, vec.Vec2{X: dx, Y: dy})
	r.starts = append(r.starts, len(r.path) == 1)
}

func (r *Recorder) Stroke() {
	r.Strokes++
	for i := 1; i < len(r.path); i++ {
		if r.starts[i] {
			continue
		}
		r.Segments = append(r.Segments, Segment{
			From:  r.path[i-1],
			To:    r.path[i],
			Color: r.strokeColor,
			Width: r.lineWidth,
			Cap:   r.lineCap,
		})
	}
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Fills++
	cx, cy := r.ctm.Apply(x, y)
	r.Rects = append(r.Rects, Rect{Corner: vec.Vec2{X: cx, Y: cy}, W: w, H: h, Color: r.fillColor})
}

func (r *Recorder) SetFillColor(c Color)   { r.fillColor = c }
func (r *Recorder) SetStrokeColor(c Color) { r.strokeColor = c }

func (r *Recorder) SetLineWidth(w float64)                   { r.lineWidth = w }
func (r *Recorder) SetLineCap(lineCap graphics.LineCapStyle) { r.lineCap = lineCap }

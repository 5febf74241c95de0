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

// Package mosaic generates Mondrian-style pictures: random full-span cut
// lines partition the surface, and some of the resulting cells are filled
// with primary colours.
//
// Axis names follow the first version of the demo: a Horizontal cut line
// is stored as an x position and drawn as a vertical stroke, a Vertical
// cut line is stored as a y position and drawn as a horizontal stroke.
package mosaic

import (
	"fmt"
	"slices"

	"seehuhn.de/go/genart/sample"
	"seehuhn.de/go/genart/surface"
)

// FallbackExtent is the far edge used for a cell when no cut line lies
// beyond its first vertex.  It does not depend on the surface size.
const FallbackExtent = 300

// Palette holds the cell colours.
var Palette = [...]surface.Color{surface.Red, surface.Blue, surface.Yellow, surface.Black}

// Axis labels a cut line.
type Axis int

const (
	// Horizontal lines are positioned along x.
	Horizontal Axis = iota
	// Vertical lines are positioned along y.
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// CutLine is a full-span line partitioning the surface.
type CutLine struct {
	Axis     Axis
	Position int
}

// Cell is a filled rectangle.  Width and Height are computed from the cut
// line positions and may be zero or negative when the far edge defaults to
// FallbackExtent.
type Cell struct {
	X, Y          int
	Width, Height int
	Color         surface.Color
}

// Degenerate reports whether the cell has no area.
func (c Cell) Degenerate() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Mosaic is a generated picture.
type Mosaic struct {
	Width, Height int

	Lines []CutLine
	Cells []Cell

	// XVertices and YVertices hold 0 followed by the cut line positions,
	// in the order they were drawn.
	XVertices []int
	YVertices []int
}

// Generate places lineCount cut lines and then derives rectangleCount
// cells.  Line positions are drawn from [0, width-1) for both axes.
//
// If more cells are requested than there are distinct vertices on an axis,
// the error wraps sample.ErrExhausted.
func Generate(src sample.Source, lineCount, rectangleCount, width, height int) (*Mosaic, error) {
	m := &Mosaic{Width: width, Height: height}

	xs := sample.NewSet(0)
	ys := sample.NewSet(0)
	for i := range lineCount {
		axis := Axis(src.IntN(2))
		set := xs
		if axis == Vertical {
			set = ys
		}
		pos, err := set.Draw(src, width-1)
		if err != nil {
			return nil, fmt.Errorf("mosaic: line %d: %w", i, err)
		}
		m.Lines = append(m.Lines, CutLine{Axis: axis, Position: pos})
	}
	m.XVertices = slices.Clone(xs.Values())
	m.YVertices = slices.Clone(ys.Values())

	usedX := sample.NewSet()
	usedY := sample.NewSet()
	for i := range rectangleCount {
		ix, err := usedX.Draw(src, len(m.XVertices))
		if err != nil {
			return nil, fmt.Errorf("mosaic: cell %d: %w", i, err)
		}
		iy, err := usedY.Draw(src, len(m.YVertices))
		if err != nil {
			return nil, fmt.Errorf("mosaic: cell %d: %w", i, err)
		}

		x1 := m.XVertices[ix]
		y1 := m.YVertices[iy]
		x2 := nextAbove(m.XVertices, x1)
		y2 := nextAbove(m.YVertices, y1)
		m.Cells = append(m.Cells, Cell{
			X:      x1,
			Y:      y1,
			Width:  x2 - x1,
			Height: y2 - y1,
			Color:  Palette[src.IntN(len(Palette))],
		})
	}

	return m, nil
}

// nextAbove returns the smallest vertex strictly greater than v, or
// FallbackExtent if there is none.
func nextAbove(vertices []int, v int) int {
	best := FallbackExtent
	found := false
	for _, w := range vertices {
		if w > v && (!found || w < best) {
			best = w
			found = true
		}
	}
	return best
}

// Draw strokes the cut lines in black and then fills the cells.
func (m *Mosaic) Draw(s surface.Surface) {
	w := float64(s.Width())
	h := float64(s.Height())

	s.SetStrokeColor(surface.Black)
	for _, l := range m.Lines {
		p := float64(l.Position)
		s.BeginPath()
		if l.Axis == Horizontal {
			s.MoveTo(p, 0)
			s.LineTo(p, h)
		} else {
			s.MoveTo(0, p)
			s.LineTo(w, p)
		}
		s.Stroke()
	}

	for _, c := range m.Cells {
		s.SetFillColor(c.Color)
		s.FillRect(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height))
	}
}

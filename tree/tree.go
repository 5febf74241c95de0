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

// Package tree draws recursive binary tree fractals.
//
// Every branch is a straight segment from its local origin to (0, -length),
// drawn after rotating by the branch angle.  The two children start at the
// tip of their parent, are Shrink times as long, and are rotated by Angle1
// and Angle2 relative to the parent.
package tree

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/genart/surface"
)

const (
	// MaxDepth is the largest accepted recursion depth.  A tree of depth d
	// has 2^(d+1)-1 branches.
	MaxDepth = 20

	// MinLength is the shortest branch which still has children when
	// growth is bounded by length.
	MinLength = 10

	// Shrink is the length ratio between a child and its parent.
	Shrink = 0.8
)

// Branch colours for colour interpolation.
var (
	Trunk = surface.Color{R: 139, G: 69, B: 19}
	Leaf  = surface.Color{R: 0, G: 255, B: 0}
)

// ErrDepth is returned for depths outside [0, MaxDepth].
var ErrDepth = errors.New("tree depth out of range")

// Growth selects what ends the recursion.
type Growth int

const (
	// ByDepth stops after a fixed number of levels.
	ByDepth Growth = iota
	// ByLength stops once branches become shorter than MinLength.
	ByLength
)

func (g Growth) String() string {
	switch g {
	case ByDepth:
		return "depth"
	case ByLength:
		return "length"
	default:
		return fmt.Sprintf("Growth(%d)", int(g))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (g Growth) MarshalText() ([]byte, error) {
	switch g {
	case ByDepth, ByLength:
		return []byte(g.String()), nil
	}
	return nil, fmt.Errorf("invalid growth %d", int(g))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Growth) UnmarshalText(text []byte) error {
	switch string(text) {
	case "depth", "":
		*g = ByDepth
	case "length":
		*g = ByLength
	default:
		return fmt.Errorf("invalid growth %q", text)
	}
	return nil
}

// Params describes one tree.
type Params struct {
	// Depth is the number of levels below the trunk (ByDepth only).
	Depth int

	// X and Y locate the foot of the trunk.
	X, Y float64

	// Length is the length of the trunk.
	Length float64

	// Angle1 and Angle2 are the child rotations in degrees.
	Angle1, Angle2 float64

	// Colored enables the gradient from Trunk to Leaf.  Otherwise all
	// branches are black.
	Colored bool

	Growth Growth

	// Width is the line width of the trunk.  Zero means 1.
	Width float64

	// Taper makes every child Shrink times as wide as its parent.
	Taper bool

	Cap graphics.LineCapStyle
}

// Levels returns the number of levels below the trunk.
func (p Params) Levels() int {
	if p.Growth == ByDepth {
		return p.Depth
	}
	n := 0
	for l := p.Length; l >= MinLength && n < MaxDepth; l *= Shrink {
		n++
	}
	return n
}

// Step returns the colour change per level for a tree with the given number
// of levels below the trunk.
func Step(levels int) surface.Color {
	if levels <= 0 {
		return surface.Color{}
	}
	return Leaf.Sub(Trunk).Scale(1 / float64(levels))
}

// Render draws the tree and returns the number of branches drawn.
// The surface transformation is left unchanged.
func Render(s surface.Surface, p Params) (int, error) {
	if p.Growth == ByDepth && (p.Depth < 0 || p.Depth > MaxDepth) {
		return 0, fmt.Errorf("depth %d: %w", p.Depth, ErrDepth)
	}

	d := &drawer{s: s, p: p}
	if p.Colored {
		d.step = Step(p.Levels())
	} else {
		s.SetStrokeColor(surface.Black)
	}
	width := p.Width
	if width <= 0 {
		width = 1
	}
	s.SetLineWidth(width)
	s.SetLineCap(p.Cap)
	d.branch(matrix.Translate(p.X, p.Y), 0, p.Length, width, p.Levels(), Trunk)
	return d.count, nil
}

type drawer struct {
	s     surface.Surface
	p     Params
	step  surface.Color
	count int
}

// branch draws one branch and its descendants.  origin places the foot of
// the branch relative to the surface transformation at the time Render was
// called.  It is passed by value, so nothing a child does can affect its
// sibling.
func (d *drawer) branch(origin matrix.Matrix, angle, length, width float64, left int, col surface.Color) {
	m := matrix.RotateDeg(angle).Mul(origin)

	d.s.Save()
	d.s.Transform(m)
	if d.p.Colored {
		d.s.SetStrokeColor(col)
	}
	if d.p.Taper {
		d.s.SetLineWidth(width)
	}
	d.s.BeginPath()
	d.s.MoveTo(0, 0)
	d.s.LineTo(0, -length)
	d.s.Stroke()
	d.s.Restore()
	d.count++

	if !d.grows(left, length) {
		return
	}
	tip := matrix.Translate(0, -length).Mul(m)
	next := col.Add(d.step)
	if d.p.Taper {
		width *= Shrink
	}
	d.branch(tip, d.p.Angle1, length*Shrink, width, left-1, next)
	d.branch(tip, d.p.Angle2, length*Shrink, width, left-1, next)
}

func (d *drawer) grows(left int, length float64) bool {
	if d.p.Growth == ByLength {
		return length >= MinLength && left > 0
	}
	return left > 0
}

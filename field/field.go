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

// Package field paints colour fields where every pixel is a closed-form
// function of its coordinates.
package field

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/genart/surface"
)

// ErrZoom is returned for zoom factors below 1 or not finite.
var ErrZoom = errors.New("zoom factor out of range")

// Kind selects the colour formula.
type Kind int

const (
	// XOR combines the coordinates and the Dim offset with bitwise XOR.
	XOR Kind = iota
	// Stretched combines i mod j and j mod i.
	Stretched
)

func (k Kind) String() string {
	switch k {
	case XOR:
		return "xor"
	case Stretched:
		return "stretched"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Params describes one colour field.
type Params struct {
	Kind Kind

	// Width and Height give the size of the painted area in pixels.
	Width, Height int

	// Zoom is the distance between sampled coordinates.  Pixel (x, y) shows
	// the formula evaluated at (x*Zoom, y*Zoom).
	Zoom float64

	// Dim is the offset used by the XOR formula.
	Dim int
}

func (p Params) check() error {
	if !(p.Zoom >= 1) || math.IsInf(p.Zoom, 0) {
		return fmt.Errorf("zoom %g: %w", p.Zoom, ErrZoom)
	}
	return nil
}

// ColorAt evaluates the formula of kind k at the coordinates (i, j).
func ColorAt(k Kind, i, j float64, dim int) surface.Color {
	if k == Stretched {
		return stretched(i, j)
	}
	return xor(i, j, dim)
}

// xor implements the XOR field.  The green channel reads
// (i-dim)^2+(j-dim)^2 with "^" as XOR binding more loosely than "+", so it
// is (i-dim) ^ (2+(j-dim)) ^ 2.  Each XOR operand is truncated towards zero
// only after the arithmetic around it.  The red channel XORs each
// coordinate with itself and is always zero.
func xor(i, j float64, dim int) surface.Color {
	d := float64(dim)
	x := int(i - d)
	y := int(j - d)
	r := (int(j) ^ int(j)) - (int(i) ^ int(i))
	g := x ^ int(2+(j-d)) ^ 2
	b := x ^ y
	return surface.Color{R: float64(r), G: float64(g), B: float64(b)}
}

// stretched implements the modulo field.  Rows and columns at 0 are black.
func stretched(i, j float64) surface.Color {
	if i == 0 || j == 0 {
		return surface.Color{}
	}
	a := math.Mod(i, j)
	b := math.Mod(j, i)
	return surface.Color{
		R: float64(int(a) & int(b)),
		G: a + b,
		B: float64(int(a) | int(b)),
	}
}

// Render paints the field as 1×1 rectangles, column by column.
func Render(s surface.Surface, p Params) error {
	if err := p.check(); err != nil {
		return err
	}
	for x := range p.Width {
		i := float64(x) * p.Zoom
		for y := range p.Height {
			j := float64(y) * p.Zoom
			s.SetFillColor(ColorAt(p.Kind, i, j, p.Dim))
			s.FillRect(float64(x), float64(y), 1, 1)
		}
	}
	return nil
}

// Grid evaluates the field without drawing it.  The result is indexed as
// grid[y][x] and holds the painted 8-bit channels.
func Grid(p Params) ([][][3]uint8, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	grid := make([][][3]uint8, p.Height)
	for y := range grid {
		grid[y] = make([][3]uint8, p.Width)
		j := float64(y) * p.Zoom
		for x := range grid[y] {
			px := ColorAt(p.Kind, float64(x)*p.Zoom, j, p.Dim).Pixel()
			grid[y][x] = [3]uint8{px.R, px.G, px.B}
		}
	}
	return grid, nil
}

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

import "fmt"

// ArtType is the top-level kind of picture.
type ArtType int

const (
	ArtNone ArtType = iota
	ArtFractal
	ArtMosaic
)

var artNames = map[ArtType]string{
	ArtNone:    "none",
	ArtFractal: "fractal",
	ArtMosaic:  "mosaic",
}

func (a ArtType) String() string {
	if name, ok := artNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ArtType(%d)", int(a))
}

// ParseArtType maps an option value of the art type menu to an ArtType.
// The empty string selects ArtNone.
func ParseArtType(s string) (ArtType, error) {
	if s == "" {
		return ArtNone, nil
	}
	for a, name := range artNames {
		if name == s {
			return a, nil
		}
	}
	return ArtNone, &ConfigError{Field: "art", Value: s, Err: errUnknownOption}
}

// MarshalText implements encoding.TextMarshaler.
func (a ArtType) MarshalText() ([]byte, error) {
	if _, ok := artNames[a]; !ok {
		return nil, fmt.Errorf("invalid art type %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ArtType) UnmarshalText(text []byte) error {
	v, err := ParseArtType(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// FractalType selects the fractal drawn for ArtFractal.
type FractalType int

const (
	FractalNone FractalType = iota
	FractalTree
	FractalColorField
	FractalStretchedField
)

var fractalNames = map[FractalType]string{
	FractalNone:           "none",
	FractalTree:           "tree",
	FractalColorField:     "colorField",
	FractalStretchedField: "stretchedField",
}

func (f FractalType) String() string {
	if name, ok := fractalNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FractalType(%d)", int(f))
}

// ParseFractalType maps an option value of the fractal menu to a
// FractalType.  The empty string selects FractalNone.
func ParseFractalType(s string) (FractalType, error) {
	if s == "" {
		return FractalNone, nil
	}
	for f, name := range fractalNames {
		if name == s {
			return f, nil
		}
	}
	return FractalNone, &ConfigError{Field: "fractal", Value: s, Err: errUnknownOption}
}

// MarshalText implements encoding.TextMarshaler.
func (f FractalType) MarshalText() ([]byte, error) {
	if _, ok := fractalNames[f]; !ok {
		return nil, fmt.Errorf("invalid fractal type %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FractalType) UnmarshalText(text []byte) error {
	v, err := ParseFractalType(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Selection is the art chosen for the next draw.  Fractal is only
// consulted when Art is ArtFractal.
type Selection struct {
	Art     ArtType
	Fractal FractalType
}

func (s Selection) String() string {
	if s.Art == ArtFractal {
		return s.Art.String() + "/" + s.Fractal.String()
	}
	return s.Art.String()
}

// Selector holds the current selection.  It starts out idle, with nothing
// selected.  Selecting a new art type keeps the fractal type, so that
// switching back to fractals restores the previous choice.
type Selector struct {
	sel Selection
}

// SelectArt sets the top-level art type.
func (s *Selector) SelectArt(a ArtType) {
	s.sel.Art = a
}

// SelectFractal sets the fractal type.
func (s *Selector) SelectFractal(f FractalType) {
	s.sel.Fractal = f
}

// Selection returns the current selection.
func (s *Selector) Selection() Selection {
	return s.sel
}

// Reset returns to the idle state.
func (s *Selector) Reset() {
	s.sel = Selection{}
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArtType(t *testing.T) {
	for in, want := range map[string]ArtType{
		"":        ArtNone,
		"none":    ArtNone,
		"fractal": ArtFractal,
		"mosaic":  ArtMosaic,
	} {
		got, err := ParseArtType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseArtType("Mosaic")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.ErrorIs(t, err, errUnknownOption)
}

func TestParseFractalType(t *testing.T) {
	for in, want := range map[string]FractalType{
		"":               FractalNone,
		"tree":           FractalTree,
		"colorField":     FractalColorField,
		"stretchedField": FractalStretchedField,
	} {
		got, err := ParseFractalType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFractalType("fern")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestMarshalInvalid(t *testing.T) {
	_, err := ArtType(17).MarshalText()
	assert.Error(t, err)
	_, err = FractalType(-1).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "FractalType(-1)", FractalType(-1).String())
}

func TestSelector(t *testing.T) {
	var s Selector
	assert.Equal(t, Selection{}, s.Selection())
	assert.Equal(t, "none", s.Selection().String())

	s.SelectArt(ArtFractal)
	s.SelectFractal(FractalColorField)
	assert.Equal(t, "fractal/colorField", s.Selection().String())

	// the fractal type survives a detour to the mosaic
	s.SelectArt(ArtMosaic)
	assert.Equal(t, "mosaic", s.Selection().String())
	s.SelectArt(ArtFractal)
	assert.Equal(t, FractalColorField, s.Selection().Fractal)

	s.Reset()
	assert.Equal(t, Selection{}, s.Selection())
}

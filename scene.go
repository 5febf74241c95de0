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
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Scene is a selection together with its options, as stored in a scene
// file.  Option keys sit next to the "art" and "fractal" keys:
//
//	art: fractal
//	fractal: tree
//	depth: 10
//	colored: true
type Scene struct {
	Art     ArtType      `yaml:"art"`
	Fractal FractalType  `yaml:"fractal"`
	Config  RenderConfig `yaml:",inline"`
}

// DefaultScene returns a scene with nothing selected and default options.
func DefaultScene() Scene {
	return Scene{Config: DefaultConfig()}
}

// Selection returns the art chosen by the scene.
func (s Scene) Selection() Selection {
	return Selection{Art: s.Art, Fractal: s.Fractal}
}

// LoadScene reads a YAML scene.  Missing keys keep their default values,
// unknown keys are an error.  An empty input gives the default scene.
func LoadScene(r io.Reader) (Scene, error) {
	s := DefaultScene()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrInvalidConfiguration) {
			return Scene{}, fmt.Errorf("scene: %w", err)
		}
		return Scene{}, fmt.Errorf("%w: scene: %w", ErrInvalidConfiguration, err)
	}

	if err := s.Config.Validate(); err != nil {
		return Scene{}, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

// WriteYAML writes the scene in the format read by LoadScene.
func (s Scene) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

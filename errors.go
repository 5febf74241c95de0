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

	"seehuhn.de/go/genart/sample"
)

var (
	// ErrInvalidConfiguration is matched by all errors about bad option
	// values.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrSamplingExhausted is matched when a mosaic asks for more unique
	// random values than its range holds.
	ErrSamplingExhausted = sample.ErrExhausted

	errNotNumber     = errors.New("not a number")
	errNotInteger    = errors.New("not an integer")
	errOutOfRange    = errors.New("out of range")
	errUnknownOption = errors.New("unknown option")
	errUnknownField  = errors.New("unknown field")
)

// ConfigError describes an invalid option value.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", ErrInvalidConfiguration, e.Field, e.Value, e.Err)
}

// Unwrap makes the error match both ErrInvalidConfiguration and the
// underlying cause.
func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfiguration, e.Err}
}

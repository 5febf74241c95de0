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

// Package sample draws random integers without repetition.
//
// A draw picks a uniform index into the values which are still free and
// then maps this index back into the full range using a rank compensation
// step.  The compensation matches the first mosaic demo:
// starting from the second excluded value, every excluded value v at
// position k with candidate >= v shifts the candidate up by k.  The first
// excluded value is never consulted, and values are compared in the order
// they were drawn, not in sorted order.
//
// This compensation does not always land on a free value.  When it misses,
// the candidate is moved up (wrapping around at the end of the range) to
// the next free value, so that every draw honours the exclusion list.
package sample

import (
	"errors"
	"fmt"
	"slices"
)

// ErrExhausted is returned when no value is left to draw.
var ErrExhausted = errors.New("no remaining values")

// Source provides uniform random integers.  *math/rand/v2.Rand
// implements this interface.
type Source interface {
	// IntN returns a uniform value in [0, n).  n is always positive.
	IntN(n int) int
}

// DrawUnique returns a value in [0, n) which does not occur in excluded.
// The function has no side effects; the caller is expected to append the
// result to its exclusion sequence.
func DrawUnique(src Source, n int, excluded []int) (int, error) {
	free := n - len(excluded)
	if n <= 0 || free <= 0 {
		return 0, fmt.Errorf("range %d with %d excluded: %w", n, len(excluded), ErrExhausted)
	}

	candidate := Compensate(src.IntN(free), excluded)
	if candidate < n && !slices.Contains(excluded, candidate) {
		return candidate, nil
	}
	return nextFree(candidate, n, excluded)
}

// Compensate maps an index into the compressed range of free values back
// into the full range, using the inherited rank compensation.
func Compensate(candidate int, excluded []int) int {
	for k := 1; k < len(excluded); k++ {
		if candidate >= excluded[k] {
			candidate += k
		}
	}
	return candidate
}

// nextFree returns the first value at or after candidate (modulo n) which
// is not excluded.
func nextFree(candidate, n int, excluded []int) (int, error) {
	start := candidate % n
	for i := range n {
		v := (start + i) % n
		if !slices.Contains(excluded, v) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("range %d fully excluded: %w", n, ErrExhausted)
}

// Set is an ordered exclusion sequence for one sampling scope.
type Set struct {
	values []int
}

// NewSet returns a set which initially excludes the given values.
func NewSet(seed ...int) *Set {
	return &Set{values: slices.Clone(seed)}
}

// Draw draws a value from [0, n) which is not yet in the set and commits
// it.
func (s *Set) Draw(src Source, n int) (int, error) {
	v, err := DrawUnique(src, n, s.values)
	if err != nil {
		return 0, err
	}
	s.values = append(s.values, v)
	return v, nil
}

// Values returns the values of the set in the order they were added.
// The returned slice must not be modified.
func (s *Set) Values() []int {
	return s.values
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.values)
}

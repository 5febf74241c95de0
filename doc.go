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

// Package genart draws small generative art pictures: recursive trees,
// per-pixel colour fields and random Mondrian-style mosaics.
//
// A [Session] holds the current [Selection] and dispatches each call of
// [Session.Draw] to one of the generators in the tree, field and mosaic
// subpackages.  Options are given as a [RenderConfig], which can be
// parsed from form values with [ParseForm] or read from a YAML scene file
// with [LoadScene].
//
// The package does not log by default.  Use [SetLogger] to receive
// debug and warning records.
package genart

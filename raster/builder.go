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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Builder collects a path made of straight segments.  The zero value is an
// empty path ready to use.
type Builder struct {
	cmds []path.Command
	pts  []vec.Vec2
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p vec.Vec2) *Builder {
	b.cmds = append(b.cmds, path.CmdMoveTo)
	b.pts = append(b.pts, p)
	return b
}

// LineTo adds a straight segment to p.
func (b *Builder) LineTo(p vec.Vec2) *Builder {
	b.cmds = append(b.cmds, path.CmdLineTo)
	b.pts = append(b.pts, p)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.cmds = append(b.cmds, path.CmdClose)
	return b
}

// Reset discards all segments, keeping the allocated storage.
func (b *Builder) Reset() {
	b.cmds = b.cmds[:0]
	b.pts = b.pts[:0]
}

// Empty reports whether no segments have been added since the last Reset.
func (b *Builder) Empty() bool {
	return len(b.cmds) == 0
}

// Path returns an iterator over the collected segments.  The iterator
// reflects later changes to b.
func (b *Builder) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		i := 0
		for _, cmd := range b.cmds {
			var pts []vec.Vec2
			if cmd != path.CmdClose {
				pts = b.pts[i : i+1]
				i++
			}
			if !yield(cmd, pts) {
				return
			}
		}
	}
}

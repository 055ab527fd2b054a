// seehuhn.de/go/plot3d - depth-sorted 3D surface plotting
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

package plot3d

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Op identifies the kind of a drawing command.
type Op int

const (
	// OpFill fills Path with Fill.
	OpFill Op = iota

	// OpStroke strokes Path with Stroke, LineWidth and Dash.
	OpStroke

	// OpFillStroke fills Path with Fill, then strokes it with Stroke
	// and LineWidth.
	OpFillStroke

	// OpCircle fills a circle of radius Radius at Center with Fill.
	OpCircle

	// OpText draws Text at Center with Fill, anchored at the left of
	// the baseline.
	OpText
)

// Command is a single 2D drawing operation in screen coordinates
// (origin top-left, Y down). The fields used depend on Op; unused
// fields are zero.
type Command struct {
	Op     Op
	Path   path.Data
	Center vec.Vec2
	Radius float64
	Text   string

	Fill      color.NRGBA
	Stroke    color.NRGBA
	LineWidth float64
	Dash      []float64 // alternating on/off lengths in pixels; nil means solid
}

// CommandList is the ordered output of one render pass. Executing the
// commands in sequence on any 2D drawing surface reproduces the frame;
// later commands overdraw earlier ones. A list is regenerated in full on
// every Render call and has no dependency on previous frames.
type CommandList struct {
	Width, Height int
	Background    color.NRGBA
	Ops           []Command
}

// line returns an open path from a to b.
func line(a, b vec.Vec2) path.Data {
	return path.Data{
		Cmds:   []path.Command{path.CmdMoveTo, path.CmdLineTo},
		Coords: []vec.Vec2{a, b},
	}
}

// polygon returns a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Data {
	cmds := make([]path.Command, 0, len(pts)+1)
	cmds = append(cmds, path.CmdMoveTo)
	for range pts[1:] {
		cmds = append(cmds, path.CmdLineTo)
	}
	cmds = append(cmds, path.CmdClose)
	return path.Data{Cmds: cmds, Coords: pts}
}

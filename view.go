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
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// defaultGridSize is the surface resolution: the domain is sampled on a
// defaultGridSize × defaultGridSize grid.
const defaultGridSize = 24

// View is the complete description of one frame: camera, viewport,
// surface, evaluation point and visibility toggles. The host application
// owns the View and mutates it between frames; Render never modifies it.
//
// All mutators are plain field assignments except SetField and the
// clamping Camera methods. None of them triggers a re-render; that is
// the caller's responsibility.
type View struct {
	Camera        Camera
	Width, Height int

	// Field is the surface being plotted. A nil Field renders no
	// surface and no annotations.
	Field Field

	// At is the evaluation point (x₀, y₀) in the domain. The marker,
	// the arrows and the value label are attached to it.
	At vec.Vec2

	// Theta is the angle of the direction arrow in the domain plane,
	// and Mag its length.
	Theta float64
	Mag   float64

	// Domain is the square region the surface is sampled over.
	Domain rect.Rect

	// GridSize is the surface resolution per axis.
	GridSize int

	ShowSurface   bool
	ShowAxes      bool
	ShowGradient  bool
	ShowPartials  bool
	ShowDirection bool
	ShowLabels    bool
}

// NewView returns a view of the paraboloid surface with the default
// camera, domain and toggles, for a viewport of the given size in pixels.
func NewView(width, height int) *View {
	return &View{
		Camera: NewCamera(),
		Width:  width,
		Height: height,
		Field:  fields["paraboloid"],
		At:     vec.Vec2{X: 0.8, Y: 0.6},
		Theta:  math.Pi / 4,
		Mag:    1,
		Domain: rect.Rect{LLx: -2, LLy: -2, URx: 2, URy: 2},

		GridSize:     defaultGridSize,
		ShowSurface:  true,
		ShowAxes:     true,
		ShowGradient: true,
		ShowPartials: true,
		ShowLabels:   true,
	}
}

// SetField selects a built-in surface by registry key. An unknown key is
// silently ignored and leaves the current surface in place.
func (v *View) SetField(key string) {
	if f, ok := FieldByKey(key); ok {
		v.Field = f
	}
}

// Project maps a world-space point to screen coordinates for this view's
// camera and viewport. It is exposed for callers drawing custom overlays
// on top of a rendered frame.
func (v *View) Project(p mgl64.Vec3) Point2D {
	return v.Camera.Project(p, float64(v.Width)/2, float64(v.Height)/2)
}

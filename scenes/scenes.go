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

// Package scenes defines a registry of named example views, used by the
// tests and by the export tools.
package scenes

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot3d"
)

// Scene is a named, fully configured view.
type Scene struct {
	Name string // lowercase a-z and _ only
	View *plot3d.View
}

// All contains all example scenes, grouped by category.
var All = map[string][]Scene{
	"surfaces":    surfaces(),
	"cameras":     cameras(),
	"annotations": annotations(),
}

// The default scene size keeps gallery exports fast.
const width, height = 480, 360

func newView(mutate func(v *plot3d.View)) *plot3d.View {
	v := plot3d.NewView(width, height)
	if mutate != nil {
		mutate(v)
	}
	return v
}

// surfaces shows every built-in field under the default camera.
func surfaces() []Scene {
	var out []Scene
	for _, key := range plot3d.FieldKeys() {
		key := key
		out = append(out, Scene{
			Name: key,
			View: newView(func(v *plot3d.View) { v.SetField(key) }),
		})
	}
	return out
}

// cameras exercises the projection: extreme angles and both ends of the
// zoom band.
func cameras() []Scene {
	return []Scene{
		{
			Name: "head_on",
			View: newView(func(v *plot3d.View) {
				v.Camera.Yaw = 0
				v.Camera.Pitch = math.Pi / 2
			}),
		},
		{
			Name: "low_orbit",
			View: newView(func(v *plot3d.View) {
				v.Camera.Yaw = 2.2
				v.Camera.Pitch = 0.1
			}),
		},
		{
			Name: "zoomed_in",
			View: newView(func(v *plot3d.View) {
				v.Camera.Zoom(-100)
			}),
		},
		{
			Name: "zoomed_out",
			View: newView(func(v *plot3d.View) {
				v.Camera.Zoom(100)
			}),
		},
		{
			Name: "from_behind",
			View: newView(func(v *plot3d.View) {
				v.Camera.Yaw = math.Pi
			}),
		},
	}
}

// annotations exercises the marker, arrows and labels.
func annotations() []Scene {
	return []Scene{
		{
			Name: "bare",
			View: newView(func(v *plot3d.View) {
				v.ShowAxes = false
				v.ShowGradient = false
				v.ShowPartials = false
				v.ShowLabels = false
			}),
		},
		{
			Name: "gradient_only",
			View: newView(func(v *plot3d.View) {
				v.SetField("gaussian")
				v.ShowPartials = false
				v.At = vec.Vec2{X: 1.1, Y: -0.4}
			}),
		},
		{
			Name: "direction",
			View: newView(func(v *plot3d.View) {
				v.SetField("saddle")
				v.ShowDirection = true
				v.Theta = 2 * math.Pi / 3
				v.Mag = 1.5
			}),
		},
		{
			Name: "full",
			View: newView(func(v *plot3d.View) {
				v.SetField("ripple")
				v.ShowDirection = true
				v.GridSize = 32
			}),
		},
	}
}

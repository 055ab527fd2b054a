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

	"seehuhn.de/go/geom/vec"
)

// Camera describes an orbiting perspective view: two rotation angles and a
// viewing distance. The zero value is not useful; use NewCamera.
//
// World coordinates are right-handed with Y pointing up. Yaw rotates the
// scene around the vertical axis, pitch tilts it around the horizontal
// screen-parallel axis.
type Camera struct {
	// Yaw is the rotation around the vertical axis, in radians.
	// Unbounded; full turns are allowed.
	Yaw float64

	// Pitch is the rotation around the horizontal axis, in radians.
	// Rotate keeps this within [-π/2, π/2] so the view cannot flip
	// past vertical.
	Pitch float64

	// Distance is the camera's distance from the world origin.
	// Zoom keeps this within [MinDistance, MaxDistance].
	Distance float64

	// Focal is the perspective constant K in scale = K/depth.
	// Larger values narrow the field of view. Must be positive.
	Focal float64

	// MinDistance and MaxDistance bound Distance during zooming.
	// Both must be positive, with MinDistance <= MaxDistance.
	MinDistance float64
	MaxDistance float64
}

// Default camera parameters.
const (
	defaultFocal    = 600.0
	defaultDistance = 8.0
	minDistance     = 3.0
	maxDistance     = 15.0
)

// NewCamera returns a camera with the default orbit position and the
// default focal and distance limits.
func NewCamera() Camera {
	return Camera{
		Yaw:         0.6,
		Pitch:       0.45,
		Distance:    defaultDistance,
		Focal:       defaultFocal,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}
}

// Rotate adjusts the camera angles by the given deltas. Pitch is clamped
// to [-π/2, π/2] after every update; yaw is unbounded. The caller decides
// when to re-render.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, -math.Pi/2, math.Pi/2)
}

// Zoom adjusts the camera distance by the given delta, clamped to
// [MinDistance, MaxDistance] after every update.
func (c *Camera) Zoom(d float64) {
	c.Distance = clamp(c.Distance+d, c.MinDistance, c.MaxDistance)
}

// view returns the combined rotation from world space to view space:
// yaw around the vertical axis first, then pitch around the horizontal
// axis.
func (c Camera) view() mgl64.Mat3 {
	return mgl64.Rotate3DX(c.Pitch).Mul3(mgl64.Rotate3DY(c.Yaw))
}

// Point2D is a projected point: screen coordinates in pixels plus the
// view-space depth used for painter's-algorithm ordering. The depth is
// not displayed.
type Point2D struct {
	X, Y  float64
	Depth float64
}

// vec returns the screen position as a 2D vector.
func (p Point2D) vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Project maps a world-space point to screen coordinates, with (cx, cy)
// the viewport centre in pixels. Screen Y grows downwards, so world Y is
// flipped.
//
// Points with depth <= 0 lie behind the camera; their projection is
// numerically defined but visually wrong. There is no clipping: the
// distance clamp keeps the camera safely in front of all geometry for the
// expected coordinate ranges.
func (c Camera) Project(p mgl64.Vec3, cx, cy float64) Point2D {
	return project(c.view(), c.Distance, c.Focal, p, cx, cy)
}

// project is the projection core. Callers that transform many points per
// frame compute the rotation matrix once and pass it in.
func project(m mgl64.Mat3, distance, focal float64, p mgl64.Vec3, cx, cy float64) Point2D {
	q := m.Mul3x1(p)
	depth := q.Z() + distance
	scale := focal / depth
	return Point2D{
		X:     cx + q.X()*scale,
		Y:     cy - q.Y()*scale,
		Depth: depth,
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

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
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestProjectOrigin checks the reference projection: with no rotation and
// distance 8, the world origin lands exactly on the viewport centre with
// depth 8.
func TestProjectOrigin(t *testing.T) {
	c := NewCamera()
	c.Yaw = 0
	c.Pitch = 0
	c.Distance = 8

	got := c.Project(mgl64.Vec3{0, 0, 0}, 320, 240)
	if got.X != 320 || got.Y != 240 {
		t.Errorf("origin projects to (%g, %g), want (320, 240)", got.X, got.Y)
	}
	if got.Depth != 8 {
		t.Errorf("origin depth = %g, want 8", got.Depth)
	}
}

// TestProjectPure checks that projection has no hidden state: the same
// camera and point give identical results on repeated calls, and the
// camera is not modified.
func TestProjectPure(t *testing.T) {
	c := NewCamera()
	c.Rotate(1.1, -0.3)
	c.Zoom(2.5)
	saved := c

	p := mgl64.Vec3{0.7, -1.2, 0.4}
	first := c.Project(p, 400, 300)
	for range 10 {
		if got := c.Project(p, 400, 300); got != first {
			t.Fatalf("projection not stable: %v != %v", got, first)
		}
	}
	if c != saved {
		t.Errorf("Project modified the camera: %+v != %+v", c, saved)
	}
}

// TestProjectAxes checks the screen-coordinate conventions: world X maps
// to the right, world Y up (screen Y down), and the perspective scale is
// Focal/Distance at the origin plane.
func TestProjectAxes(t *testing.T) {
	c := NewCamera()
	c.Yaw = 0
	c.Pitch = 0
	c.Distance = 8

	right := c.Project(mgl64.Vec3{1, 0, 0}, 100, 100)
	wantX := 100 + c.Focal/8
	if math.Abs(right.X-wantX) > 1e-12 || right.Y != 100 {
		t.Errorf("(1,0,0) projects to (%g, %g), want (%g, 100)",
			right.X, right.Y, wantX)
	}

	up := c.Project(mgl64.Vec3{0, 1, 0}, 100, 100)
	if up.Y >= 100 {
		t.Errorf("(0,1,0) projects to screen Y %g, want above centre", up.Y)
	}
}

// TestProjectYaw checks that yaw moves points between the X and Z axes
// without touching Y.
func TestProjectYaw(t *testing.T) {
	c := NewCamera()
	c.Yaw = math.Pi / 2
	c.Pitch = 0
	c.Distance = 8

	// after a quarter turn the point (1,0,0) lies on the depth axis
	got := c.Project(mgl64.Vec3{1, 0, 0}, 0, 0)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y) > 1e-12 {
		t.Errorf("rotated point projects to (%g, %g), want (0, 0)", got.X, got.Y)
	}
	if math.Abs(got.Depth-(8-1)) > 1e-12 {
		t.Errorf("rotated point depth = %g, want 7", got.Depth)
	}
}

// TestCameraClamp feeds arbitrarily large rotate and zoom deltas and
// checks that pitch and distance never leave their bands.
func TestCameraClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCamera()
	for range 1000 {
		c.Rotate(rng.NormFloat64()*10, rng.NormFloat64()*10)
		c.Zoom(rng.NormFloat64() * 20)

		if c.Pitch < -math.Pi/2 || c.Pitch > math.Pi/2 {
			t.Fatalf("pitch %g outside [-π/2, π/2]", c.Pitch)
		}
		if c.Distance < c.MinDistance || c.Distance > c.MaxDistance {
			t.Fatalf("distance %g outside [%g, %g]",
				c.Distance, c.MinDistance, c.MaxDistance)
		}
	}
}

// TestCameraZoomExtremes checks that a single huge zoom delta pins the
// distance to the band edge.
func TestCameraZoomExtremes(t *testing.T) {
	c := NewCamera()
	c.Zoom(1e9)
	if c.Distance != c.MaxDistance {
		t.Errorf("after huge zoom out, distance = %g, want %g",
			c.Distance, c.MaxDistance)
	}
	c.Zoom(-1e9)
	if c.Distance != c.MinDistance {
		t.Errorf("after huge zoom in, distance = %g, want %g",
			c.Distance, c.MinDistance)
	}
}

// TestBehindCamera documents the accepted artifact: points behind the
// camera produce a negative depth and a mirrored projection rather than
// an error.
func TestBehindCamera(t *testing.T) {
	c := NewCamera()
	c.Yaw = 0
	c.Pitch = 0
	c.Distance = 3
	c.MinDistance = 3

	got := c.Project(mgl64.Vec3{1, 0, -5}, 0, 0)
	if got.Depth >= 0 {
		t.Fatalf("depth = %g, want negative", got.Depth)
	}
	if got.X >= 0 {
		t.Errorf("expected mirrored X for negative depth, got %g", got.X)
	}
}

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

	"seehuhn.de/go/geom/rect"
)

// flatField is the constant zero surface, used to test shading.
type flatField struct{}

func (flatField) Eval(x, y float64) float64  { return 0 }
func (flatField) GradX(x, y float64) float64 { return 0 }
func (flatField) GradY(x, y float64) float64 { return 0 }
func (flatField) Name() string               { return "f(x,y) = 0" }

var testDomain = rect.Rect{LLx: -2, LLy: -2, URx: 2, URy: 2}

func TestSurfaceMeshSize(t *testing.T) {
	for _, n := range []int{1, 4, 24} {
		mesh := SurfaceMesh(paraboloid{}, testDomain, n)
		if len(mesh) != 2*n*n {
			t.Errorf("n=%d: got %d triangles, want %d", n, len(mesh), 2*n*n)
		}
	}
}

// TestSurfaceMeshVertices checks that every vertex lies on the surface
// and inside the domain.
func TestSurfaceMeshVertices(t *testing.T) {
	f := ripple{}
	mesh := SurfaceMesh(f, testDomain, 8)
	for _, tri := range mesh {
		for _, p := range [3]mgl64.Vec3{tri.A, tri.B, tri.C} {
			if p[0] < testDomain.LLx-1e-9 || p[0] > testDomain.URx+1e-9 ||
				p[1] < testDomain.LLy-1e-9 || p[1] > testDomain.URy+1e-9 {
				t.Fatalf("vertex (%g, %g) outside domain", p[0], p[1])
			}
			if want := f.Eval(p[0], p[1]); math.Abs(p[2]-want) > 1e-12 {
				t.Fatalf("vertex height %g, want f(%g,%g) = %g",
					p[2], p[0], p[1], want)
			}
		}
	}
}

// TestFlatPlaneShading checks the flat-field scenario: all normals point
// in +Z and every triangle shades at full intensity.
func TestFlatPlaneShading(t *testing.T) {
	mesh := SurfaceMesh(flatField{}, testDomain, 6)
	for i, tri := range mesh {
		n := tri.Normal()
		if n[0] != 0 || n[1] != 0 || n[2] <= 0 {
			t.Fatalf("triangle %d: normal %v, want +Z", i, n)
		}
		if got := tri.Intensity(); got != 1.0 {
			t.Errorf("triangle %d: intensity %g, want 1.0", i, got)
		}
	}
}

// TestIntensityBounds checks the shading floor and ceiling for random
// triangle orientations.
func TestIntensityBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pt := func() mgl64.Vec3 {
		return mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	for range 10000 {
		tri := Triangle{A: pt(), B: pt(), C: pt()}
		got := tri.Intensity()
		if got < minIntensity || got > 1.0 {
			t.Fatalf("intensity %g outside [%g, 1] for %+v", got, minIntensity, tri)
		}
	}
}

// TestDegenerateTriangle checks that zero-area triangles shade at the
// floor instead of dividing by zero.
func TestDegenerateTriangle(t *testing.T) {
	p := mgl64.Vec3{1, 2, 3}
	tri := Triangle{A: p, B: p, C: p}
	if n := tri.Normal(); n.Len() != 0 {
		t.Errorf("degenerate normal %v, want zero", n)
	}
	if got := tri.Intensity(); got != minIntensity {
		t.Errorf("degenerate intensity %g, want %g", got, minIntensity)
	}
}

func TestCentroid(t *testing.T) {
	tri := Triangle{
		A: mgl64.Vec3{0, 0, 0},
		B: mgl64.Vec3{3, 0, 0},
		C: mgl64.Vec3{0, 3, 3},
	}
	got := tri.Centroid()
	want := mgl64.Vec3{1, 1, 1}
	if got.Sub(want).Len() > 1e-12 {
		t.Errorf("centroid %v, want %v", got, want)
	}
}

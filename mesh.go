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
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/rect"
)

// Triangle is a surface triangle in math coordinates: X and Y span the
// domain, Z is the field value. Degenerate (zero-area) triangles are
// allowed; they project to nothing and shade at the intensity floor.
type Triangle struct {
	A, B, C mgl64.Vec3
}

// Centroid returns the average of the three vertices. Its projected depth
// is the triangle's painter's-algorithm sort key.
func (t Triangle) Centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3)
}

// Normal returns the (non-normalised) surface normal, the cross product
// of the edges B-A and C-A.
func (t Triangle) Normal() mgl64.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// minIntensity is the shading floor: no face is rendered fully black.
const minIntensity = 0.2

// Intensity returns the flat-shading light intensity for the triangle,
// in [minIntensity, 1]. The light direction is fixed and biased towards
// the +Z (height) axis, so faces pointing up are brightest.
func (t Triangle) Intensity() float64 {
	n := t.Normal()
	norm := n.Len()
	if norm == 0 {
		return minIntensity
	}
	l := 0.5 + 0.5*(n.X()+n.Y()+2*n.Z())/norm
	return clamp(l, minIntensity, 1)
}

// SurfaceMesh samples f on an n×n grid over the given domain and splits
// each grid cell into two triangles along its diagonal, 2n² triangles in
// total. Vertices carry (x, y, f(x,y)); the winding is chosen so that a
// flat field yields normals pointing in +Z.
func SurfaceMesh(f Field, domain rect.Rect, n int) []Triangle {
	if n < 1 {
		n = 1
	}
	dx := (domain.URx - domain.LLx) / float64(n)
	dy := (domain.URy - domain.LLy) / float64(n)

	// Sample the grid once; each interior vertex is shared by six
	// triangles.
	h := make([]float64, (n+1)*(n+1))
	for j := 0; j <= n; j++ {
		y := domain.LLy + float64(j)*dy
		for i := 0; i <= n; i++ {
			x := domain.LLx + float64(i)*dx
			h[j*(n+1)+i] = f.Eval(x, y)
		}
	}

	at := func(i, j int) mgl64.Vec3 {
		return mgl64.Vec3{
			domain.LLx + float64(i)*dx,
			domain.LLy + float64(j)*dy,
			h[j*(n+1)+i],
		}
	}

	tris := make([]Triangle, 0, 2*n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			p00 := at(i, j)
			p10 := at(i+1, j)
			p11 := at(i+1, j+1)
			p01 := at(i, j+1)
			tris = append(tris,
				Triangle{A: p00, B: p10, C: p11},
				Triangle{A: p00, B: p11, C: p01},
			)
		}
	}
	return tris
}

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

// Package plot3d renders 3D surface plots into ordered lists of 2D
// drawing commands, using a rotating perspective camera and approximate
// back-to-front (painter's algorithm) visibility ordering. Executing a
// command list is left to a backend: see ggdraw, pdfdraw and cmd/viewer.
package plot3d

//go:generate go run ./scenes/export
//go:generate go run ./scenes/genpdf

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"
)

// Arrowhead geometry (screen space).
const (
	arrowHalfAngle = math.Pi / 6 // angle between the shaft and each barb
	arrowLength    = 10.0        // barb length in pixels
)

// Drawing styles for the frame.
var (
	backgroundColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	surfaceFill     = color.NRGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff}
	meshStroke      = color.NRGBA{R: 0x1f, G: 0x33, B: 0x4d, A: 0x28}
	axisColor       = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	dropColor       = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	markerColor     = color.NRGBA{R: 0xd9, G: 0x30, B: 0x25, A: 0xff}
	gradientColor   = color.NRGBA{R: 0x1d, G: 0x8a, B: 0x3e, A: 0xff}
	partialXColor   = color.NRGBA{R: 0x20, G: 0x5c, B: 0xb0, A: 0xff}
	partialYColor   = color.NRGBA{R: 0xd9, G: 0x7a, B: 0x1f, A: 0xff}
	directionColor  = color.NRGBA{R: 0x7b, G: 0x2d, B: 0xa8, A: 0xff}
	labelColor      = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// projector maps world-space points to the screen for one frame.
type projector func(mgl64.Vec3) Point2D

// worldPoint maps a math-space point (x, y, z=f(x,y)) into world
// coordinates: the domain spans the horizontal plane and the field value
// points up (world Y).
func worldPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p[0], p[2], p[1]}
}

// Render converts the view into an ordered list of 2D drawing commands:
// axes first, then the depth-sorted surface, then the annotations
// attached to the evaluation point. The result depends only on the view;
// rendering the same view twice yields identical lists.
func Render(v *View) *CommandList {
	cl := &CommandList{
		Width:      v.Width,
		Height:     v.Height,
		Background: backgroundColor,
	}

	// One rotation matrix per frame; see Camera.Project.
	m := v.Camera.view()
	cx, cy := float64(v.Width)/2, float64(v.Height)/2
	pr := func(p mgl64.Vec3) Point2D {
		return project(m, v.Camera.Distance, v.Camera.Focal, p, cx, cy)
	}

	if v.ShowAxes {
		appendAxes(cl, pr, v)
	}
	if v.ShowSurface && v.Field != nil {
		appendSurface(cl, pr, v)
	}
	if v.Field != nil {
		appendAnnotations(cl, pr, v)
	}

	logger().Debug("rendered frame",
		"ops", len(cl.Ops), "width", v.Width, "height", v.Height)
	return cl
}

// depthTri pairs a triangle with its projected centroid depth.
type depthTri struct {
	tri   Triangle
	depth float64
}

// surfaceOrder builds the surface mesh and sorts it back-to-front by
// projected centroid depth. Centroid depth is an approximation: triangles
// that overlap on screen but differ in orientation can come out
// mis-ordered, and that is accepted.
func surfaceOrder(pr projector, v *View) []depthTri {
	mesh := SurfaceMesh(v.Field, v.Domain, v.GridSize)
	order := make([]depthTri, len(mesh))
	for i, t := range mesh {
		order[i] = depthTri{
			tri:   t,
			depth: pr(worldPoint(t.Centroid())).Depth,
		}
	}
	slices.SortFunc(order, func(a, b depthTri) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return order
}

// appendSurface emits one fill+stroke command per triangle, farthest
// first, so that nearer triangles overdraw farther ones. The fill alpha
// is modulated by the flat-shading intensity; the mesh stroke stays at a
// fixed low opacity.
func appendSurface(cl *CommandList, pr projector, v *View) {
	for _, dt := range surfaceOrder(pr, v) {
		a := pr(worldPoint(dt.tri.A))
		b := pr(worldPoint(dt.tri.B))
		c := pr(worldPoint(dt.tri.C))

		fill := surfaceFill
		fill.A = uint8(float64(fill.A)*dt.tri.Intensity() + 0.5)

		cl.Ops = append(cl.Ops, Command{
			Op:        OpFillStroke,
			Path:      polygon(a.vec(), b.vec(), c.vec()),
			Fill:      fill,
			Stroke:    meshStroke,
			LineWidth: 0.5,
		})
	}
}

// appendAxes draws the three math-space coordinate axes through the
// origin, with labels just past the positive ends.
func appendAxes(cl *CommandList, pr projector, v *View) {
	l := math.Max(v.Domain.URx, v.Domain.URy) * 1.3
	axes := []struct {
		dir   mgl64.Vec3 // math space
		label string
	}{
		{mgl64.Vec3{1, 0, 0}, "x"},
		{mgl64.Vec3{0, 1, 0}, "y"},
		{mgl64.Vec3{0, 0, 1}, "z"},
	}
	for _, ax := range axes {
		from := pr(worldPoint(ax.dir.Mul(-l)))
		to := pr(worldPoint(ax.dir.Mul(l)))
		cl.Ops = append(cl.Ops, Command{
			Op:        OpStroke,
			Path:      line(from.vec(), to.vec()),
			Stroke:    axisColor,
			LineWidth: 1,
		})
		if v.ShowLabels {
			tip := pr(worldPoint(ax.dir.Mul(l * 1.08)))
			cl.Ops = append(cl.Ops, Command{
				Op:     OpText,
				Center: tip.vec(),
				Text:   ax.label,
				Fill:   axisColor,
			})
		}
	}
}

// appendAnnotations draws the evaluation-point marker with its dashed
// drop line, the gradient and tangent arrows, the direction arrow and
// the value labels. These are drawn after the surface and are not
// depth-sorted.
func appendAnnotations(cl *CommandList, pr projector, v *View) {
	x0, y0 := v.At.X, v.At.Y
	h := v.Field.Eval(x0, y0)
	gx := v.Field.GradX(x0, y0)
	gy := v.Field.GradY(x0, y0)

	onSurface := mgl64.Vec3{x0, y0, h}
	onPlane := mgl64.Vec3{x0, y0, 0}

	// dashed drop line from the surface point to the domain plane
	p := pr(worldPoint(onSurface))
	q := pr(worldPoint(onPlane))
	cl.Ops = append(cl.Ops, Command{
		Op:        OpStroke,
		Path:      line(p.vec(), q.vec()),
		Stroke:    dropColor,
		LineWidth: 1,
		Dash:      []float64{4, 4},
	})

	if v.ShowGradient {
		to := mgl64.Vec3{x0 + gx, y0 + gy, 0}
		appendArrow(cl, pr, onPlane, to, gradientColor, 2)
	}
	if v.ShowPartials {
		// tangent vectors of the surface at the marker
		tx := onSurface.Add(mgl64.Vec3{1, 0, gx}.Mul(0.8))
		ty := onSurface.Add(mgl64.Vec3{0, 1, gy}.Mul(0.8))
		appendArrow(cl, pr, onSurface, tx, partialXColor, 2)
		appendArrow(cl, pr, onSurface, ty, partialYColor, 2)
	}
	if v.ShowDirection {
		u := mgl64.Vec3{math.Cos(v.Theta), math.Sin(v.Theta), 0}
		appendArrow(cl, pr, onPlane, onPlane.Add(u.Mul(v.Mag)), directionColor, 2)
	}

	cl.Ops = append(cl.Ops, Command{
		Op:     OpCircle,
		Center: p.vec(),
		Radius: 5,
		Fill:   markerColor,
	})

	if v.ShowLabels {
		cl.Ops = append(cl.Ops, Command{
			Op:     OpText,
			Center: vec.Vec2{X: p.X + 10, Y: p.Y - 10},
			Text:   fmt.Sprintf("f = %.2f", h),
			Fill:   labelColor,
		})
		if v.ShowDirection {
			slope := gx*math.Cos(v.Theta) + gy*math.Sin(v.Theta)
			cl.Ops = append(cl.Ops, Command{
				Op:     OpText,
				Center: vec.Vec2{X: p.X + 10, Y: p.Y + 8},
				Text:   fmt.Sprintf("∇f·u = %.2f", slope),
				Fill:   labelColor,
			})
		}
	}
}

// appendArrow draws a directed segment from one world-space point to
// another: the shaft line, then two barbs from the projected tip, offset
// from the shaft's screen angle by ±arrowHalfAngle. The arrowhead is a
// screen-space construction and is not depth-sorted; it is always drawn
// immediately after its shaft. A zero-length projection degenerates to a
// point with an arbitrary arrowhead direction, which is accepted.
func appendArrow(cl *CommandList, pr projector, from, to mgl64.Vec3, col color.NRGBA, width float64) {
	a := pr(worldPoint(from))
	b := pr(worldPoint(to))
	cl.Ops = append(cl.Ops, Command{
		Op:        OpStroke,
		Path:      line(a.vec(), b.vec()),
		Stroke:    col,
		LineWidth: width,
	})

	ang := math.Atan2(b.Y-a.Y, b.X-a.X)
	for _, da := range [2]float64{arrowHalfAngle, -arrowHalfAngle} {
		back := vec.Vec2{
			X: b.X - arrowLength*math.Cos(ang+da),
			Y: b.Y - arrowLength*math.Sin(ang+da),
		}
		cl.Ops = append(cl.Ops, Command{
			Op:        OpStroke,
			Path:      line(b.vec(), back),
			Stroke:    col,
			LineWidth: width,
		})
	}
}

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

// Package pdfdraw writes plot3d command lists as single-page PDF files.
//
// Alpha is approximated by blending colours towards the page background
// (proper PDF transparency would need an ExtGState per opacity level).
// Text commands are skipped: vector output carries the geometry only.
package pdfdraw

import (
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/plot3d"
)

// Write renders the command list into a single-page PDF file at 1 point
// per pixel.
func Write(fname string, cl *plot3d.CommandList) error {
	w := float64(cl.Width)
	h := float64(cl.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	bg := cl.Background
	page.SetFillColor(rgb(bg))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// The command list uses a top-left origin with Y down; PDF user
	// space has its origin at the bottom left. Flip the Y axis.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	for i := range cl.Ops {
		op := &cl.Ops[i]
		switch op.Op {
		case plot3d.OpFill:
			page.SetFillColor(blend(op.Fill, bg))
			setPath(page, &op.Path)
			page.Fill()

		case plot3d.OpStroke:
			strokeSetup(page, op, bg)
			setPath(page, &op.Path)
			page.Stroke()

		case plot3d.OpFillStroke:
			// paint operators consume the path, so build it twice
			page.SetFillColor(blend(op.Fill, bg))
			setPath(page, &op.Path)
			page.Fill()
			strokeSetup(page, op, bg)
			setPath(page, &op.Path)
			page.Stroke()

		case plot3d.OpCircle:
			page.SetFillColor(blend(op.Fill, bg))
			circle(page, op.Center.X, op.Center.Y, op.Radius)
			page.Fill()

		case plot3d.OpText:
			// skipped
		}
	}

	plot3d.Logger().Debug("executed command list",
		"ops", len(cl.Ops), "backend", "pdf", "file", fname)
	return page.Close()
}

func strokeSetup(page *document.Page, op *plot3d.Command, bg stdcolor.NRGBA) {
	page.SetStrokeColor(blend(op.Stroke, bg))
	page.SetLineWidth(op.LineWidth)
	page.SetLineDash(op.Dash, 0)
}

func setPath(page *document.Page, p *path.Data) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[coordIdx]
			page.MoveTo(c.X, c.Y)
			coordIdx++
		case path.CmdLineTo:
			c := p.Coords[coordIdx]
			page.LineTo(c.X, c.Y)
			coordIdx++
		case path.CmdQuadTo:
			// PDF has no quadratic operator; elevate to cubic
			c1, c2 := p.Coords[coordIdx], p.Coords[coordIdx+1]
			prev := p.Coords[coordIdx-1]
			page.CurveTo(
				prev.X+2*(c1.X-prev.X)/3, prev.Y+2*(c1.Y-prev.Y)/3,
				c2.X+2*(c1.X-c2.X)/3, c2.Y+2*(c1.Y-c2.Y)/3,
				c2.X, c2.Y)
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, c3 := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, c3.X, c3.Y)
			coordIdx += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// kappa is the control-point offset for approximating a quarter circle
// with one cubic Bézier.
const kappa = 0.5522847498307936

func circle(page *document.Page, x, y, r float64) {
	k := kappa * r
	page.MoveTo(x+r, y)
	page.CurveTo(x+r, y+k, x+k, y+r, x, y+r)
	page.CurveTo(x-k, y+r, x-r, y+k, x-r, y)
	page.CurveTo(x-r, y-k, x-k, y-r, x, y-r)
	page.CurveTo(x+k, y-r, x+r, y-k, x+r, y)
	page.ClosePath()
}

// rgb converts a fully opaque colour.
func rgb(c stdcolor.NRGBA) color.Color {
	return color.DeviceRGB{
		float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// blend flattens alpha by mixing the colour towards the background.
func blend(c, bg stdcolor.NRGBA) color.Color {
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) float64 {
		return (a*float64(fg) + (1-a)*float64(bg)) / 255
	}
	return color.DeviceRGB{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B)}
}

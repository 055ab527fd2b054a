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

package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plot3d"
)

// All commands are drawn as triangles textured with a single white pixel,
// tinted per vertex.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawList executes a command list on an ebiten image.
func drawList(screen *ebiten.Image, cl *plot3d.CommandList) {
	screen.Fill(cl.Background)

	for i := range cl.Ops {
		op := &cl.Ops[i]
		switch op.Op {
		case plot3d.OpFill:
			fill(screen, vectorPath(&op.Path), op.Fill)

		case plot3d.OpStroke:
			stroke(screen, op)

		case plot3d.OpFillStroke:
			fill(screen, vectorPath(&op.Path), op.Fill)
			stroke(screen, op)

		case plot3d.OpCircle:
			var p vector.Path
			p.Arc(float32(op.Center.X), float32(op.Center.Y),
				float32(op.Radius), 0, 2*math.Pi, vector.Clockwise)
			p.Close()
			fill(screen, &p, op.Fill)

		case plot3d.OpText:
			// DebugPrint ignores the fill colour; good enough for a
			// development viewer.
			ebitenutil.DebugPrintAt(screen, op.Text,
				int(op.Center.X), int(op.Center.Y)-8)
		}
	}
}

func fill(dst *ebiten.Image, p *vector.Path, col color.NRGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawTriangles(dst, vs, is, col, ebiten.NonZero)
}

func stroke(dst *ebiten.Image, op *plot3d.Command) {
	var p *vector.Path
	if len(op.Dash) > 0 {
		p = dashedPath(&op.Path, op.Dash)
	} else {
		p = vectorPath(&op.Path)
	}
	sop := &vector.StrokeOptions{Width: float32(op.LineWidth)}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, sop)
	drawTriangles(dst, vs, is, op.Stroke, ebiten.FillAll)
}

func drawTriangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, col color.NRGBA, rule ebiten.FillRule) {
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	b := float32(col.B) / 255
	a := float32(col.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	top := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	dst.DrawTriangles(vs, is, whiteSubImage, top)
}

// vectorPath converts a path to ebiten's vector form.
func vectorPath(d *path.Data) *vector.Path {
	var p vector.Path
	coordIdx := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := d.Coords[coordIdx]
			p.MoveTo(float32(c.X), float32(c.Y))
			coordIdx++
		case path.CmdLineTo:
			c := d.Coords[coordIdx]
			p.LineTo(float32(c.X), float32(c.Y))
			coordIdx++
		case path.CmdQuadTo:
			c1, c2 := d.Coords[coordIdx], d.Coords[coordIdx+1]
			p.QuadTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y))
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, c3 := d.Coords[coordIdx], d.Coords[coordIdx+1], d.Coords[coordIdx+2]
			p.CubicTo(float32(c1.X), float32(c1.Y),
				float32(c2.X), float32(c2.Y), float32(c3.X), float32(c3.Y))
			coordIdx += 3
		case path.CmdClose:
			p.Close()
		}
	}
	return &p
}

// dashedPath splits the straight segments of a path into dashes. The
// renderer only dashes polylines, so curves pass through undashed.
func dashedPath(d *path.Data, dash []float64) *vector.Path {
	var p vector.Path

	var cur vec.Vec2
	have := false
	patIdx := 0    // index into dash pattern
	patRem := 0.0  // remaining length of current pattern entry
	penDown := true

	advance := func(a, b vec.Vec2) {
		seg := math.Hypot(b.X-a.X, b.Y-a.Y)
		if seg == 0 {
			return
		}
		pos := 0.0
		for pos < seg {
			if patRem <= 0 {
				patRem = dash[patIdx]
				patIdx = (patIdx + 1) % len(dash)
				penDown = !penDown
			}
			step := math.Min(patRem, seg-pos)
			t0 := pos / seg
			t1 := (pos + step) / seg
			if penDown {
				p.MoveTo(float32(a.X+(b.X-a.X)*t0), float32(a.Y+(b.Y-a.Y)*t0))
				p.LineTo(float32(a.X+(b.X-a.X)*t1), float32(a.Y+(b.Y-a.Y)*t1))
			}
			pos += step
			patRem -= step
		}
	}

	coordIdx := 0
	var start vec.Vec2
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = d.Coords[coordIdx]
			start = cur
			have = true
			// restart the pattern on each subpath
			patIdx, patRem, penDown = 0, 0, false
			coordIdx++
		case path.CmdLineTo:
			c := d.Coords[coordIdx]
			if have {
				advance(cur, c)
			}
			cur = c
			coordIdx++
		case path.CmdQuadTo:
			c := d.Coords[coordIdx+1]
			p.MoveTo(float32(cur.X), float32(cur.Y))
			p.QuadTo(float32(d.Coords[coordIdx].X), float32(d.Coords[coordIdx].Y),
				float32(c.X), float32(c.Y))
			cur = c
			coordIdx += 2
		case path.CmdCubeTo:
			c := d.Coords[coordIdx+2]
			p.MoveTo(float32(cur.X), float32(cur.Y))
			p.CubicTo(float32(d.Coords[coordIdx].X), float32(d.Coords[coordIdx].Y),
				float32(d.Coords[coordIdx+1].X), float32(d.Coords[coordIdx+1].Y),
				float32(c.X), float32(c.Y))
			cur = c
			coordIdx += 3
		case path.CmdClose:
			if have {
				advance(cur, start)
				cur = start
			}
		}
	}
	return &p
}

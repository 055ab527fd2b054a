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

// Package ggdraw executes plot3d command lists on a gg drawing context.
package ggdraw

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/plot3d"
)

// Draw executes a command list on the given context. The context is
// cleared to the list's background colour first. Text commands are drawn
// with the context's current font face; if none is set they are skipped
// (gg's behaviour).
func Draw(dc *gg.Context, cl *plot3d.CommandList) error {
	dc.ClearWithColor(gg.FromColor(cl.Background))

	for i := range cl.Ops {
		op := &cl.Ops[i]
		if err := drawOp(dc, op); err != nil {
			return fmt.Errorf("command %d: %w", i, err)
		}
	}
	plot3d.Logger().Debug("executed command list",
		"ops", len(cl.Ops), "backend", "gg")
	return nil
}

func drawOp(dc *gg.Context, op *plot3d.Command) error {
	switch op.Op {
	case plot3d.OpFill:
		setPath(dc, &op.Path)
		dc.SetColor(op.Fill)
		return dc.Fill()

	case plot3d.OpStroke:
		setPath(dc, &op.Path)
		setStroke(dc, op)
		err := dc.Stroke()
		dc.ClearDash()
		return err

	case plot3d.OpFillStroke:
		setPath(dc, &op.Path)
		dc.SetColor(op.Fill)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		setStroke(dc, op)
		err := dc.Stroke()
		dc.ClearDash()
		return err

	case plot3d.OpCircle:
		dc.ClearPath()
		dc.DrawCircle(op.Center.X, op.Center.Y, op.Radius)
		dc.SetColor(op.Fill)
		return dc.Fill()

	case plot3d.OpText:
		dc.SetColor(op.Fill)
		dc.DrawStringAnchored(op.Text, op.Center.X, op.Center.Y, 0, 0.5)
		return nil
	}
	return fmt.Errorf("unknown command kind %d", op.Op)
}

func setStroke(dc *gg.Context, op *plot3d.Command) {
	dc.SetColor(op.Stroke)
	dc.SetLineWidth(op.LineWidth)
	if len(op.Dash) > 0 {
		dc.SetDash(op.Dash...)
	} else {
		dc.ClearDash()
	}
}

// setPath replaces the context's current path with the command's path.
func setPath(dc *gg.Context, p *path.Data) {
	dc.ClearPath()
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[coordIdx]
			dc.MoveTo(c.X, c.Y)
			coordIdx++
		case path.CmdLineTo:
			c := p.Coords[coordIdx]
			dc.LineTo(c.X, c.Y)
			coordIdx++
		case path.CmdQuadTo:
			c1, c2 := p.Coords[coordIdx], p.Coords[coordIdx+1]
			dc.QuadraticTo(c1.X, c1.Y, c2.X, c2.Y)
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, c3 := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, c3.X, c3.Y)
			coordIdx += 3
		case path.CmdClose:
			dc.ClosePath()
		}
	}
}

// Image renders a command list into a fresh image.
func Image(cl *plot3d.CommandList) (image.Image, error) {
	dc := gg.NewContext(cl.Width, cl.Height)
	defer dc.Close()

	if err := Draw(dc, cl); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

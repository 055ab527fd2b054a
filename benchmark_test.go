package plot3d

import (
	"fmt"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
)

// BenchmarkRender measures command-list generation (projection, sorting,
// shading) without any rasterisation.
func BenchmarkRender(b *testing.B) {
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("grid%d", n), func(b *testing.B) {
			v := NewView(800, 600)
			v.GridSize = n
			b.ReportAllocs()
			for b.Loop() {
				Render(v)
			}
		})
	}
}

// BenchmarkRasterizeFills measures the cost of rasterising a frame's
// fill commands with x/image/vector, as a floor for what any raster
// backend has to spend on top of Render.
func BenchmarkRasterizeFills(b *testing.B) {
	v := NewView(800, 600)
	cl := Render(v)
	dst := image.NewAlpha(image.Rect(0, 0, cl.Width, cl.Height))
	src := image.White

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		r := vector.NewRasterizer(cl.Width, cl.Height)
		for i := range cl.Ops {
			op := &cl.Ops[i]
			if op.Op != OpFill && op.Op != OpFillStroke {
				continue
			}
			appendToRasterizer(r, &op.Path)
			r.Draw(dst, dst.Bounds(), src, image.Point{})
			r.Reset(cl.Width, cl.Height)
		}
	}
}

func appendToRasterizer(r *vector.Rasterizer, p *path.Data) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			c := p.Coords[coordIdx]
			r.MoveTo(float32(c.X), float32(c.Y))
			coordIdx++
		case path.CmdLineTo:
			c := p.Coords[coordIdx]
			r.LineTo(float32(c.X), float32(c.Y))
			coordIdx++
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

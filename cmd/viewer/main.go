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

// Command viewer shows an interactive surface plot.
//
// Drag with the left mouse button to orbit the camera, scroll to zoom.
// Tab cycles through the built-in fields; the arrow keys move the point
// of interest and Q/E rotate the direction vector. The keys S, A, G, P,
// D and L toggle the surface, axes, gradient, partials, direction arrow
// and labels.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/plot3d"
)

const (
	screenWidth  = 800
	screenHeight = 600

	rotateSpeed = 0.01
	zoomSpeed   = 0.5
	moveStep    = 0.1
	thetaStep   = math.Pi / 36
)

type Game struct {
	view *plot3d.View
	list *plot3d.CommandList

	fields   []string
	fieldIdx int

	dragging     bool
	lastX, lastY int

	showHelp bool
}

func newGame() *Game {
	g := &Game{
		view:     plot3d.NewView(screenWidth, screenHeight),
		fields:   plot3d.FieldKeys(),
		showHelp: true,
	}
	g.view.ShowDirection = true
	g.fieldIdx = max(slices.Index(g.fields, "paraboloid"), 0)
	g.view.SetField(g.fields[g.fieldIdx])
	g.list = plot3d.Render(g.view)
	return g
}

func (g *Game) Update() error {
	dirty := false

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging && (x != g.lastX || y != g.lastY) {
		g.view.Camera.Rotate(
			float64(x-g.lastX)*rotateSpeed,
			float64(y-g.lastY)*rotateSpeed)
		g.lastX, g.lastY = x, y
		dirty = true
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.view.Camera.Zoom(-wy * zoomSpeed)
		dirty = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.fieldIdx = (g.fieldIdx + 1) % len(g.fields)
		g.view.SetField(g.fields[g.fieldIdx])
		dirty = true
	}

	toggles := []struct {
		key  ebiten.Key
		flag *bool
	}{
		{ebiten.KeyS, &g.view.ShowSurface},
		{ebiten.KeyA, &g.view.ShowAxes},
		{ebiten.KeyG, &g.view.ShowGradient},
		{ebiten.KeyP, &g.view.ShowPartials},
		{ebiten.KeyD, &g.view.ShowDirection},
		{ebiten.KeyL, &g.view.ShowLabels},
	}
	for _, t := range toggles {
		if inpututil.IsKeyJustPressed(t.key) {
			*t.flag = !*t.flag
			dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	if g.movePoint() {
		dirty = true
	}

	if dirty {
		g.list = plot3d.Render(g.view)
	}
	return nil
}

// movePoint handles the arrow keys and Q/E. Keys repeat while held.
func (g *Game) movePoint() bool {
	moved := false
	repeat := func(key ebiten.Key) bool {
		d := inpututil.KeyPressDuration(key)
		return d == 1 || (d >= 20 && d%3 == 0)
	}

	dom := g.view.Domain
	if repeat(ebiten.KeyArrowLeft) {
		g.view.At.X = math.Max(dom.LLx, g.view.At.X-moveStep)
		moved = true
	}
	if repeat(ebiten.KeyArrowRight) {
		g.view.At.X = math.Min(dom.URx, g.view.At.X+moveStep)
		moved = true
	}
	if repeat(ebiten.KeyArrowDown) {
		g.view.At.Y = math.Max(dom.LLy, g.view.At.Y-moveStep)
		moved = true
	}
	if repeat(ebiten.KeyArrowUp) {
		g.view.At.Y = math.Min(dom.URy, g.view.At.Y+moveStep)
		moved = true
	}
	if repeat(ebiten.KeyQ) {
		g.view.Theta += thetaStep
		moved = true
	}
	if repeat(ebiten.KeyE) {
		g.view.Theta -= thetaStep
		moved = true
	}
	return moved
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawList(screen, g.list)

	if g.showHelp {
		const help = "drag: orbit  wheel: zoom  tab: field\n" +
			"arrows: move point  Q/E: direction\n" +
			"S/A/G/P/D/L: toggles  H: hide help"
		ebitenutil.DebugPrintAt(screen, help, 8, screenHeight-44)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		plot3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("plot3d viewer")
	if err := ebiten.RunGame(newGame()); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

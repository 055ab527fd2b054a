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
	"maps"
	"math"
	"slices"
)

// Field is a scalar field together with its partial derivatives: the
// surface z = f(x, y) over a 2D domain. Implementations must be pure and
// defined on all of R².
type Field interface {
	Eval(x, y float64) float64
	GradX(x, y float64) float64
	GradY(x, y float64) float64
	Name() string
}

// fields maps registry keys to the built-in surfaces.
var fields = map[string]Field{
	"paraboloid": paraboloid{},
	"saddle":     saddle{},
	"ripple":     ripple{},
	"gaussian":   gaussian{},
	"plane":      plane{},
}

// FieldByKey looks up a built-in surface by its registry key.
// The second return value reports whether the key is known.
func FieldByKey(key string) (Field, bool) {
	f, ok := fields[key]
	return f, ok
}

// FieldKeys returns the registry keys of all built-in surfaces in sorted
// order.
func FieldKeys() []string {
	return slices.Sorted(maps.Keys(fields))
}

type paraboloid struct{}

func (paraboloid) Eval(x, y float64) float64  { return (x*x + y*y) / 2 }
func (paraboloid) GradX(x, y float64) float64 { return x }
func (paraboloid) GradY(x, y float64) float64 { return y }
func (paraboloid) Name() string               { return "f(x,y) = (x² + y²)/2" }

type saddle struct{}

func (saddle) Eval(x, y float64) float64  { return (x*x - y*y) / 2 }
func (saddle) GradX(x, y float64) float64 { return x }
func (saddle) GradY(x, y float64) float64 { return -y }
func (saddle) Name() string               { return "f(x,y) = (x² − y²)/2" }

type ripple struct{}

func (ripple) Eval(x, y float64) float64  { return math.Sin(x) * math.Cos(y) }
func (ripple) GradX(x, y float64) float64 { return math.Cos(x) * math.Cos(y) }
func (ripple) GradY(x, y float64) float64 { return -math.Sin(x) * math.Sin(y) }
func (ripple) Name() string               { return "f(x,y) = sin(x)·cos(y)" }

type gaussian struct{}

func (gaussian) Eval(x, y float64) float64 {
	return 2 * math.Exp(-(x*x+y*y)/2)
}

func (g gaussian) GradX(x, y float64) float64 { return -x * g.Eval(x, y) }
func (g gaussian) GradY(x, y float64) float64 { return -y * g.Eval(x, y) }
func (gaussian) Name() string                 { return "f(x,y) = 2·exp(−(x² + y²)/2)" }

type plane struct{}

func (plane) Eval(x, y float64) float64  { return x/2 + y/3 }
func (plane) GradX(x, y float64) float64 { return 1.0 / 2 }
func (plane) GradY(x, y float64) float64 { return 1.0 / 3 }
func (plane) Name() string               { return "f(x,y) = x/2 + y/3" }

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

// Command genpdf writes all example scenes as single-page PDF files.
// Run from the plot3d module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/plot3d"
	"seehuhn.de/go/plot3d/pdfdraw"
	"seehuhn.de/go/plot3d/scenes"
)

const outDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			name := category + "_" + sc.Name
			fname := filepath.Join(outDir, name+".pdf")
			if err := pdfdraw.Write(fname, plot3d.Render(sc.View)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			fmt.Println(fname)
		}
	}
}

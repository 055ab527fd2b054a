// Command export renders all example scenes to PNG files.
// Run from the plot3d module root directory.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/plot3d"
	"seehuhn.de/go/plot3d/ggdraw"
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
			fname := filepath.Join(outDir, name+".png")
			if err := export(sc, fname); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			fmt.Println(fname)
		}
	}
}

func export(sc scenes.Scene, fname string) error {
	img, err := ggdraw.Image(plot3d.Render(sc.View))
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

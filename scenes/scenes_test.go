package scenes

import (
	"testing"

	"seehuhn.de/go/plot3d"
)

// TestSceneNames checks that scene names are usable as file name stems.
func TestSceneNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, list := range All {
		for _, sc := range list {
			full := category + "_" + sc.Name
			if seen[full] {
				t.Errorf("duplicate scene name %q", full)
			}
			seen[full] = true
			for _, r := range full {
				if (r < 'a' || r > 'z') && r != '_' {
					t.Errorf("scene name %q contains %q", full, r)
				}
			}
		}
	}
}

// TestScenesRender smoke-tests every scene through the renderer.
func TestScenesRender(t *testing.T) {
	for category, list := range All {
		for _, sc := range list {
			cl := plot3d.Render(sc.View)
			if len(cl.Ops) == 0 {
				t.Errorf("%s/%s: empty command list", category, sc.Name)
			}
			if cl.Width != sc.View.Width || cl.Height != sc.View.Height {
				t.Errorf("%s/%s: size %dx%d", category, sc.Name, cl.Width, cl.Height)
			}
		}
	}
}

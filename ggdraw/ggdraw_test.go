package ggdraw

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/plot3d"
)

func TestImage(t *testing.T) {
	v := plot3d.NewView(320, 240)
	cl := plot3d.Render(v)

	img, err := Image(cl)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 320, 240) {
		t.Fatalf("image bounds %v", got)
	}

	// the surface must leave visible pixels on the canvas
	bg := color.NRGBAModel.Convert(cl.Background).(color.NRGBA)
	painted := 0
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c != bg {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("rendered image is entirely background")
	}
}

// TestDrawEmpty checks that an empty command list just clears the
// context.
func TestDrawEmpty(t *testing.T) {
	cl := &plot3d.CommandList{
		Width:      10,
		Height:     10,
		Background: color.NRGBA{R: 0xff, G: 0, B: 0, A: 0xff},
	}
	img, err := Image(cl)
	if err != nil {
		t.Fatal(err)
	}
	c := color.NRGBAModel.Convert(img.At(5, 5)).(color.NRGBA)
	if c.R < 0xf0 || c.G > 0x10 || c.B > 0x10 {
		t.Errorf("background pixel is %v", c)
	}
}

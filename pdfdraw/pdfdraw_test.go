package pdfdraw

import (
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/plot3d"
)

func TestWrite(t *testing.T) {
	v := plot3d.NewView(480, 360)
	v.SetField("saddle")
	cl := plot3d.Render(v)

	fname := filepath.Join(t.TempDir(), "saddle.pdf")
	if err := Write(fname, cl); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("empty PDF file")
	}
}

package uimock

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(3, 4, RGB(1, 0, 0))

	px := pm.GetPixel(3, 4)
	if px.R < 0.99 || px.G > 0.01 || px.A < 0.99 {
		t.Errorf("pixel = %+v, want opaque red", px)
	}

	// Out-of-bounds access is safe.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(10, 10, White)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds read = %+v, want Transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(Hex("#3B6E5C"))

	want := Hex("#3B6E5C")
	for _, probe := range [][2]int{{0, 0}, {7, 7}, {3, 5}} {
		if got := pm.GetPixel(probe[0], probe[1]); got != want {
			t.Errorf("pixel %v = %+v, want %+v", probe, got, want)
		}
	}
}

func TestSavePNG(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(White)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat exported file: %v", err)
	}
}

func TestSavePNGUnwritablePath(t *testing.T) {
	pm := NewPixmap(4, 4)
	path := filepath.Join(t.TempDir(), "missing", "deep", "out.png")

	err := pm.SavePNG(path)
	if err == nil {
		t.Fatal("SavePNG to missing directory succeeded")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the attempted path", err)
	}
}

func TestToImageIsACopy(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	img := pm.ToImage()
	pm.Clear(Black)

	r, _, _, _ := img.At(2, 2).RGBA()
	if r != 0xffff {
		t.Error("ToImage shares storage with the pixmap")
	}
}

package uimock

import (
	"math"
	"testing"

	"github.com/uimock/uimock/text"
)

func TestCenteredTextOffset(t *testing.T) {
	// The left edge of centered text is center_x - width/2, for any size.
	fonts := text.NewProvider()
	for _, size := range []float64{12, 28} {
		c := New(400, 100, White)
		c.SetFont(fonts.Face("Inter", text.Regular, size))

		w, _ := c.MeasureString("Folders")
		if w <= 0 {
			t.Fatalf("size %v: measured width = %v, want > 0", size, w)
		}
		ox, _ := c.stringOrigin("Folders", 200, 50, 0.5, 0.5)
		if math.Abs(ox-(200-w/2)) > 1e-9 {
			t.Errorf("size %v: left offset = %v, want %v", size, ox, 200-w/2)
		}
	}
}

func TestMeasureStringGrowsWithSize(t *testing.T) {
	fonts := text.NewProvider()
	c := New(10, 10, White)

	c.SetFont(fonts.Face("Inter", text.Regular, 12))
	w12, h12 := c.MeasureString("Agenda")
	c.SetFont(fonts.Face("Inter", text.Regular, 24))
	w24, h24 := c.MeasureString("Agenda")

	if w24 <= w12 || h24 <= h12 {
		t.Errorf("measure did not grow with size: (%v,%v) -> (%v,%v)", w12, h12, w24, h24)
	}
}

func TestDrawStringPaintsPixels(t *testing.T) {
	fonts := text.NewProvider()
	c := New(200, 60, White)
	c.SetFont(fonts.Face("Inter", text.Bold, 24))
	c.SetRGB(0, 0, 0)
	c.DrawString("Hi", 10, 40)

	painted := 0
	for y := 10; y < 45; y++ {
		for x := 8; x < 60; x++ {
			px := c.pixmap.GetPixel(x, y)
			if px.R < 0.5 {
				painted++
			}
		}
	}
	if painted < 20 {
		t.Errorf("painted %d dark pixels, want at least 20", painted)
	}
}

func TestNoFontIsNoop(t *testing.T) {
	c := New(50, 50, White)
	c.DrawString("ignored", 10, 25)
	c.DrawStringAnchored("ignored", 25, 25, 0.5, 0.5)
	if w, h := c.MeasureString("ignored"); w != 0 || h != 0 {
		t.Errorf("MeasureString without font = (%v,%v), want (0,0)", w, h)
	}
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if px := c.pixmap.GetPixel(x, y); px.R < 0.99 {
				t.Fatalf("pixel (%d,%d) painted without a font", x, y)
			}
		}
	}
}

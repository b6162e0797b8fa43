package raster

import (
	"image"
	"image/color"
	"testing"
)

func newWhite(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestFillTriangle(t *testing.T) {
	dst := newWhite(100, 100)
	p := Path{
		{Op: OpMoveTo, Args: [6]float64{10, 90}},
		{Op: OpLineTo, Args: [6]float64{90, 90}},
		{Op: OpLineTo, Args: [6]float64{50, 10}},
		{Op: OpClose},
	}
	Fill(dst, p, color.RGBA{R: 0xff, A: 0xff})

	// Centroid is inside.
	c := dst.RGBAAt(50, 63)
	if c.G > 0x10 {
		t.Errorf("centroid pixel = %+v, want red", c)
	}
	// Corner of the bounding box is outside.
	c = dst.RGBAAt(12, 12)
	if c.G < 0xf0 {
		t.Errorf("outside pixel = %+v, want white", c)
	}
}

func TestFillClosesOpenSubpath(t *testing.T) {
	dst := newWhite(60, 60)
	// Triangle without an explicit close.
	p := Path{
		{Op: OpMoveTo, Args: [6]float64{5, 55}},
		{Op: OpLineTo, Args: [6]float64{55, 55}},
		{Op: OpLineTo, Args: [6]float64{30, 5}},
	}
	Fill(dst, p, color.RGBA{B: 0xff, A: 0xff})

	c := dst.RGBAAt(30, 40)
	if c.B < 0xf0 || c.R > 0x10 {
		t.Errorf("interior pixel = %+v, want blue", c)
	}
}

func TestStrokeWidth(t *testing.T) {
	dst := newWhite(100, 40)
	p := Path{
		{Op: OpMoveTo, Args: [6]float64{10, 20}},
		{Op: OpLineTo, Args: [6]float64{90, 20}},
	}
	Stroke(dst, p, color.RGBA{R: 0xff, A: 0xff}, 6, CapButt)

	// On the line and inside the half-width.
	if c := dst.RGBAAt(50, 20); c.G > 0x10 {
		t.Errorf("stroke center pixel = %+v, want red", c)
	}
	if c := dst.RGBAAt(50, 18); c.G > 0x10 {
		t.Errorf("pixel inside half-width = %+v, want red", c)
	}
	// Clear of the stroke band.
	if c := dst.RGBAAt(50, 12); c.G < 0xf0 {
		t.Errorf("pixel outside stroke = %+v, want white", c)
	}
	// Butt cap: nothing past the endpoint.
	if c := dst.RGBAAt(95, 20); c.G < 0xf0 {
		t.Errorf("pixel past butt cap = %+v, want white", c)
	}
}

func TestStrokeRoundCap(t *testing.T) {
	dst := newWhite(100, 40)
	p := Path{
		{Op: OpMoveTo, Args: [6]float64{10, 20}},
		{Op: OpLineTo, Args: [6]float64{90, 20}},
	}
	Stroke(dst, p, color.RGBA{R: 0xff, A: 0xff}, 8, CapRound)

	// The cap disc extends past the endpoint.
	if c := dst.RGBAAt(92, 20); c.G > 0x10 {
		t.Errorf("pixel in round cap = %+v, want red", c)
	}
}

func TestStrokeZeroWidthIsNoop(t *testing.T) {
	dst := newWhite(20, 20)
	p := Path{
		{Op: OpMoveTo, Args: [6]float64{0, 10}},
		{Op: OpLineTo, Args: [6]float64{20, 10}},
	}
	Stroke(dst, p, color.RGBA{R: 0xff, A: 0xff}, 0, CapButt)

	if c := dst.RGBAAt(10, 10); c.G < 0xf0 {
		t.Errorf("zero-width stroke painted: %+v", c)
	}
}

func TestFlattenClosedPolyline(t *testing.T) {
	p := Path{
		{Op: OpMoveTo, Args: [6]float64{0, 0}},
		{Op: OpLineTo, Args: [6]float64{10, 0}},
		{Op: OpLineTo, Args: [6]float64{10, 10}},
		{Op: OpClose},
	}
	polys := flatten(p)
	if len(polys) != 1 {
		t.Fatalf("flatten produced %d polylines, want 1", len(polys))
	}
	poly := polys[0]
	if poly[0] != poly[len(poly)-1] {
		t.Error("closed polyline does not repeat its first point")
	}
}

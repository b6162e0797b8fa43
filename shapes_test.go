package uimock

import (
	"math"
	"testing"
)

func TestArrowheadLength(t *testing.T) {
	// Head segments are always length 12, regardless of shaft length.
	shafts := [][4]float64{
		{10, 10, 30, 10},
		{0, 0, 500, 320},
		{90, 90, 80, 10},
	}
	for _, s := range shafts {
		tip := Pt(s[2], s[3])
		for _, p := range arrowheadPoints(s[0], s[1], s[2], s[3]) {
			got := p.Distance(tip)
			if math.Abs(got-arrowheadLength) > 1e-9 {
				t.Errorf("arrow %v: head length = %v, want %v", s, got, arrowheadLength)
			}
		}
	}
}

func TestArrowheadSymmetry(t *testing.T) {
	x1, y1, x2, y2 := 20.0, 50.0, 90.0, 80.0
	theta := math.Atan2(y2-y1, x2-x1)
	pts := arrowheadPoints(x1, y1, x2, y2)

	a1 := math.Atan2(pts[0].Y-y2, pts[0].X-x2)
	a2 := math.Atan2(pts[1].Y-y2, pts[1].X-x2)

	d1 := normalizeAngle(a1 - theta)
	d2 := normalizeAngle(a2 - theta)
	if math.Abs(d1-arrowheadAngle) > 1e-9 {
		t.Errorf("first head segment at %v off shaft, want %v", d1, arrowheadAngle)
	}
	if math.Abs(d2+arrowheadAngle) > 1e-9 {
		t.Errorf("second head segment at %v off shaft, want %v", d2, -arrowheadAngle)
	}
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func TestDrawArrowPaintsShaft(t *testing.T) {
	c := New(120, 100, White)
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(2)
	c.DrawArrow(20, 50, 100, 50)
	c.Stroke()

	px := c.pixmap.GetPixel(60, 50)
	if px.R > 0.1 {
		t.Errorf("shaft pixel not painted: %+v", px)
	}
	// Head sweeps back from the tip; a point just behind and above the
	// tip lies on one head segment.
	hx := 100 + int(arrowheadLength*math.Cos(arrowheadAngle)/2)
	hy := 50 + int(arrowheadLength*math.Sin(arrowheadAngle)/2)
	px = c.pixmap.GetPixel(hx, hy)
	if px.R > 0.85 {
		t.Errorf("head pixel (%d,%d) not painted: %+v", hx, hy, px)
	}
}

func TestRectHelpers(t *testing.T) {
	r := XYWH(10, 20, 30, 40)
	if r.W() != 30 || r.H() != 40 {
		t.Errorf("W,H = %v,%v, want 30,40", r.W(), r.H())
	}
	if got := r.Center(); got != Pt(25, 40) {
		t.Errorf("Center = %+v", got)
	}
	moved := r.Translate(5, -5)
	if moved.X0 != 15 || moved.Y1 != 55 {
		t.Errorf("Translate = %+v", moved)
	}
	if !r.Contains(Pt(10, 20)) || r.Contains(Pt(40, 20)) {
		t.Error("Contains half-open interval violated")
	}
}

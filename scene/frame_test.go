package scene

import (
	"testing"

	"github.com/uimock/uimock"
	"github.com/uimock/uimock/text"
)

// renderBoard draws one frame with nested content, everything positioned
// relative to the frame origin.
func renderBoard(origin uimock.Point) *uimock.Canvas {
	pal := DefaultPalette(text.NewProvider())
	c := uimock.New(400, 560, pal.Background)

	f := PhoneFrame(c, pal, origin.X, origin.Y, 240, 420, "Folders")
	TabGroup{Labels: []string{"All", "Recent"}, Selected: 0}.
		Draw(c, pal, f.X+20, f.Y+90, 80, 28, 8)
	RowSeries(f, 140, 64, 3, func(i int, y float64) {
		Card(c, pal, uimock.XYWH(f.X+20, y, 200, 52), 12)
		c.SetFont(pal.Body)
		c.SetColor(pal.Ink)
		c.DrawStringTopLeft("North wall", f.X+36, y+16)
	})
	return c
}

func TestFrameRelocationIsPixelIdentical(t *testing.T) {
	const dx, dy = 7, 11
	a := renderBoard(uimock.Pt(40, 40))
	b := renderBoard(uimock.Pt(40+dx, 40+dy))

	for y := 20; y < 500; y++ {
		for x := 20; x < 300; x++ {
			pa := a.Pixmap().GetPixel(x, y)
			pb := b.Pixmap().GetPixel(x+dx, y+dy)
			if pa != pb {
				t.Fatalf("pixel (%d,%d): %+v != shifted %+v", x, y, pa, pb)
			}
		}
	}
}

func TestFrameAt(t *testing.T) {
	f := Frame{X: 100, Y: 200, W: 240, H: 420}

	x, y := f.At(24, 104)
	if x != 124 || y != 304 {
		t.Errorf("At = (%v,%v), want (124,304)", x, y)
	}
	r := f.Rect(24, 104, 60, 30)
	if r != uimock.XYWH(124, 304, 60, 30) {
		t.Errorf("Rect = %+v", r)
	}
	if f.CenterX() != 220 {
		t.Errorf("CenterX = %v, want 220", f.CenterX())
	}
}

func TestPhoneFrameReturnsItsGeometry(t *testing.T) {
	pal := DefaultPalette(text.NewProvider())
	c := uimock.New(400, 560, pal.Background)

	f := PhoneFrame(c, pal, 30, 50, 240, 420, "")
	want := Frame{X: 30, Y: 50, W: 240, H: 420}
	if f != want {
		t.Errorf("PhoneFrame = %+v, want %+v", f, want)
	}

	// Body fill differs from the board background.
	px := c.Pixmap().GetPixel(150, 260)
	if px.Color() == pal.Background.Color() {
		t.Error("frame interior is still background")
	}
}

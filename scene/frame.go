package scene

import "github.com/uimock/uimock"

// Frame is the logical origin and extent of one phone-shaped panel. Every
// child element of the phone is positioned relative to the frame origin
// via At or Rect, so relocating the origin relocates the whole subtree
// pixel-identically.
type Frame struct {
	X, Y, W, H float64
}

// At converts frame-relative offsets to absolute surface coordinates.
func (f Frame) At(dx, dy float64) (float64, float64) {
	return f.X + dx, f.Y + dy
}

// Rect builds an absolute rectangle from frame-relative origin and size.
func (f Frame) Rect(dx, dy, w, h float64) uimock.Rect {
	return uimock.XYWH(f.X+dx, f.Y+dy, w, h)
}

// CenterX returns the horizontal center of the frame.
func (f Frame) CenterX() float64 {
	return f.X + f.W/2
}

// Phone-frame fixed geometry.
const (
	frameRadius  = 30
	frameOutline = 3
	notchW       = 96
	notchH       = 24
	notchTop     = 16
	titleY       = 64
)

// PhoneFrame draws one phone-shaped panel: body, outline, a centered notch
// near the top, and an optional centered title below the notch. It returns
// the frame so callers can derive child offsets from its origin.
func PhoneFrame(c *uimock.Canvas, pal *Palette, x, y, w, h float64, title string) Frame {
	Panel{
		Rect:         uimock.XYWH(x, y, w, h),
		Radius:       frameRadius,
		Fill:         pal.Surface,
		Outline:      pal.Border,
		OutlineWidth: frameOutline,
	}.Draw(c)

	c.SetColor(pal.Border)
	c.DrawRoundedRectangle(x+(w-notchW)/2, y+notchTop, notchW, notchH, notchH/2)
	c.Fill()

	f := Frame{X: x, Y: y, W: w, H: h}
	if title != "" {
		c.SetFont(pal.Heading)
		c.SetColor(pal.Ink)
		c.DrawStringAnchored(title, f.CenterX(), y+titleY, 0.5, 0.5)
	}
	return f
}

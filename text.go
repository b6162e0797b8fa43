package uimock

import (
	"github.com/uimock/uimock/text"
)

// SetFont sets the current font face for text drawing.
//
// Example:
//
//	fonts := text.NewProvider()
//	c.SetFont(fonts.Face("Inter", text.Bold, 18))
func (c *Canvas) SetFont(face text.Face) {
	c.face = face
}

// Font returns the current font face, or nil if none has been set.
func (c *Canvas) Font() text.Face {
	return c.face
}

// DrawString draws text at position (x, y) where y is the baseline.
// If no font has been set, this function does nothing.
func (c *Canvas) DrawString(s string, x, y float64) {
	if c.face == nil {
		return
	}
	text.Draw(c.pixmap.RGBA(), s, c.face, x, y, c.color.Color())
}

// DrawStringTopLeft draws text with (x, y) as the top-left corner of the
// line box.
func (c *Canvas) DrawStringTopLeft(s string, x, y float64) {
	if c.face == nil {
		return
	}
	text.Draw(c.pixmap.RGBA(), s, c.face, x, y+c.face.Metrics().Ascent, c.color.Color())
}

// DrawStringAnchored draws text with an anchor point.
// The anchor is specified by ax and ay in the range [0, 1]:
//
//	(0, 0) = top-left
//	(0.5, 0.5) = center
//	(1, 1) = bottom-right
//
// The text is positioned so that the anchor point is at (x, y). Horizontal
// anchoring offsets the left edge by the measured width times ax.
func (c *Canvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	if c.face == nil {
		return
	}
	ox, oy := c.stringOrigin(s, x, y, ax, ay)
	text.Draw(c.pixmap.RGBA(), s, c.face, ox, oy, c.color.Color())
}

// stringOrigin computes the baseline origin for anchored text.
func (c *Canvas) stringOrigin(s string, x, y, ax, ay float64) (float64, float64) {
	w, h := c.MeasureString(s)
	return x - w*ax, y + h*ay
}

// MeasureString returns the dimensions of text in pixels: the horizontal
// advance and the line height (ascent + descent). Returns (0, 0) if no
// font has been set.
func (c *Canvas) MeasureString(s string) (w, h float64) {
	if c.face == nil {
		return 0, 0
	}
	return text.Measure(s, c.face)
}

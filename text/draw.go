package text

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measure returns the dimensions of text in pixels: the horizontal advance
// and the line height (ascent + descent).
func Measure(s string, face Face) (w, h float64) {
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	return face.Advance(s), m.Ascent + m.Descent
}

// Draw renders the string onto dst with (x, y) as the baseline origin.
// Pixels outside dst are clipped.
func Draw(dst *image.RGBA, s string, face Face, x, y float64, c color.Color) {
	if face == nil || s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face.raw(),
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y),
		},
	}
	d.DrawString(s)
}

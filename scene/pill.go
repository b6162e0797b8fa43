package scene

import "github.com/uimock/uimock"

// StatPill draws a small rounded card with a caption label over a value
// line. Repeated pills are placed by the caller at baseX + index*stride.
// Pass a zero valueColor to use the default ink.
func StatPill(c *uimock.Canvas, pal *Palette, r uimock.Rect, label, value string, valueColor uimock.RGBA) {
	if valueColor.A == 0 {
		valueColor = pal.Ink
	}

	Panel{
		Rect:         r,
		Radius:       12,
		Fill:         pal.Raised,
		Outline:      pal.Border,
		OutlineWidth: 1,
	}.Draw(c)

	cx := r.Center().X
	c.SetFont(pal.Caption)
	c.SetColor(pal.Muted)
	c.DrawStringAnchored(label, cx, r.Y0+r.H()*0.30, 0.5, 0.5)

	c.SetFont(pal.Heading)
	c.SetColor(valueColor)
	c.DrawStringAnchored(value, cx, r.Y0+r.H()*0.68, 0.5, 0.5)
}

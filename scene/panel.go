package scene

import "github.com/uimock/uimock"

// Panel describes one rounded rectangle: the atomic visual unit of a
// mockup. A Panel has no identity beyond the pixels it paints.
type Panel struct {
	Rect    uimock.Rect
	Radius  float64
	Fill    uimock.RGBA
	Outline uimock.RGBA // transparent = no outline
	// OutlineWidth is the stroke width when Outline is set.
	OutlineWidth float64
}

// Draw paints the panel onto the canvas.
func (p Panel) Draw(c *uimock.Canvas) {
	if p.Fill.A > 0 {
		c.SetColor(p.Fill)
		c.DrawRoundedRectangle(p.Rect.X0, p.Rect.Y0, p.Rect.W(), p.Rect.H(), p.Radius)
		c.Fill()
	}
	if p.Outline.A > 0 && p.OutlineWidth > 0 {
		c.SetColor(p.Outline)
		c.SetLineWidth(p.OutlineWidth)
		c.DrawRoundedRectangle(p.Rect.X0, p.Rect.Y0, p.Rect.W(), p.Rect.H(), p.Radius)
		c.Stroke()
	}
}

// Card paints a standard nested card: Raised fill with a hairline border.
func Card(c *uimock.Canvas, pal *Palette, r uimock.Rect, radius float64) {
	Panel{
		Rect:         r,
		Radius:       radius,
		Fill:         pal.Raised,
		Outline:      pal.Border,
		OutlineWidth: 1,
	}.Draw(c)
}

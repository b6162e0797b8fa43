package scene

import "github.com/uimock/uimock"

// TabChip draws one pill-shaped tab. Selected chips use the accent fill
// with contrasting text; unselected chips use the surface fill with a
// hairline border and muted text.
func TabChip(c *uimock.Canvas, pal *Palette, r uimock.Rect, label string, selected bool) {
	fill, textColor := pal.Surface, pal.Muted
	if selected {
		fill, textColor = pal.Accent, pal.AccentText
	}

	p := Panel{Rect: r, Radius: r.H() / 2, Fill: fill}
	if !selected {
		p.Outline = pal.Border
		p.OutlineWidth = 1.5
	}
	p.Draw(c)

	c.SetFont(pal.Caption)
	c.SetColor(textColor)
	center := r.Center()
	c.DrawStringAnchored(label, center.X, center.Y, 0.5, 0.5)
}

// TabGroup is an ordered set of tab labels with exactly one selected
// member. Selection is structural: rendering derives each chip's state
// from Selected, so a group cannot paint two selected tabs.
type TabGroup struct {
	Labels   []string
	Selected int
}

// Draw lays the chips out left to right from (x, y) with a horizontal
// stride of chipW+gap.
func (g TabGroup) Draw(c *uimock.Canvas, pal *Palette, x, y, chipW, chipH, gap float64) {
	for i, label := range g.Labels {
		r := uimock.XYWH(x+float64(i)*(chipW+gap), y, chipW, chipH)
		TabChip(c, pal, r, label, i == g.Selected)
	}
}

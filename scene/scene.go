package scene

import (
	"github.com/uimock/uimock"
)

// Scene owns one canvas for an entire mockup run: create, compose, export,
// discard. Nothing reads back from the canvas; draw order is the only
// compositing rule.
type Scene struct {
	canvas *uimock.Canvas
	pal    *Palette
}

// NewScene creates a scene with a canvas cleared to the palette
// background.
func NewScene(width, height int, pal *Palette) *Scene {
	return &Scene{
		canvas: uimock.New(width, height, pal.Background),
		pal:    pal,
	}
}

// Canvas returns the scene's canvas.
func (s *Scene) Canvas() *uimock.Canvas {
	return s.canvas
}

// Palette returns the scene's palette.
func (s *Scene) Palette() *Palette {
	return s.pal
}

// Export writes the scene to a PNG file and returns the path it wrote.
// Export failure is fatal to the run; the error names the attempted path.
func (s *Scene) Export(path string) (string, error) {
	if err := s.canvas.SavePNG(path); err != nil {
		return "", err
	}
	uimock.Logger().Info("mockup exported",
		"path", path,
		"width", s.canvas.Width(),
		"height", s.canvas.Height(),
	)
	return path, nil
}

// AnnotationPanel draws a full-width shared panel with a heading and plain
// text lines at a fixed vertical stride.
func AnnotationPanel(c *uimock.Canvas, pal *Palette, r uimock.Rect, title string, lines []string, lineStride float64) {
	Panel{
		Rect:         r,
		Radius:       18,
		Fill:         pal.Surface,
		Outline:      pal.Border,
		OutlineWidth: 2,
	}.Draw(c)

	x := r.X0 + 28
	c.SetFont(pal.Heading)
	c.SetColor(pal.Ink)
	c.DrawStringTopLeft(title, x, r.Y0+20)

	c.SetFont(pal.Body)
	c.SetColor(pal.Muted)
	for i, line := range lines {
		c.DrawStringTopLeft(line, x, r.Y0+56+float64(i)*lineStride)
	}
}

// ConnectorArrow draws a muted arrow between two points, typically from
// one frame's edge to the next to indicate a navigation flow.
func ConnectorArrow(c *uimock.Canvas, pal *Palette, x1, y1, x2, y2 float64) {
	c.SetColor(pal.Muted)
	c.SetLineWidth(2.5)
	c.SetLineCap(uimock.LineCapRound)
	c.DrawArrow(x1, y1, x2, y2)
	c.Stroke()
}

package uimock

import (
	"image"
	"image/color"

	"github.com/uimock/uimock/internal/raster"
	"github.com/uimock/uimock/text"
)

// LineCap specifies the shape of stroked line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// Canvas is the main drawing context. It owns a pixmap for the duration of
// one render run and composites draw calls onto it in call order: later
// draws occlude earlier ones at overlapping pixels.
//
// Canvas is single-threaded and single-pass. Drawing cannot fail; geometry
// outside the surface is clipped. The only fallible operation is SavePNG.
type Canvas struct {
	width  int
	height int
	pixmap *Pixmap

	// Current state
	path      *Path
	color     RGBA
	lineWidth float64
	lineCap   LineCap
	face      text.Face
}

// New creates a canvas of the given dimensions cleared to the background
// color.
func New(width, height int, background RGBA) *Canvas {
	pm := NewPixmap(width, height)
	pm.Clear(background)
	return &Canvas{
		width:     width,
		height:    height,
		pixmap:    pm,
		path:      NewPath(),
		color:     Black,
		lineWidth: 1.0,
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Pixmap returns the canvas's pixmap.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the canvas's image.
func (c *Canvas) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// ClearWithColor fills the entire canvas with a specific color.
func (c *Canvas) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current drawing color.
func (c *Canvas) SetColor(col color.Color) {
	c.color = FromColor(col)
}

// SetRGB sets the current color using RGB values (0-1).
func (c *Canvas) SetRGB(r, g, b float64) {
	c.color = RGB(r, g, b)
}

// SetRGBA sets the current color using RGBA values (0-1).
func (c *Canvas) SetRGBA(r, g, b, a float64) {
	c.color = RGBA{R: r, G: g, B: b, A: a}
}

// SetHexColor sets the current color using a hex string.
func (c *Canvas) SetHexColor(hex string) {
	c.color = Hex(hex)
}

// SetLineWidth sets the line width for stroking.
func (c *Canvas) SetLineWidth(width float64) {
	c.lineWidth = width
}

// SetLineCap sets the line cap style.
func (c *Canvas) SetLineCap(cap LineCap) {
	c.lineCap = cap
}

// MoveTo starts a new subpath at the given point.
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Canvas) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// QuadTo adds a quadratic Bezier curve to the current path.
func (c *Canvas) QuadTo(cx, cy, x, y float64) {
	c.path.QuadTo(cx, cy, x, y)
}

// CubeTo adds a cubic Bezier curve to the current path.
func (c *Canvas) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubeTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Canvas) ClearPath() {
	c.path.Clear()
}

// Fill fills the current path with the current color and clears it.
func (c *Canvas) Fill() {
	c.FillPreserve()
	c.path.Clear()
}

// FillPreserve fills the current path without clearing it.
func (c *Canvas) FillPreserve() {
	raster.Fill(c.pixmap.RGBA(), c.path.segs, c.color.Color())
}

// Stroke strokes the current path with the current color and line width,
// then clears it.
func (c *Canvas) Stroke() {
	c.StrokePreserve()
	c.path.Clear()
}

// StrokePreserve strokes the current path without clearing it.
func (c *Canvas) StrokePreserve() {
	raster.Stroke(c.pixmap.RGBA(), c.path.segs, c.color.Color(), c.lineWidth, strokeCap(c.lineCap))
}

func strokeCap(cap LineCap) raster.Cap {
	if cap == LineCapRound {
		return raster.CapRound
	}
	return raster.CapButt
}

// SetPixel sets a single pixel to the current color.
func (c *Canvas) SetPixel(x, y int) {
	c.pixmap.SetPixel(x, y, c.color)
}

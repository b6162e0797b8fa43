package uimock

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// toByte converts a [0, 1] component to a rounded byte value.
func toByte(v float64) uint8 {
	return uint8(clamp255(v*255) + 0.5)
}

// Pixmap represents a rectangular pixel buffer backed by an image.RGBA.
type Pixmap struct {
	width  int
	height int
	rgba   *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		rgba:   image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// RGBA returns the backing image. It is a live view, not a copy: drawing
// into it draws into the pixmap.
func (p *Pixmap) RGBA() *image.RGBA {
	return p.rgba
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.rgba.PixOffset(x, y)
	p.rgba.Pix[i+0] = toByte(c.R * c.A)
	p.rgba.Pix[i+1] = toByte(c.G * c.A)
	p.rgba.Pix[i+2] = toByte(c.B * c.A)
	p.rgba.Pix[i+3] = toByte(c.A)
}

// GetPixel returns the color of a single pixel. Out-of-bounds reads return
// Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return FromColor(p.rgba.RGBAAt(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := toByte(c.R * c.A)
	g := toByte(c.G * c.A)
	b := toByte(c.B * c.A)
	a := toByte(c.A)

	pix := p.rgba.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = a
	}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.rgba.Pix)
	return img
}

// SavePNG saves the pixmap to a PNG file. Failures are fatal to a render
// run; the returned error names the attempted path.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.rgba); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.rgba.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.rgba.Bounds()
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

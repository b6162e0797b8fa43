package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSource is a parsed font from which sized faces are created.
type FontSource struct {
	fnt   *opentype.Font
	faces map[float64]font.Face
}

// NewFontSource parses TTF or OTF font data.
func NewFontSource(data []byte) (*FontSource, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontSource{
		fnt:   fnt,
		faces: make(map[float64]font.Face),
	}, nil
}

// NewFontSourceFromFile loads and parses a font file.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	src, err := NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// Face returns a face of the given size in points. Faces are rendered at
// 72 DPI, so one point equals one pixel. Faces are cached per size.
func (s *FontSource) Face(points float64) Face {
	f, ok := s.faces[points]
	if !ok {
		var err error
		f, err = opentype.NewFace(s.fnt, &opentype.FaceOptions{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			// Cannot happen for a successfully parsed font; keep text
			// drawing alive regardless.
			f = basicfont.Face7x13
		}
		s.faces[points] = f
	}
	return &sourceFace{source: s, size: points, face: f}
}

// Metrics describes the vertical extents of a face in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64
	// Height is the recommended line height.
	Height float64
}

// Face is a font at a specific size, ready for measurement and drawing.
type Face interface {
	// Metrics returns the face's vertical metrics.
	Metrics() Metrics
	// Advance returns the horizontal advance of the string in pixels.
	Advance(s string) float64
	// Size returns the face's size in points.
	Size() float64
	// Source returns the FontSource the face was created from.
	Source() *FontSource

	raw() font.Face
}

type sourceFace struct {
	source *FontSource
	size   float64
	face   font.Face
}

func (f *sourceFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

func (f *sourceFace) Advance(s string) float64 {
	d := &font.Drawer{Face: f.face}
	return fixedToFloat(d.MeasureString(s))
}

func (f *sourceFace) Size() float64 {
	return f.size
}

func (f *sourceFace) Source() *FontSource {
	return f.source
}

func (f *sourceFace) raw() font.Face {
	return f.face
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

package uimock

import (
	"math"

	"github.com/uimock/uimock/internal/raster"
)

// circleK is the cubic Bezier approximation constant for a quarter circle.
const circleK = 0.5522847498307936

// Path accumulates drawing commands for a single fill or stroke.
type Path struct {
	segs raster.Path
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.segs = append(p.segs, raster.Segment{Op: raster.OpMoveTo, Args: [6]float64{x, y}})
}

// LineTo adds a line to the current subpath.
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, raster.Segment{Op: raster.OpLineTo, Args: [6]float64{x, y}})
}

// QuadTo adds a quadratic Bezier curve to the current subpath.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, raster.Segment{Op: raster.OpQuadTo, Args: [6]float64{cx, cy, x, y}})
}

// CubeTo adds a cubic Bezier curve to the current subpath.
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, raster.Segment{Op: raster.OpCubeTo, Args: [6]float64{c1x, c1y, c2x, c2y, x, y}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.segs = append(p.segs, raster.Segment{Op: raster.OpClose})
}

// Clear removes all segments from the path.
func (p *Path) Clear() {
	p.segs = p.segs[:0]
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// Rectangle adds an axis-aligned rectangle subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// RoundedRectangle adds a rectangle with rounded corners.
// The radius is clamped to half of the smaller dimension.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	maxR := math.Min(w, h) / 2
	if r > maxR {
		r = maxR
	}
	if r < 0 {
		r = 0
	}
	k := r * circleK

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CubeTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CubeTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CubeTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CubeTo(x, y+r-k, x+r-k, y, x+r, y)
	p.Close()
}

// Ellipse adds an axis-aligned ellipse subpath centered at (cx, cy).
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	kx := rx * circleK
	ky := ry * circleK

	p.MoveTo(cx+rx, cy)
	p.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

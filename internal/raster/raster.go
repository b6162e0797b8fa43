// Package raster rasterizes vector paths onto RGBA images.
//
// Filling is delegated to golang.org/x/image/vector, which accumulates
// signed coverage and saturates it, so overlapping same-winding subpaths
// merge cleanly and coverage outside the destination is dropped. Stroking
// is implemented by expanding the flattened path into an outline (one quad
// per segment plus round joins) and filling that outline.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Op identifies a path segment verb.
type Op uint8

const (
	// OpMoveTo starts a new subpath. Args: x, y.
	OpMoveTo Op = iota
	// OpLineTo adds a line. Args: x, y.
	OpLineTo
	// OpQuadTo adds a quadratic Bezier. Args: cx, cy, x, y.
	OpQuadTo
	// OpCubeTo adds a cubic Bezier. Args: c1x, c1y, c2x, c2y, x, y.
	OpCubeTo
	// OpClose closes the current subpath.
	OpClose
)

// Segment is one path verb with its coordinates.
type Segment struct {
	Op   Op
	Args [6]float64
}

// Path is an ordered sequence of segments.
type Path []Segment

// Cap specifies the shape of stroked line endpoints.
type Cap uint8

const (
	// CapButt ends strokes flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends strokes with a semicircle.
	CapRound
)

// Fill rasterizes the path onto dst with the given color using source-over
// compositing. Open subpaths are closed implicitly. Fill cannot fail;
// geometry outside dst is clipped.
func Fill(dst *image.RGBA, p Path, c color.Color) {
	if len(p) == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	open := false
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(s.Args[0]), float32(s.Args[1]))
			open = true
		case OpLineTo:
			if open {
				z.LineTo(float32(s.Args[0]), float32(s.Args[1]))
			}
		case OpQuadTo:
			if open {
				z.QuadTo(
					float32(s.Args[0]), float32(s.Args[1]),
					float32(s.Args[2]), float32(s.Args[3]),
				)
			}
		case OpCubeTo:
			if open {
				z.CubeTo(
					float32(s.Args[0]), float32(s.Args[1]),
					float32(s.Args[2]), float32(s.Args[3]),
					float32(s.Args[4]), float32(s.Args[5]),
				)
			}
		case OpClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Stroke rasterizes the path's outline onto dst with the given color and
// stroke width. Joins are round; endpoint shape follows cap.
func Stroke(dst *image.RGBA, p Path, c color.Color, width float64, cap Cap) {
	if width <= 0 || len(p) == 0 {
		return
	}
	Fill(dst, strokeOutline(p, width, cap), c)
}

type pt struct {
	x, y float64
}

// flattenSteps is the number of line segments each curve is divided into.
// Mockup-scale corner radii stay well under a quarter pixel of chord error.
const flattenSteps = 16

// flatten converts the path into polylines. Closed subpaths repeat their
// first point at the end.
func flatten(p Path) [][]pt {
	var polys [][]pt
	var cur []pt
	var start pt
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	for _, s := range p {
		switch s.Op {
		case OpMoveTo:
			flush()
			start = pt{s.Args[0], s.Args[1]}
			cur = []pt{start}
		case OpLineTo:
			if len(cur) > 0 {
				cur = append(cur, pt{s.Args[0], s.Args[1]})
			}
		case OpQuadTo:
			if len(cur) > 0 {
				p0 := cur[len(cur)-1]
				cp := pt{s.Args[0], s.Args[1]}
				p1 := pt{s.Args[2], s.Args[3]}
				for i := 1; i <= flattenSteps; i++ {
					t := float64(i) / flattenSteps
					u := 1 - t
					cur = append(cur, pt{
						x: u*u*p0.x + 2*u*t*cp.x + t*t*p1.x,
						y: u*u*p0.y + 2*u*t*cp.y + t*t*p1.y,
					})
				}
			}
		case OpCubeTo:
			if len(cur) > 0 {
				p0 := cur[len(cur)-1]
				c1 := pt{s.Args[0], s.Args[1]}
				c2 := pt{s.Args[2], s.Args[3]}
				p1 := pt{s.Args[4], s.Args[5]}
				for i := 1; i <= flattenSteps; i++ {
					t := float64(i) / flattenSteps
					u := 1 - t
					cur = append(cur, pt{
						x: u*u*u*p0.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*p1.x,
						y: u*u*u*p0.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*p1.y,
					})
				}
			}
		case OpClose:
			if len(cur) > 0 {
				cur = append(cur, start)
				flush()
			}
		}
	}
	flush()
	return polys
}

// strokeOutline expands the path into fillable stroke geometry: one quad
// per polyline segment, a disc at every interior vertex (round joins), and
// discs at the endpoints for CapRound. All subpaths share the same winding
// direction so overlaps saturate instead of cancelling.
func strokeOutline(p Path, width float64, cap Cap) Path {
	half := width / 2
	var out Path
	for _, poly := range flatten(p) {
		closed := len(poly) > 2 && poly[0] == poly[len(poly)-1]
		for i := 0; i+1 < len(poly); i++ {
			a, b := poly[i], poly[i+1]
			dx, dy := b.x-a.x, b.y-a.y
			length := math.Hypot(dx, dy)
			if length == 0 {
				continue
			}
			// Unit normal, pointing "up" relative to the segment direction.
			nx, ny := dy/length*half, -dx/length*half
			out = append(out,
				Segment{Op: OpMoveTo, Args: [6]float64{a.x + nx, a.y + ny}},
				Segment{Op: OpLineTo, Args: [6]float64{b.x + nx, b.y + ny}},
				Segment{Op: OpLineTo, Args: [6]float64{b.x - nx, b.y - ny}},
				Segment{Op: OpLineTo, Args: [6]float64{a.x - nx, a.y - ny}},
				Segment{Op: OpClose},
			)
		}
		for i, v := range poly {
			interior := i > 0 && i < len(poly)-1
			endpoint := i == 0 || i == len(poly)-1
			switch {
			case interior:
				out = appendDisc(out, v.x, v.y, half)
			case closed && i == 0:
				// Shared first/last vertex of a closed contour.
				out = appendDisc(out, v.x, v.y, half)
			case endpoint && cap == CapRound && !closed:
				out = appendDisc(out, v.x, v.y, half)
			}
		}
	}
	return out
}

// circleK is the cubic Bezier approximation constant for a quarter circle.
const circleK = 0.5522847498307936

// appendDisc appends a clockwise (in image coordinates) circle subpath.
func appendDisc(out Path, cx, cy, r float64) Path {
	k := r * circleK
	return append(out,
		Segment{Op: OpMoveTo, Args: [6]float64{cx + r, cy}},
		Segment{Op: OpCubeTo, Args: [6]float64{cx + r, cy + k, cx + k, cy + r, cx, cy + r}},
		Segment{Op: OpCubeTo, Args: [6]float64{cx - k, cy + r, cx - r, cy + k, cx - r, cy}},
		Segment{Op: OpCubeTo, Args: [6]float64{cx - r, cy - k, cx - k, cy - r, cx, cy - r}},
		Segment{Op: OpCubeTo, Args: [6]float64{cx + k, cy - r, cx + r, cy - k, cx + r, cy}},
		Segment{Op: OpClose},
	)
}

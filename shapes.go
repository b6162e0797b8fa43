package uimock

import "math"

// Arrowhead geometry: two short segments swept back from the tip at a
// fixed angle off the shaft direction. The head size is constant no
// matter how long the shaft is.
const (
	arrowheadLength = 12.0
	arrowheadAngle  = 2.6 // radians
)

// DrawLine adds a line between two points to the current path.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle to the current path.
func (c *Canvas) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// DrawRoundedRectangle adds a rectangle with rounded corners to the
// current path. The radius is clamped to half of the smaller dimension.
func (c *Canvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}

// DrawEllipse adds an axis-aligned ellipse centered at (x, y) to the
// current path.
func (c *Canvas) DrawEllipse(x, y, rx, ry float64) {
	c.path.Ellipse(x, y, rx, ry)
}

// DrawCircle adds a circle centered at (x, y) to the current path.
func (c *Canvas) DrawCircle(x, y, r float64) {
	c.path.Ellipse(x, y, r, r)
}

// DrawArrow adds a line from (x1, y1) to (x2, y2) plus a two-segment
// arrowhead at the tip to the current path. Stroke it to paint:
//
//	c.SetLineWidth(2)
//	c.DrawArrow(100, 80, 220, 80)
//	c.Stroke()
func (c *Canvas) DrawArrow(x1, y1, x2, y2 float64) {
	c.DrawLine(x1, y1, x2, y2)
	for _, p := range arrowheadPoints(x1, y1, x2, y2) {
		c.DrawLine(x2, y2, p.X, p.Y)
	}
}

// arrowheadPoints returns the free endpoints of the two head segments for
// an arrow from (x1, y1) to (x2, y2).
func arrowheadPoints(x1, y1, x2, y2 float64) [2]Point {
	theta := math.Atan2(y2-y1, x2-x1)
	var pts [2]Point
	for i, phi := range [2]float64{theta + arrowheadAngle, theta - arrowheadAngle} {
		pts[i] = Point{
			X: x2 + arrowheadLength*math.Cos(phi),
			Y: y2 + arrowheadLength*math.Sin(phi),
		}
	}
	return pts
}

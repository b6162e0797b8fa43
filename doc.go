// Package uimock provides a small immediate-mode 2D drawing surface for
// generating static UI-mockup images.
//
// # Overview
//
// uimock renders into an in-memory RGBA pixmap and exports PNG files. The
// API is a drawing context in the fogleman/gg style: set state, describe a
// shape, then fill or stroke it. Draw calls are strictly ordered; later
// draws occlude earlier ones at overlapping pixels.
//
// # Quick Start
//
//	import "github.com/uimock/uimock"
//
//	c := uimock.New(800, 600, uimock.White)
//
//	c.SetHexColor("#3B6E5C")
//	c.DrawRoundedRectangle(40, 40, 200, 120, 16)
//	c.Fill()
//
//	if err := c.SavePNG("panel.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Path, Pixmap, Point, Rect, color helpers
//   - text: font sources, measurement, glyph drawing, font provider
//   - scene: composite mockup builders (phone frames, chips, pills, rows)
//   - internal/raster: CPU fill and stroke rasterization
//
// Drawing never fails: geometry outside the surface is clipped by the
// rasterizer. The only fallible operation is PNG export.
package uimock

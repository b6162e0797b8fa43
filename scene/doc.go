// Package scene provides the composite building blocks for mobile-UI
// mockup boards: phone frames, tab chips, stat pills, repeated row series,
// and shared annotation panels, all drawn through a uimock.Canvas with a
// shared style palette.
//
// Layout is authored, not computed: callers place frames at literal
// coordinates and position every child element relative to its frame's
// origin via Frame.At, so an entire phone can be relocated by changing one
// origin. Repeated content uses RowSeries/ColumnSeries, which derive each
// item's position from a start offset and a fixed per-item stride.
package scene

package scene

// RowSeries invokes render once per item of an ordered collection, passing
// the index and the absolute y of that row: frame.Y + startY + i*stride.
// Item order is rendering order, top to bottom.
//
// There is no overflow handling: when stride*n exceeds the frame's content
// area, rows paint past it over whatever lies below.
func RowSeries(f Frame, startY, stride float64, n int, render func(i int, y float64)) {
	for i := 0; i < n; i++ {
		render(i, f.Y+startY+float64(i)*stride)
	}
}

// ColumnSeries is the horizontal analog of RowSeries: render receives the
// absolute x of each column, frame.X + startX + i*stride.
func ColumnSeries(f Frame, startX, stride float64, n int, render func(i int, x float64)) {
	for i := 0; i < n; i++ {
		render(i, f.X+startX+float64(i)*stride)
	}
}

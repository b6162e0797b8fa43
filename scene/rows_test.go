package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uimock/uimock"
	"github.com/uimock/uimock/text"
)

func TestRowSeriesPositions(t *testing.T) {
	f := Frame{X: 100, Y: 200, W: 300, H: 500}

	var idx []int
	var ys []float64
	RowSeries(f, 40, 60, 4, func(i int, y float64) {
		idx = append(idx, i)
		ys = append(ys, y)
	})

	assert.Equal(t, []int{0, 1, 2, 3}, idx)
	assert.Equal(t, []float64{240, 300, 360, 420}, ys)
}

func TestColumnSeriesPositions(t *testing.T) {
	f := Frame{X: 50, Y: 0, W: 400, H: 300}

	var xs []float64
	ColumnSeries(f, 24, 48, 3, func(i int, x float64) {
		xs = append(xs, x)
	})

	assert.Equal(t, []float64{74, 122, 170}, xs)
}

func TestRowSeriesZeroItems(t *testing.T) {
	called := false
	RowSeries(Frame{}, 10, 10, 0, func(int, float64) { called = true })
	assert.False(t, called)
}

// Overlapping rows follow draw order: a later row paints over the tail of
// the one before it.
func TestRowSeriesOverlapFollowsOrder(t *testing.T) {
	pal := DefaultPalette(text.NewProvider())
	c := uimock.New(200, 300, pal.Background)
	f := Frame{X: 0, Y: 0, W: 200, H: 300}

	colors := []uimock.RGBA{uimock.Hex("#C0392B"), uimock.Hex("#2980B9")}
	RowSeries(f, 20, 40, 2, func(i int, y float64) {
		c.SetColor(colors[i])
		c.DrawRectangle(20, y, 160, 52)
		c.Fill()
	})

	// Row 0 alone at its top.
	px := c.Pixmap().GetPixel(100, 30)
	assert.Equal(t, colors[0].Color(), px.Color())
	// Overlap band (row 0 spans 20..72, row 1 spans 60..112) is row 1.
	px = c.Pixmap().GetPixel(100, 65)
	assert.Equal(t, colors[1].Color(), px.Color())
}

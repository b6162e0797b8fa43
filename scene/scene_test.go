package scene

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uimock/uimock"
	"github.com/uimock/uimock/text"
)

func TestBoardEndToEnd(t *testing.T) {
	pal := DefaultPalette(text.NewProvider())
	s := NewScene(1460, 900, pal)
	c := s.Canvas()

	var frames []Frame
	for _, x := range []float64{40, 520, 1000} {
		frames = append(frames, PhoneFrame(c, pal, x, 88, 420, 640, "Screen"))
	}
	AnnotationPanel(c, pal, uimock.R(40, 780, 1420, 864),
		"Flow notes", []string{"Left to right: list, detail, confirm."}, 24)

	require.Equal(t, 1460, c.Width())
	require.Equal(t, 900, c.Height())

	bg := pal.Background.Color()
	for i, f := range frames {
		px := c.Pixmap().GetPixel(int(f.X+f.W/2), int(f.Y+f.H/2))
		assert.NotEqual(t, bg, px.Color(), "frame %d interior should be painted", i)
	}

	// Gutters between frames and the margins stay untouched background.
	for _, x := range []int{490, 970} {
		px := c.Pixmap().GetPixel(x, 300)
		assert.Equal(t, bg, px.Color(), "gutter at x=%d", x)
	}
	assert.Equal(t, bg, c.Pixmap().GetPixel(730, 40).Color())
	assert.Equal(t, bg, c.Pixmap().GetPixel(730, 890).Color())

	out := filepath.Join(t.TempDir(), "board.png")
	path, err := s.Export(out)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1460, cfg.Width)
	assert.Equal(t, 900, cfg.Height)
}

func TestExportFailureNamesPath(t *testing.T) {
	pal := DefaultPalette(text.NewProvider())
	s := NewScene(10, 10, pal)

	_, err := s.Export(filepath.Join(t.TempDir(), "missing", "x.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x.png")
}

func TestAnnotationPanelFill(t *testing.T) {
	pal := DefaultPalette(text.NewProvider())
	c := uimock.New(600, 200, pal.Background)

	AnnotationPanel(c, pal, uimock.R(20, 20, 580, 180),
		"Notes", []string{"one", "two"}, 24)

	// Panel interior away from any text.
	px := c.Pixmap().GetPixel(560, 100)
	assert.Equal(t, pal.Surface.Color(), px.Color())
	// Outside the panel.
	px = c.Pixmap().GetPixel(5, 100)
	assert.Equal(t, pal.Background.Color(), px.Color())
}

func TestConnectorArrowPaints(t *testing.T) {
	pal := DefaultPalette(text.NewProvider())
	c := uimock.New(120, 60, pal.Background)

	ConnectorArrow(c, pal, 10, 30, 110, 30)

	px := c.Pixmap().GetPixel(60, 30)
	assert.Equal(t, pal.Muted.Color(), px.Color(), "shaft midpoint carries the muted stroke")
}

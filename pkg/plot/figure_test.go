package plot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFigSizePixels(t *testing.T) {
	assert.Equal(t, image.Pt(1000, 800), DefaultFigSize.Pixels())
	assert.Equal(t, image.Pt(250, 120), FigSize{Width: 2.5, Height: 1.2}.Pixels())
}

func TestNewFigureFitsAndCentres(t *testing.T) {
	black := color.RGBA{A: 255}
	fig := NewFigure("wide", solid(100, 10, black), FigSize{Width: 4, Height: 3})

	assert.Equal(t, image.Rect(0, 0, 400, 300), fig.Bounds())
	// a 10:1 image fitted into 400x300 leaves white bands above and below
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, fig.Image.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, fig.Image.RGBAAt(200, 299))
	centre := fig.Image.RGBAAt(200, 150)
	assert.Less(t, centre.R, uint8(16))
	assert.Less(t, centre.G, uint8(16))
}

func TestNewFigureInvalidSize(t *testing.T) {
	fig := NewFigure("", solid(4, 4, color.White), FigSize{})
	assert.Equal(t, DefaultFigSize, fig.Size)
	assert.Equal(t, image.Rect(0, 0, 1000, 800), fig.Bounds())

	blank := NewFigure("", nil, FigSize{Width: 1, Height: 1})
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, blank.Image.RGBAAt(50, 50))
}

func TestFigurePNG(t *testing.T) {
	fig := NewFigure("", solid(20, 10, color.RGBA{G: 255, A: 255}), FigSize{Width: 0.4, Height: 0.2})

	var buf bytes.Buffer
	require.NoError(t, fig.WritePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, fig.Bounds(), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "fig.png")
	require.NoError(t, fig.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())

	assert.Error(t, fig.SavePNG(filepath.Join(t.TempDir(), "missing", "fig.png")))
}

// Package plot renders feature matches into figures that can be shown in
// the figure switcher or written out as PNG files.
package plot

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/disintegration/gift"
)

// DPI is the number of pixels per inch of figure size.
const DPI = 100

// FigSize is a figure size in inches.
type FigSize struct {
	Width  float64
	Height float64
}

// DefaultFigSize is used when no size, or an invalid one, is given.
var DefaultFigSize = FigSize{Width: 10, Height: 8}

// Pixels returns the figure size in pixels at DPI.
func (s FigSize) Pixels() image.Point {
	return image.Pt(int(math.Round(s.Width*DPI)), int(math.Round(s.Height*DPI)))
}

func (s FigSize) valid() bool {
	px := s.Pixels()
	return px.X > 0 && px.Y > 0
}

// Figure is a rendered, axis-free plot.
type Figure struct {
	Title string
	Size  FigSize
	Image *image.RGBA
}

// NewFigure lays img out on a white canvas of the given size. The image is
// scaled to fit while keeping its aspect ratio and centred on the canvas.
func NewFigure(title string, img image.Image, size FigSize) *Figure {
	if !size.valid() {
		size = DefaultFigSize
	}
	px := size.Pixels()

	canvas := image.NewRGBA(image.Rect(0, 0, px.X, px.Y))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	if img != nil && !img.Bounds().Empty() {
		g := gift.New(gift.ResizeToFit(px.X, px.Y, gift.CubicResampling))
		fit := g.Bounds(img.Bounds())
		offset := image.Pt((px.X-fit.Dx())/2, (px.Y-fit.Dy())/2)
		g.DrawAt(canvas, img, offset, gift.OverOperator)
	}

	return &Figure{Title: title, Size: size, Image: canvas}
}

// Bounds returns the pixel bounds of the figure.
func (f *Figure) Bounds() image.Rectangle {
	return f.Image.Bounds()
}

// WritePNG encodes the figure as PNG.
func (f *Figure) WritePNG(w io.Writer) error {
	return png.Encode(w, f.Image)
}

// SavePNG writes the figure to path as a PNG file.
func (f *Figure) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WritePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

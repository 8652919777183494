package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/intothevoid/featmatch/pkg/match"
	"github.com/intothevoid/featmatch/pkg/vision"
	"gocv.io/x/gocv"
)

var (
	// ErrMatchIndex is returned when a match refers to a keypoint that does not exist.
	ErrMatchIndex = errors.New("match index out of range")
	// ErrEmptyImage is returned when one of the input images has no pixels.
	ErrEmptyImage = errors.New("empty image")
)

const (
	markerRadius  = 3
	lineThickness = 1
)

// Options controls how matches are drawn.
type Options struct {
	Title   string
	FigSize FigSize
	// MatchColor overrides the colour of every match. When nil each match
	// gets its own random colour.
	MatchColor *color.RGBA
	// Seed seeds the random match colours.
	Seed uint64
}

// palette hands out one colour per match.
type palette struct {
	fixed *color.RGBA
	rng   *rand.Rand
}

func newPalette(opts Options) *palette {
	return &palette{
		fixed: opts.MatchColor,
		rng:   rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
	}
}

func (p *palette) next() color.RGBA {
	if p.fixed != nil {
		return *p.fixed
	}
	return color.RGBA{
		R: uint8(p.rng.IntN(256)),
		G: uint8(p.rng.IntN(256)),
		B: uint8(p.rng.IntN(256)),
		A: 255,
	}
}

func checkMatches(matches []gocv.DMatch, nLeft, nRight int) error {
	for i, m := range matches {
		if m.QueryIdx < 0 || m.QueryIdx >= nLeft {
			return fmt.Errorf("match %d: left index %d of %d keypoints: %w", i, m.QueryIdx, nLeft, ErrMatchIndex)
		}
		if m.TrainIdx < 0 || m.TrainIdx >= nRight {
			return fmt.Errorf("match %d: right index %d of %d keypoints: %w", i, m.TrainIdx, nRight, ErrMatchIndex)
		}
	}
	return nil
}

// paste copies src into dst with its top left corner at at.
func paste(dst *gocv.Mat, src gocv.Mat, at image.Point) {
	roi := dst.Region(image.Rect(at.X, at.Y, at.X+src.Cols(), at.Y+src.Rows()))
	defer roi.Close()
	src.CopyTo(&roi)
}

// RenderMatches places left and right side by side on a BGR canvas and
// draws every left-to-right match as a line between two circled
// keypoints. Keypoints without a match are not drawn. The canvas is as tall
// as the taller image; the shorter one is padded with black.
// The caller owns the returned Mat.
func RenderMatches(left, right gocv.Mat, kptsL, kptsR []gocv.KeyPoint, matches []gocv.DMatch, opts Options) (gocv.Mat, error) {
	if left.Empty() || right.Empty() {
		return gocv.NewMat(), ErrEmptyImage
	}
	if err := checkMatches(matches, len(kptsL), len(kptsR)); err != nil {
		return gocv.NewMat(), err
	}

	l := vision.BGR(left)
	defer l.Close()
	r := vision.BGR(right)
	defer r.Close()

	rows := max(l.Rows(), r.Rows())
	cols := l.Cols() + r.Cols()
	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), rows, cols, gocv.MatTypeCV8UC3)

	offset := image.Pt(l.Cols(), 0)
	paste(&canvas, l, image.Pt(0, 0))
	paste(&canvas, r, offset)

	colours := newPalette(opts)
	for _, m := range matches {
		c := colours.next()
		p1 := vision.KeyPointPoint(kptsL[m.QueryIdx])
		p2 := vision.KeyPointPoint(kptsR[m.TrainIdx]).Add(offset)

		gocv.Circle(&canvas, p1, markerRadius, c, lineThickness)
		gocv.Circle(&canvas, p2, markerRadius, c, lineThickness)
		gocv.Line(&canvas, p1, p2, c, lineThickness)
	}

	return canvas, nil
}

// DrawMatches draws left-to-right matches between imgs[0] and imgs[1] into a
// figure. kpts holds all keypoints detected on each image.
func DrawMatches(imgs [2]gocv.Mat, kpts [2][]gocv.KeyPoint, matches []gocv.DMatch, opts Options) (*Figure, error) {
	canvas, err := RenderMatches(imgs[0], imgs[1], kpts[0], kpts[1], matches, opts)
	defer canvas.Close()
	if err != nil {
		return nil, err
	}

	img, err := canvas.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert canvas: %w", err)
	}
	return NewFigure(opts.Title, img, opts.FigSize), nil
}

// DrawMatchesRtoL draws right-to-left matches. imgs and kpts are still
// ordered left then right; each match is reversed before drawing.
func DrawMatchesRtoL(imgs [2]gocv.Mat, kpts [2][]gocv.KeyPoint, matchesRtoL []gocv.DMatch, opts Options) (*Figure, error) {
	return DrawMatches(imgs, kpts, match.ReverseAll(matchesRtoL), opts)
}

package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ErrEmptyCrop is returned when a crop resolves to a region with no pixels.
var ErrEmptyCrop = errors.New("crop region is empty")

// Span is a half-open [Start, Stop) range along one image axis.
// Negative bounds count back from the end of the axis, so Span{750, -1}
// keeps everything from index 750 up to (but excluding) the last pixel.
type Span struct {
	Start int
	Stop  int
}

// Resolve turns the span into absolute bounds for an axis of length n.
// Out of range bounds are clamped to the axis rather than rejected.
func (s Span) Resolve(n int) (lo, hi int) {
	lo = clampIndex(s.Start, n)
	hi = clampIndex(s.Stop, n)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Len returns the number of indices the span covers on an axis of length n.
func (s Span) Len(n int) int {
	lo, hi := s.Resolve(n)
	return hi - lo
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// CropRect resolves a row span and a column span against a rows x cols
// image and returns the matching rectangle (X = columns, Y = rows).
func CropRect(rows, cols Span, height, width int) (image.Rectangle, error) {
	y0, y1 := rows.Resolve(height)
	x0, x1 := cols.Resolve(width)
	rect := image.Rect(x0, y0, x1, y1)
	if rect.Empty() {
		return image.Rectangle{}, fmt.Errorf("rows %v cols %v of %dx%d image: %w", rows, cols, height, width, ErrEmptyCrop)
	}
	return rect, nil
}

// Crop copies the region selected by rows and cols out of src.
// The returned Mat owns its memory and must be closed by the caller.
func Crop(src gocv.Mat, rows, cols Span) (gocv.Mat, error) {
	rect, err := CropRect(rows, cols, src.Rows(), src.Cols())
	if err != nil {
		return gocv.NewMat(), err
	}

	region := src.Region(rect)
	defer region.Close()

	return region.Clone(), nil
}

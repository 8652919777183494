package vision

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
)

// Grey returns a single channel copy of input. BGR and BGRA frames are
// converted, anything else is copied as is.
func Grey(input gocv.Mat) gocv.Mat {
	grey := gocv.NewMat()
	switch input.Channels() {
	case 3:
		gocv.CvtColor(input, &grey, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(input, &grey, gocv.ColorBGRAToGray)
	default:
		input.CopyTo(&grey)
	}
	return grey
}

// BGR returns a 3 channel copy of input, promoting greyscale frames.
func BGR(input gocv.Mat) gocv.Mat {
	bgr := gocv.NewMat()
	switch input.Channels() {
	case 1:
		gocv.CvtColor(input, &bgr, gocv.ColorGrayToBGR)
	case 4:
		gocv.CvtColor(input, &bgr, gocv.ColorBGRAToBGR)
	default:
		input.CopyTo(&bgr)
	}
	return bgr
}

// Rotate turns src counter-clockwise by angle degrees around its centre.
// The output keeps the input size; corners that leave the frame are cut
// off and uncovered areas are filled with black.
func Rotate(src gocv.Mat, angle float64) gocv.Mat {
	center := image.Pt(src.Cols()/2, src.Rows()/2)
	m := gocv.GetRotationMatrix2D(center, angle, 1.0)
	defer m.Close()

	rotated := gocv.NewMat()
	gocv.WarpAffineWithParams(src, &rotated, m, image.Pt(src.Cols(), src.Rows()),
		gocv.InterpolationCubic, gocv.BorderConstant, color.RGBA{0, 0, 0, 0})
	return rotated
}

// ScaledSize returns the size of a width x height image uniformly scaled by
// factor. Halves round to the nearest even integer.
func ScaledSize(width, height int, factor float64) image.Point {
	return image.Pt(
		int(math.RoundToEven(float64(width)*factor)),
		int(math.RoundToEven(float64(height)*factor)),
	)
}

// Scale resizes src uniformly by factor with bicubic interpolation.
func Scale(src gocv.Mat, factor float64) gocv.Mat {
	scaled := gocv.NewMat()
	gocv.Resize(src, &scaled, ScaledSize(src.Cols(), src.Rows(), factor), 0, 0, gocv.InterpolationCubic)
	return scaled
}

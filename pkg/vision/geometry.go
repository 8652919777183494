package vision

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

// KeyPointPoint rounds a keypoint's sub-pixel location to the nearest pixel
func KeyPointPoint(kp gocv.KeyPoint) image.Point {
	return image.Pt(int(math.Round(kp.X)), int(math.Round(kp.Y)))
}


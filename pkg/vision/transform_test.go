package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestGreyAndBGR(t *testing.T) {
	colour := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 255, 0), 8, 12, gocv.MatTypeCV8UC3)
	defer colour.Close()

	grey := Grey(colour)
	defer grey.Close()
	assert.Equal(t, 1, grey.Channels())
	assert.Equal(t, 8, grey.Rows())
	assert.Equal(t, 12, grey.Cols())

	again := Grey(grey)
	defer again.Close()
	assert.Equal(t, 1, again.Channels())

	bgr := BGR(grey)
	defer bgr.Close()
	assert.Equal(t, 3, bgr.Channels())
	v := bgr.GetVecbAt(0, 0)
	assert.Equal(t, v[0], v[1])
	assert.Equal(t, v[1], v[2])
}

func TestRotateKeepsSize(t *testing.T) {
	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 100, 60, gocv.MatTypeCV8UC3)
	defer src.Close()

	rotated := Rotate(src, 30)
	defer rotated.Close()

	assert.Equal(t, 100, rotated.Rows())
	assert.Equal(t, 60, rotated.Cols())
	// the corners rotate out of frame and get filled with black
	assert.Equal(t, uint8(0), rotated.GetVecbAt(0, 0)[0])
	assert.Equal(t, uint8(255), rotated.GetVecbAt(50, 30)[0])
}

func TestScaledSize(t *testing.T) {
	tests := []struct {
		w, h   int
		factor float64
		want   image.Point
	}{
		{390, 500, 0.7, image.Pt(273, 350)},
		{10, 10, 0.25, image.Pt(2, 2)}, // 2.5 rounds to even
		{15, 5, 0.7, image.Pt(10, 4)},  // 10.5 -> 10, 3.5 -> 4
		{100, 80, 1, image.Pt(100, 80)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScaledSize(tt.w, tt.h, tt.factor), "%dx%d * %v", tt.w, tt.h, tt.factor)
	}
}

func TestScale(t *testing.T) {
	src := gocv.NewMatWithSize(500, 390, gocv.MatTypeCV8UC3)
	defer src.Close()

	scaled := Scale(src, 0.7)
	defer scaled.Close()

	assert.Equal(t, 350, scaled.Rows())
	assert.Equal(t, 273, scaled.Cols())
}

package features

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// texture draws a deterministic set of filled rectangles on a grey canvas,
// giving the detectors plenty of corners to latch on to.
func texture(t *testing.T) gocv.Mat {
	t.Helper()

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(128, 128, 128, 0), 320, 320, gocv.MatTypeCV8UC3)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 60; i++ {
		x, y := rng.IntN(280), rng.IntN(280)
		w, h := 10+rng.IntN(30), 10+rng.IntN(30)
		v := uint8(rng.IntN(256))
		gocv.Rectangle(&img, image.Rect(x, y, x+w, y+h), color.RGBA{v, 255 - v, v / 2, 0}, -1)
	}
	return img
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"orb", ORB},
		{"ORB", ORB},
		{"Sift", SIFT},
		{"akaze", AKAZE},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("surf")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNorm(t *testing.T) {
	assert.Equal(t, gocv.NormHamming, ORB.Norm())
	assert.Equal(t, gocv.NormHamming, AKAZE.Norm())
	assert.Equal(t, gocv.NormL2, SIFT.Norm())
}

func TestDetectUnknownKind(t *testing.T) {
	img := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8U)
	defer img.Close()

	_, err := Detect(Kind("brisk"), img)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDetectAndSelfMatch(t *testing.T) {
	img := texture(t)
	defer img.Close()

	for _, kind := range []Kind{ORB, SIFT, AKAZE} {
		t.Run(string(kind), func(t *testing.T) {
			frame, err := Detect(kind, img)
			require.NoError(t, err)
			defer frame.Close()

			require.NotEmpty(t, frame.KPS)
			assert.Equal(t, len(frame.KPS), frame.Des.Rows())

			cross := MatchCross(frame, frame, kind.Norm())
			require.NotEmpty(t, cross)
			for _, m := range cross {
				assert.Zero(t, m.Distance)
			}

			ratio := MatchRatio(frame, frame, kind.Norm(), DefaultRatio)
			for i := 1; i < len(ratio); i++ {
				assert.LessOrEqual(t, ratio[i-1].Distance, ratio[i].Distance)
			}
		})
	}
}

func TestMatchEmptyFrames(t *testing.T) {
	empty := NewFrame(nil, gocv.NewMat())
	defer empty.Close()

	assert.Nil(t, MatchCross(empty, empty, gocv.NormHamming))
	assert.Nil(t, MatchRatio(empty, empty, gocv.NormHamming, DefaultRatio))
}

package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/intothevoid/featmatch/pkg/vision"
)

const (
	foxFile = "white_fox_figurine/0011.png"

	// FoxRotation is the counter-clockwise rotation in degrees applied to
	// the synthetic right view.
	FoxRotation = 30.0
	// FoxScale is the uniform scale factor applied after rotation.
	FoxScale = 0.7
)

var (
	foxCropLeft = Crop{Rows: vision.Span{Start: 1150, Stop: -380}, Cols: vision.Span{Start: 900, Stop: 1250}}
	// slightly larger window so the rotated copy keeps the whole figurine
	foxCropRight = Crop{Rows: vision.Span{Start: 1150 - 30, Stop: -380}, Cols: vision.Span{Start: 900 - 40, Stop: 1250}}
)

// LoadFox loads an image of a fox figurine and derives a second view from
// it by cropping, rotating and downscaling a copy.
func LoadFox(dataDir string) (Pair, error) {
	path := filepath.Join(dataDir, foxFile)
	img, err := readImage(path)
	if err != nil {
		return Pair{}, err
	}
	defer img.Close()

	left, err := vision.Crop(img, foxCropLeft.Rows, foxCropLeft.Cols)
	if err != nil {
		left.Close()
		return Pair{}, fmt.Errorf("crop %s: %w", path, err)
	}

	wide, err := vision.Crop(img, foxCropRight.Rows, foxCropRight.Cols)
	defer wide.Close()
	if err != nil {
		left.Close()
		return Pair{}, fmt.Errorf("crop %s: %w", path, err)
	}

	rotated := vision.Rotate(wide, FoxRotation)
	defer rotated.Close()

	return Pair{Left: left, Right: vision.Scale(rotated, FoxScale)}, nil
}

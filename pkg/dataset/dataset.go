// Package dataset loads the sample image pairs used by the feature matching
// exercises. Every loader reads fixed files below a caller supplied data
// directory and crops them with geometry tied to that particular asset.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/intothevoid/featmatch/pkg/vision"
	"gocv.io/x/gocv"
)

var (
	// ErrImageRead is returned when an image file is missing or cannot be decoded.
	ErrImageRead = errors.New("cannot read image")
	// ErrUnknownDataset is returned by Load for names that are not registered.
	ErrUnknownDataset = errors.New("unknown dataset")
)

// Name identifies a sample dataset.
type Name string

const (
	Bear       Name = "bear"
	Chessboard Name = "chessboard"
	Fox        Name = "fox"
)

// Pair holds the left and right views of a dataset. Both Mats are BGR,
// owned by the Pair and released by Close.
type Pair struct {
	Left  gocv.Mat
	Right gocv.Mat
}

// Close releases both images.
func (p Pair) Close() {
	p.Left.Close()
	p.Right.Close()
}

// Crop is a rectangular crop given as a row span and a column span.
type Crop struct {
	Rows vision.Span
	Cols vision.Span
}

// Loader loads a Pair from a data directory.
type Loader func(dataDir string) (Pair, error)

var loaders = map[Name]Loader{
	Bear:       LoadBear,
	Chessboard: LoadChessboard,
	Fox:        LoadFox,
}

// Load looks up a dataset by name and loads it from dataDir.
func Load(name Name, dataDir string) (Pair, error) {
	load, ok := loaders[name]
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return load(dataDir)
}

// Names lists the registered datasets in alphabetical order.
func Names() []Name {
	names := make([]Name, 0, len(loaders))
	for n := range loaders {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// readImage decodes a colour image from disk.
func readImage(path string) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		img.Close()
		return gocv.NewMat(), fmt.Errorf("%w: %s", ErrImageRead, path)
	}
	return img, nil
}

// readCropped decodes the image at path and returns the crop of it.
func readCropped(path string, c Crop) (gocv.Mat, error) {
	img, err := readImage(path)
	if err != nil {
		return img, err
	}
	defer img.Close()

	cropped, err := vision.Crop(img, c.Rows, c.Cols)
	if err != nil {
		return cropped, fmt.Errorf("crop %s: %w", path, err)
	}
	return cropped, nil
}

// loadTwoViews reads two files below dataDir and applies one crop to each.
func loadTwoViews(dataDir string, files [2]string, crops [2]Crop) (Pair, error) {
	left, err := readCropped(filepath.Join(dataDir, files[0]), crops[0])
	if err != nil {
		left.Close()
		return Pair{}, err
	}

	right, err := readCropped(filepath.Join(dataDir, files[1]), crops[1])
	if err != nil {
		left.Close()
		right.Close()
		return Pair{}, err
	}

	return Pair{Left: left, Right: right}, nil
}

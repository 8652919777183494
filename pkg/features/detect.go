// Package features detects keypoints and matches their descriptors between
// two images.
package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/intothevoid/featmatch/pkg/vision"
	"gocv.io/x/gocv"
)

// ErrUnknownKind is returned for detector names that are not supported.
var ErrUnknownKind = errors.New("unknown detector")

// Kind names a keypoint detector and descriptor extractor.
type Kind string

const (
	ORB   Kind = "orb"
	SIFT  Kind = "sift"
	AKAZE Kind = "akaze"
)

// ParseKind parses a detector name, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case ORB, SIFT, AKAZE:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Norm returns the descriptor distance suited to the detector: Hamming for
// the binary ORB and AKAZE descriptors, L2 for SIFT.
func (k Kind) Norm() gocv.NormType {
	if k == SIFT {
		return gocv.NormL2
	}
	return gocv.NormHamming
}

type detector interface {
	DetectAndCompute(src gocv.Mat, mask gocv.Mat) ([]gocv.KeyPoint, gocv.Mat)
	Close() error
}

func (k Kind) newDetector() (detector, error) {
	switch k {
	case ORB:
		d := gocv.NewORB()
		return &d, nil
	case SIFT:
		d := gocv.NewSIFT()
		return &d, nil
	case AKAZE:
		d := gocv.NewAKAZE()
		return &d, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
}

// Frame holds the keypoints found on one image and their descriptors,
// one descriptor row per keypoint.
type Frame struct {
	KPS []gocv.KeyPoint
	Des gocv.Mat
}

// NewFrame bundles keypoints with their descriptors.
func NewFrame(kps []gocv.KeyPoint, des gocv.Mat) Frame {
	return Frame{KPS: kps, Des: des}
}

// Close releases the descriptors.
func (f Frame) Close() {
	f.Des.Close()
}

// Detect finds keypoints on img and computes their descriptors. Colour
// images are converted to greyscale first.
func Detect(kind Kind, img gocv.Mat) (Frame, error) {
	d, err := kind.newDetector()
	if err != nil {
		return Frame{}, err
	}
	defer d.Close()

	grey := vision.Grey(img)
	defer grey.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	kps, des := d.DetectAndCompute(grey, mask)
	return NewFrame(kps, des), nil
}

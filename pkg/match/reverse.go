// Package match converts matches between the left-to-right and
// right-to-left direction.
package match

import "gocv.io/x/gocv"

// Reverse links the same pair of keypoints as m but in the opposite
// direction: the query and train indices swap, distance and image index
// are carried over unchanged. Reverse(Reverse(m)) == m.
func Reverse(m gocv.DMatch) gocv.DMatch {
	return gocv.DMatch{
		QueryIdx: m.TrainIdx,
		TrainIdx: m.QueryIdx,
		ImgIdx:   m.ImgIdx,
		Distance: m.Distance,
	}
}

// ReverseAll reverses every match into a new slice.
func ReverseAll(matches []gocv.DMatch) []gocv.DMatch {
	if matches == nil {
		return nil
	}
	out := make([]gocv.DMatch, len(matches))
	for i, m := range matches {
		out[i] = Reverse(m)
	}
	return out
}

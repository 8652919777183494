package features

import (
	"sort"

	"gocv.io/x/gocv"
)

// DefaultRatio is the usual threshold for Lowe's ratio test.
const DefaultRatio = 0.75

// MatchCross matches every query descriptor to its nearest train
// descriptor and keeps only pairs that are also nearest the other way
// round. Matches are sorted by distance, best first.
func MatchCross(query, train Frame, norm gocv.NormType) []gocv.DMatch {
	if query.Des.Empty() || train.Des.Empty() {
		return nil
	}

	bf := gocv.NewBFMatcherWithParams(norm, true)
	defer bf.Close()

	matches := bf.Match(query.Des, train.Des)
	sortByDistance(matches)
	return matches
}

// MatchRatio finds the two nearest train descriptors for every query
// descriptor and keeps the nearest only when it is clearly closer than the
// runner-up: best < ratio * second. Matches are sorted by distance.
func MatchRatio(query, train Frame, norm gocv.NormType, ratio float64) []gocv.DMatch {
	if query.Des.Empty() || train.Des.Empty() {
		return nil
	}

	bf := gocv.NewBFMatcherWithParams(norm, false)
	defer bf.Close()

	var rets []gocv.DMatch
	for _, n := range bf.KnnMatch(query.Des, train.Des, 2) {
		switch {
		case len(n) == 1:
			rets = append(rets, n[0])
		case len(n) >= 2 && n[0].Distance < ratio*n[1].Distance:
			rets = append(rets, n[0])
		}
	}
	sortByDistance(rets)
	return rets
}

func sortByDistance(matches []gocv.DMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
}

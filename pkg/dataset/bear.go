package dataset

import "github.com/intothevoid/featmatch/pkg/vision"

// Plush bear captured from two slightly different viewpoints.
var (
	bearFiles = [2]string{"plush_bear/0011.png", "plush_bear/0003.png"}
	bearCrops = [2]Crop{
		{Rows: vision.Span{Start: 750, Stop: -1}, Cols: vision.Span{Start: 500, Stop: 1500}},
		{Rows: vision.Span{Start: 600, Stop: -150}, Cols: vision.Span{Start: 550, Stop: 1550}},
	}
)

// LoadBear loads two views of a plush bear taken from slightly different
// viewpoints.
func LoadBear(dataDir string) (Pair, error) {
	return loadTwoViews(dataDir, bearFiles, bearCrops)
}

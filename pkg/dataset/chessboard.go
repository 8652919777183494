package dataset

import "github.com/intothevoid/featmatch/pkg/vision"

// Small wooden chessboard captured from two very different viewpoints.
var (
	chessboardFiles = [2]string{"small_wooden_chessboard/0003.png", "small_wooden_chessboard/0093.png"}
	chessboardCrops = [2]Crop{
		{Rows: vision.Span{Start: 950, Stop: -250}, Cols: vision.Span{Start: 850, Stop: 1500}},
		{Rows: vision.Span{Start: 750, Stop: -500}, Cols: vision.Span{Start: 850, Stop: 1500}},
	}
)

// LoadChessboard loads two views of a chessboard taken from significantly
// different viewpoints.
func LoadChessboard(dataDir string) (Pair, error) {
	return loadTwoViews(dataDir, chessboardFiles, chessboardCrops)
}

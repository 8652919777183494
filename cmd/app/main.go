package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/intothevoid/featmatch/pkg/dataset"
	"github.com/intothevoid/featmatch/pkg/features"
	"github.com/intothevoid/featmatch/pkg/plot"
	"github.com/intothevoid/featmatch/pkg/ui"
	"github.com/intothevoid/featmatch/pkg/vision"
	"gocv.io/x/gocv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

func main() {
	dataDir := flag.String("data", "data", "directory holding the sample datasets")
	name := flag.String("dataset", string(dataset.Fox), "dataset to load: "+datasetNames())
	detector := flag.String("detector", string(features.ORB), "keypoint detector: orb, sift or akaze")
	ratio := flag.Float64("ratio", features.DefaultRatio, "ratio test threshold")
	lineColor := flag.String("color", "", "match colour as RRGGBB, random per match when empty")
	outDir := flag.String("out", "", "write every figure as PNG into this directory")
	headless := flag.Bool("headless", false, "do not open the figure window")
	flag.Parse()

	kind, err := features.ParseKind(*detector)
	if err != nil {
		panic(err)
	}

	opts := plot.Options{FigSize: plot.DefaultFigSize}
	if *lineColor != "" {
		c, err := parseHexColor(*lineColor)
		if err != nil {
			panic(err)
		}
		opts.MatchColor = &c
	}

	// 1. Load the image pair
	pair, err := dataset.Load(dataset.Name(*name), *dataDir)
	if err != nil {
		panic(fmt.Sprintf("Could not load dataset: %v", err))
	}
	defer pair.Close()
	fmt.Printf("Loaded %s: left %dx%d, right %dx%d\n", *name,
		pair.Left.Cols(), pair.Left.Rows(), pair.Right.Cols(), pair.Right.Rows())

	// 2. Detect keypoints on both views
	left, err := features.Detect(kind, pair.Left)
	if err != nil {
		panic(err)
	}
	defer left.Close()

	right, err := features.Detect(kind, pair.Right)
	if err != nil {
		panic(err)
	}
	defer right.Close()
	fmt.Println("KPS: ", len(left.KPS), len(right.KPS))

	// 3. Match in both directions
	ltor := features.MatchRatio(left, right, kind.Norm(), *ratio)
	rtol := features.MatchRatio(right, left, kind.Norm(), *ratio)
	cross := features.MatchCross(left, right, kind.Norm())
	fmt.Println("Matches ltor / rtol / cross: ", len(ltor), len(rtol), len(cross))

	// 4. Render the figures on greyscale views
	greyL := vision.Grey(pair.Left)
	defer greyL.Close()
	greyR := vision.Grey(pair.Right)
	defer greyR.Close()

	imgs := [2]gocv.Mat{greyL, greyR}
	kpts := [2][]gocv.KeyPoint{left.KPS, right.KPS}

	var figs []*plot.Figure
	add := func(title string, draw func(plot.Options) (*plot.Figure, error)) {
		o := opts
		o.Title = title
		fig, err := draw(o)
		if err != nil {
			panic(fmt.Sprintf("Could not draw %s: %v", title, err))
		}
		figs = append(figs, fig)
	}
	add("left to right", func(o plot.Options) (*plot.Figure, error) {
		return plot.DrawMatches(imgs, kpts, ltor, o)
	})
	add("right to left", func(o plot.Options) (*plot.Figure, error) {
		return plot.DrawMatchesRtoL(imgs, kpts, rtol, o)
	})
	add("cross check", func(o plot.Options) (*plot.Figure, error) {
		return plot.DrawMatches(imgs, kpts, cross, o)
	})

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			panic(err)
		}
		for i, fig := range figs {
			path := filepath.Join(*outDir, fmt.Sprintf("%s_%s_%d.png", *name, kind, i))
			if err := fig.SavePNG(path); err != nil {
				panic(err)
			}
			fmt.Println("Wrote", path)
		}
	}

	if *headless {
		return
	}

	// 5. Show the switcher window
	myApp := app.New()
	window := myApp.NewWindow("Feature matching - " + *name)

	switcher, err := ui.NewFigureSwitcher(figs...)
	if err != nil {
		panic(err)
	}

	window.SetContent(switcher.Content())
	window.Resize(fyne.NewSize(1000, 860))
	window.ShowAndRun()
}

func datasetNames() string {
	names := dataset.Names()
	s := make([]string, len(names))
	for i, n := range names {
		s[i] = string(n)
	}
	return strings.Join(s, ", ")
}

// parseHexColor parses RRGGBB, with or without a leading '#'.
func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

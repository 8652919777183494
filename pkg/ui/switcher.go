package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/intothevoid/featmatch/pkg/plot"
	"github.com/intothevoid/featmatch/pkg/switcher"
)

// FigureSwitcher is a button above a figure display. Each tap shows the
// next figure, wrapping around after the last.
type FigureSwitcher struct {
	Button  *widget.Button
	Label   *widget.Label
	Display *FigureDisplay

	switcher *switcher.Switcher[*plot.Figure]
	content  *fyne.Container
}

// NewFigureSwitcher builds the widgets and shows the first figure.
func NewFigureSwitcher(figs ...*plot.Figure) (*FigureSwitcher, error) {
	fs := &FigureSwitcher{
		Button:  widget.NewButton("Switch figure", nil),
		Label:   widget.NewLabel(""),
		Display: NewFigureDisplay(),
	}

	s, err := switcher.Show[*plot.Figure](fs, figs...)
	if err != nil {
		return nil, err
	}
	fs.switcher = s

	top := container.NewHBox(fs.Button, fs.Label)
	fs.content = container.NewBorder(top, nil, nil, nil, fs.Display)
	return fs, nil
}

// Render implements [switcher.Host]. The previous figure is cleared first.
func (fs *FigureSwitcher) Render(fig *plot.Figure) {
	fs.Display.ShowFigure(nil)
	fs.Display.ShowFigure(fig)

	title := ""
	if fig != nil {
		title = fig.Title
	}
	fs.Label.SetText(title)
}

// OnActivate implements [switcher.Host].
func (fs *FigureSwitcher) OnActivate(handler func()) {
	fs.Button.OnTapped = handler
}

// Switcher exposes the cycle position.
func (fs *FigureSwitcher) Switcher() *switcher.Switcher[*plot.Figure] {
	return fs.switcher
}

// Content returns the canvas object to place in a window.
func (fs *FigureSwitcher) Content() fyne.CanvasObject {
	return fs.content
}

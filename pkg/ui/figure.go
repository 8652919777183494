package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/intothevoid/featmatch/pkg/plot"
)

// FigureDisplay is a widget showing a single rendered figure
type FigureDisplay struct {
	widget.BaseWidget

	// mu guards figure and the canvas image it backs
	mu     sync.Mutex
	figure *plot.Figure
	image  *canvas.Image
}

// NewFigureDisplay creates an empty figure display
func NewFigureDisplay() *FigureDisplay {
	d := &FigureDisplay{}
	d.ExtendBaseWidget(d)

	d.image = canvas.NewImageFromImage(nil)
	d.image.FillMode = canvas.ImageFillContain
	d.image.SetMinSize(fyne.NewSize(500, 400))
	return d
}

// ShowFigure replaces the displayed figure. A nil figure clears the display.
func (d *FigureDisplay) ShowFigure(fig *plot.Figure) {
	d.mu.Lock()
	d.figure = fig
	if fig != nil {
		d.image.Image = fig.Image
	} else {
		d.image.Image = nil
	}
	d.image.Refresh()
	d.mu.Unlock()

	d.Refresh()
}

// Figure returns the figure currently shown, or nil.
func (d *FigureDisplay) Figure() *plot.Figure {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.figure
}

// CreateRenderer implements [fyne.Widget].
func (d *FigureDisplay) CreateRenderer() fyne.WidgetRenderer {
	return &figureRenderer{d}
}

type figureRenderer struct {
	d *FigureDisplay
}

// Destroy implements [fyne.WidgetRenderer].
func (r *figureRenderer) Destroy() {}

// MinSize implements [fyne.WidgetRenderer].
func (r *figureRenderer) MinSize() fyne.Size {
	return r.d.image.MinSize()
}

// Objects implements [fyne.WidgetRenderer].
func (r *figureRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.d.image}
}

// Refresh implements [fyne.WidgetRenderer].
func (r *figureRenderer) Refresh() {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	r.d.image.Refresh()
}

func (r *figureRenderer) Layout(s fyne.Size) {
	r.d.image.Resize(s)
}

package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/bbox-labeler/domain/annotation"
	"github.com/soocke/bbox-labeler/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are invoked on menu selections and keyboard shortcuts.
type Handlers struct {
	OpenFolder      func()
	SetOutputFolder func()
	NextImage       func()
	Save            func()
	Exit            func()
	SelectClass     func(id annotation.ClassID)
	ToggleDark      func()
}

// RootView composes the menubar, the image canvas and the status bar.
// It owns the subviews and exposes them for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Canvas  ImageCanvas
	Status  StatusBar
	Dialogs Dialogs
}

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. classes fills the Class menu in order; placeholder is
// the PNG shown before an image is loaded.
func (rv *RootView) Build(classes []annotation.Class, placeholder []byte, h Handlers) {
	if rv == nil {
		return
	}
	rv.buildMenu(classes, h)

	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 0, Weight(1))
	rv.Canvas = NewImageCanvas(0, placeholder)
	rv.Status = NewStatusBar(1)

	bindKey("<Control-o>", h.OpenFolder)
	bindKey("<Control-s>", h.Save)
	bindKey("<Control-q>", h.Exit)
	bindKey("<Key-n>", h.NextImage)
	bindKey("<Right>", h.NextImage)
	if h.SelectClass != nil {
		for _, c := range classes {
			if c.ID < 0 || c.ID > 9 {
				continue
			}
			id := c.ID
			bindKey(fmt.Sprintf("<Key-%d>", int(id)), func() { h.SelectClass(id) })
		}
	}
	if rv.logger != nil {
		rv.logger.Debug("root view built", "classes", len(classes))
	}
}

func (rv *RootView) buildMenu(classes []annotation.Class, h Handlers) {
	menubar := Menu()

	fileMenu := menubar.Menu(Tearoff(false))
	fileMenu.AddCommand(Lbl("Open Image Folder..."), Underline(0), Accelerator("Ctrl+O"), Command(orNoop(h.OpenFolder)))
	fileMenu.AddCommand(Lbl("Set Output Folder..."), Underline(4), Command(orNoop(h.SetOutputFolder)))
	fileMenu.AddCommand(Lbl("Next Image"), Underline(0), Accelerator("N"), Command(orNoop(h.NextImage)))
	fileMenu.AddCommand(Lbl("Save Annotations"), Underline(0), Accelerator("Ctrl+S"), Command(orNoop(h.Save)))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Exit"), Underline(1), Accelerator("Ctrl+Q"), Command(orNoop(h.Exit)))
	menubar.AddCascade(Lbl("File"), Underline(0), Mnu(fileMenu))

	classMenu := menubar.Menu(Tearoff(false))
	for _, c := range classes {
		id := c.ID
		opts := []Opt{Lbl(c.Name)}
		if id >= 0 && id <= 9 {
			opts = append(opts, Accelerator(fmt.Sprintf("%d", int(id))))
		}
		opts = append(opts, Command(func() {
			if h.SelectClass != nil {
				h.SelectClass(id)
			}
		}))
		classMenu.AddCommand(opts...)
	}
	menubar.AddCascade(Lbl("Class"), Underline(0), Mnu(classMenu))

	viewMenu := menubar.Menu(Tearoff(false))
	viewMenu.AddCommand(Lbl("Toggle Dark Mode"), Command(orNoop(h.ToggleDark)))
	menubar.AddCascade(Lbl("View"), Underline(0), Mnu(viewMenu))

	App.Configure(Mnu(menubar))
}

func bindKey(sequence string, fn func()) {
	if fn == nil {
		return
	}
	Bind(App, sequence, Command(fn))
}

func orNoop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}

// SetStateLabel updates the drawing state label.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStateLabel(text)
	}
}

// SetStatus proxies to the status bar.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

// SetMessage proxies to the status bar.
func (rv *RootView) SetMessage(text string, isError bool) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetMessage(text, isError)
	}
}

// SetImage proxies to the image canvas.
func (rv *RootView) SetImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetImage(img)
	}
}

// SetBoxes proxies to the image canvas.
func (rv *RootView) SetBoxes(boxes []images.Outline) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetBoxes(boxes)
	}
}

// SetPending proxies to the image canvas.
func (rv *RootView) SetPending(pending images.Outline, visible bool) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetPending(pending, visible)
	}
}

// FitWindow proxies to the image canvas.
func (rv *RootView) FitWindow() {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.FitWindow()
	}
}

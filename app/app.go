package app

import (
	"fmt"
	"log/slog"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/bbox-labeler/config"
	"github.com/soocke/bbox-labeler/ui/theme"
	"github.com/soocke/bbox-labeler/ui/view"
)

type app struct {
	title     string
	width     int
	height    int
	logger    *slog.Logger
	container *AppContainer
	closed    bool
}

// NewApp prepares the main window. Call Start to build the UI and run the event loop.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	a := &app{title: title, width: cfg.WindowWidth, height: cfg.WindowHeight, logger: logger}
	a.container = BuildContainer(cfg, logger)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	// Startup size only; the canvas clears it on the first image so the window grows to fit.
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", a.width, a.height))
	return a
}

// Start builds the layout, wires presenters and blocks in the Tk event loop until
// the window is closed.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()
	c.wirePresenters(a.quit)

	ann := c.AnnotationPresenter
	cv := c.CanvasPresenter
	c.RootView.Build(c.Session.Classes().Classes(), c.Placeholder, view.Handlers{
		OpenFolder:      ann.OpenFolder,
		SetOutputFolder: ann.SetOutputFolder,
		NextImage:       ann.NextImage,
		Save:            ann.Save,
		Exit:            ann.Exit,
		SelectClass:     ann.SelectClass,
		ToggleDark: func() {
			dark := theme.ToggleDark()
			if a.logger != nil {
				a.logger.Debug("theme toggled", "dark", dark)
			}
		},
	})
	c.RootView.Canvas.BindPointer(cv.Press, cv.Drag, cv.Release)

	cv.Reset()
	c.StatusPresenter.Refresh()
	if a.logger != nil {
		a.logger.Info("labeler started", "classes", len(c.Session.Classes().Classes()), "policy", c.Config.BoxPolicy)
	}
	App.Wait()
}

// exitHandler handles the window close button like File > Exit.
func (a *app) exitHandler() {
	if a.container != nil && a.container.AnnotationPresenter != nil {
		a.container.AnnotationPresenter.Exit()
		return
	}
	a.quit()
}

func (a *app) quit() {
	if a.closed {
		return
	}
	a.closed = true
	if a.logger != nil {
		a.logger.Info("labeler exiting")
	}
	Destroy(App)
}

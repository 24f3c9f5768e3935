package app

import (
	"log/slog"

	"github.com/soocke/bbox-labeler/assets"
	"github.com/soocke/bbox-labeler/config"
	"github.com/soocke/bbox-labeler/domain/drawing"
	"github.com/soocke/bbox-labeler/domain/session"
	"github.com/soocke/bbox-labeler/ui/model"
	"github.com/soocke/bbox-labeler/ui/presenter"
	"github.com/soocke/bbox-labeler/ui/view"
)

// AppContainer assembles the session, models, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Session  *session.Session
	Drawing  drawing.Contract
	Progress *model.ProgressModel
	RootView *view.RootView

	// Presenters
	AnnotationPresenter *presenter.AnnotationPresenter
	CanvasPresenter     *presenter.CanvasPresenter
	StatusPresenter     *presenter.StatusPresenter

	Placeholder []byte
}

// BuildContainer constructs the non-Tk components. Presenters are wired by the app
// once the root view exists.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Session = session.New(session.OptionsFromConfig(cfg, logger))
	c.Drawing = drawing.NewMachine(logger)
	c.Progress = model.NewProgressModel()
	c.RootView = view.NewRootView(logger)
	if _, err := assets.PlaceholderImage(); err == nil {
		c.Placeholder = assets.PlaceholderPNG
	} else if logger != nil {
		logger.Warn("placeholder image unavailable", "error", err)
	}
	return c
}

// wirePresenters connects presenters to the built root view.
func (c *AppContainer) wirePresenters(quit func()) {
	rv := c.RootView
	c.StatusPresenter = presenter.NewStatusPresenter(c.Session, c.Progress, rv)
	c.Drawing.AddListener(c.StatusPresenter.OnState)

	c.CanvasPresenter = presenter.NewCanvasPresenter(c.Session, c.Drawing, rv, c.Logger)
	c.CanvasPresenter.OnChange = c.StatusPresenter.Refresh

	c.AnnotationPresenter = presenter.NewAnnotationPresenter(c.Session, rv.Dialogs, c.CanvasPresenter, c.StatusPresenter, c.Progress, c.Logger)
	c.AnnotationPresenter.WarnUnsaved = c.Config.WarnUnsaved
	c.AnnotationPresenter.Quit = quit
}

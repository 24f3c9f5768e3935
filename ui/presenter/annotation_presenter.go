package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/bbox-labeler/domain/annotation"
)

// AnnotationSession narrows the session operations driven from the menus.
type AnnotationSession interface {
	OpenFolder(dir string) (bool, error)
	SetOutputFolder(dir string) bool
	HasNext() bool
	Next() (bool, error)
	Save() (string, bool, error)
	SetClass(id annotation.ClassID)
	Dirty() bool
	ImageName() string
	Boxes() []annotation.Box
	ExistingLabels() (int, bool)
}

// Dialogs are the modal interactions the presenter needs.
type Dialogs interface {
	ChooseDirectory(title string) string
	ShowError(title, message string)
	Confirm(title, message string) bool
}

// Canvas is reset whenever the current image changes.
type Canvas interface{ Reset() }

// Status receives refreshes and messages.
type Status interface {
	Refresh()
	Notice(msg string)
	Error(err error)
}

// AnnotationPresenter implements the File and Class menu commands.
type AnnotationPresenter struct {
	sess     AnnotationSession
	dialogs  Dialogs
	canvas   Canvas
	status   Status
	progress ProgressRecorder
	logger   *slog.Logger

	// WarnUnsaved asks before discarding unsaved boxes.
	WarnUnsaved bool
	// Quit closes the window.
	Quit func()
}

// ProgressRecorder is fed image loads and saves.
type ProgressRecorder interface {
	OnImageLoaded(name string)
	OnSaved(name string, count int)
}

func NewAnnotationPresenter(sess AnnotationSession, dialogs Dialogs, canvas Canvas, status Status, progress ProgressRecorder, logger *slog.Logger) *AnnotationPresenter {
	return &AnnotationPresenter{sess: sess, dialogs: dialogs, canvas: canvas, status: status, progress: progress, logger: logger}
}

// OpenFolder asks for an image folder and loads its first image.
func (p *AnnotationPresenter) OpenFolder() {
	if !p.ok() {
		return
	}
	dir := p.dialogs.ChooseDirectory("Open Image Folder")
	if dir == "" {
		return
	}
	if !p.confirmDiscard() {
		return
	}
	loaded, err := p.sess.OpenFolder(dir)
	p.afterLoad(loaded, err)
}

// SetOutputFolder asks for the folder label files are written to.
func (p *AnnotationPresenter) SetOutputFolder() {
	if !p.ok() {
		return
	}
	if !p.sess.SetOutputFolder(p.dialogs.ChooseDirectory("Set Output Folder")) {
		return
	}
	p.noticeExisting()
	p.refresh()
}

// NextImage advances to the next image. At the end of the folder it does nothing.
func (p *AnnotationPresenter) NextImage() {
	if !p.ok() || !p.sess.HasNext() {
		return
	}
	if !p.confirmDiscard() {
		return
	}
	loaded, err := p.sess.Next()
	p.afterLoad(loaded, err)
}

// Save writes the current boxes. Without an output folder or image it does nothing.
func (p *AnnotationPresenter) Save() {
	if !p.ok() {
		return
	}
	path, saved, err := p.sess.Save()
	if err != nil {
		p.fail("Save failed", err)
		p.refresh()
		return
	}
	if !saved {
		return
	}
	count := len(p.sess.Boxes())
	if p.progress != nil {
		p.progress.OnSaved(p.sess.ImageName(), count)
	}
	if p.status != nil {
		p.status.Notice(fmt.Sprintf("Saved %d boxes to %s", count, path))
	}
	p.refresh()
}

// SelectClass makes id the class of boxes committed from now on.
func (p *AnnotationPresenter) SelectClass(id annotation.ClassID) {
	if !p.ok() {
		return
	}
	p.sess.SetClass(id)
	p.refresh()
}

// Exit closes the window, asking first when unsaved boxes would be lost.
func (p *AnnotationPresenter) Exit() {
	if p == nil {
		return
	}
	if p.sess != nil && p.dialogs != nil && !p.confirmDiscard() {
		return
	}
	if p.Quit != nil {
		p.Quit()
	}
}

func (p *AnnotationPresenter) afterLoad(loaded bool, err error) {
	if p.canvas != nil {
		p.canvas.Reset()
	}
	if err != nil {
		p.fail("Cannot open image", err)
	} else if loaded {
		if p.progress != nil {
			p.progress.OnImageLoaded(p.sess.ImageName())
		}
		if p.status != nil {
			p.status.Notice("")
		}
		p.noticeExisting()
	}
	p.refresh()
}

// noticeExisting reports a label file that Save would overwrite.
func (p *AnnotationPresenter) noticeExisting() {
	n, exists := p.sess.ExistingLabels()
	if !exists || p.status == nil {
		return
	}
	p.status.Notice(fmt.Sprintf("%s already has %d labels on disk; saving overwrites them", p.sess.ImageName(), n))
}

func (p *AnnotationPresenter) confirmDiscard() bool {
	if !p.WarnUnsaved || !p.sess.Dirty() {
		return true
	}
	return p.dialogs.Confirm("Unsaved boxes", fmt.Sprintf("Discard unsaved boxes on %s?", p.sess.ImageName()))
}

func (p *AnnotationPresenter) fail(title string, err error) {
	if p.logger != nil {
		p.logger.Error(title, "error", err)
	}
	if p.status != nil {
		p.status.Error(err)
	}
	p.dialogs.ShowError(title, err.Error())
}

func (p *AnnotationPresenter) refresh() {
	if p.status != nil {
		p.status.Refresh()
	}
}

func (p *AnnotationPresenter) ok() bool {
	return p != nil && p.sess != nil && p.dialogs != nil
}

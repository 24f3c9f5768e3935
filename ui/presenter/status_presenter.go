package presenter

import (
	"fmt"
	"strings"

	"github.com/soocke/bbox-labeler/domain/annotation"
	"github.com/soocke/bbox-labeler/domain/drawing"
	"github.com/soocke/bbox-labeler/domain/session"
	"github.com/soocke/bbox-labeler/ui/model"
)

// StatusSource provides the session state shown in the status bar.
type StatusSource interface {
	Snapshot() session.Snapshot
	Classes() *annotation.ClassTable
}

// StatusView displays the status line, the drawing state and a transient message.
type StatusView interface {
	SetStatus(text string)
	SetStateLabel(text string)
	SetMessage(text string, isError bool)
}

// StatusPresenter formats session progress and drawing state for the status bar.
type StatusPresenter struct {
	src      StatusSource
	progress *model.ProgressModel
	view     StatusView
	latest   drawing.State
	shown    bool // latest has been pushed to the view at least once
	last     string
}

// NewStatusPresenter returns a new StatusPresenter.
func NewStatusPresenter(src StatusSource, progress *model.ProgressModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{src: src, progress: progress, view: view}
}

// Refresh pushes the status line to the view when it changed.
func (p *StatusPresenter) Refresh() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	text := FormatStatus(p.src.Snapshot(), p.src.Classes(), p.progress.Values())
	if text == p.last {
		return
	}
	p.last = text
	p.view.SetStatus(text)
}

// OnState is registered as a drawing machine listener.
func (p *StatusPresenter) OnState(_, next drawing.State) {
	if p == nil || p.view == nil {
		return
	}
	if p.shown && next == p.latest {
		return
	}
	p.latest, p.shown = next, true
	p.view.SetStateLabel("State: " + next.String())
}

// Notice shows an informational message until the next one replaces it.
func (p *StatusPresenter) Notice(msg string) {
	if p != nil && p.view != nil {
		p.view.SetMessage(msg, false)
	}
}

// Error shows err in the message area.
func (p *StatusPresenter) Error(err error) {
	if p != nil && p.view != nil && err != nil {
		p.view.SetMessage(err.Error(), true)
	}
}

// FormatStatus renders the status line:
//
//	Image 2/10 cat.png | Class 1 (dog) | Boxes 3* | Saved 1 files, 4 boxes | Output: /tmp/labels
//
// The asterisk marks boxes not yet saved.
func FormatStatus(s session.Snapshot, classes *annotation.ClassTable, p model.Progress) string {
	var parts []string
	switch {
	case s.Count == 0:
		parts = append(parts, "No images")
	default:
		pos := min(max(s.Index+1, 0), s.Count)
		name := "-"
		if s.HasImage {
			name = s.ImageName
		}
		img := fmt.Sprintf("Image %d/%d %s", pos, s.Count, name)
		if s.Index >= s.Count {
			img += " (end)"
		}
		parts = append(parts, img)
	}

	class := fmt.Sprintf("Class %d", int(s.Class))
	if classes != nil {
		if c, ok := classes.Lookup(s.Class); ok {
			class += " (" + c.Name + ")"
		}
	}
	parts = append(parts, class)

	boxes := fmt.Sprintf("Boxes %d", s.Boxes)
	if s.Dirty {
		boxes += "*"
	}
	parts = append(parts, boxes)
	parts = append(parts, fmt.Sprintf("Saved %d files, %d boxes", p.FilesSaved, p.BoxesSaved))

	out := s.OutputDir
	if out == "" {
		out = "not set"
	}
	parts = append(parts, "Output: "+out)
	return strings.Join(parts, " | ")
}

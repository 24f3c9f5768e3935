package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/bbox-labeler/domain/annotation"
	"github.com/soocke/bbox-labeler/domain/drawing"
	"github.com/soocke/bbox-labeler/ui/images"
)

// BoxSession narrows what the canvas needs from the annotation session.
type BoxSession interface {
	Image() image.Image
	Class() annotation.ClassID
	Classes() *annotation.ClassTable
	Boxes() []annotation.Box
	AddBox(b annotation.Box) (annotation.Box, bool)
}

// CanvasView keeps one image item and one rectangle item per box. The image is
// only replaced on Reset; a drag touches the pending rectangle alone.
type CanvasView interface {
	SetImage(img image.Image) // nil shows the placeholder
	SetBoxes(boxes []images.Outline)
	SetPending(pending images.Outline, visible bool)
	FitWindow() // let the window follow the canvas size
}

// CanvasPresenter turns pointer events into boxes and keeps the canvas in sync with
// the committed boxes and the rubber-band rectangle.
type CanvasPresenter struct {
	sess     BoxSession
	fsm      drawing.Contract
	view     CanvasView
	logger   *slog.Logger
	hasImage bool
	OnChange func() // called after a box was committed
}

func NewCanvasPresenter(sess BoxSession, fsm drawing.Contract, view CanvasView, logger *slog.Logger) *CanvasPresenter {
	return &CanvasPresenter{sess: sess, fsm: fsm, view: view, logger: logger}
}

// Reset drops any in-progress rectangle and rebuilds the canvas from the session's
// current image. Call after the image changed.
func (p *CanvasPresenter) Reset() {
	if p == nil || p.sess == nil || p.fsm == nil {
		return
	}
	p.fsm.Cancel()
	img := p.sess.Image()
	p.hasImage = img != nil
	if p.view == nil {
		return
	}
	p.view.SetPending(images.Outline{}, false)
	p.view.SetImage(img)
	p.view.SetBoxes(p.Outlines())
	if p.hasImage {
		p.view.FitWindow()
	}
}

// Press starts a rectangle at (x, y) in image pixels.
func (p *CanvasPresenter) Press(x, y int) {
	if !p.ready() {
		return
	}
	p.showPending(p.fsm.Press(image.Pt(x, y), p.sess.Class()))
}

// Drag moves the free corner of the pending rectangle.
func (p *CanvasPresenter) Drag(x, y int) {
	if !p.ready() {
		return
	}
	if pend, ok := p.fsm.Drag(image.Pt(x, y)); ok {
		p.showPending(pend)
	}
}

// Release commits the pending rectangle with the class selected at release time.
func (p *CanvasPresenter) Release(x, y int) {
	if !p.ready() {
		return
	}
	box, ok := p.fsm.Release(image.Pt(x, y), p.sess.Class())
	if !ok {
		return
	}
	if p.view != nil {
		p.view.SetPending(images.Outline{}, false)
	}
	if _, kept := p.sess.AddBox(box); kept {
		if p.logger != nil {
			p.logger.Debug("box committed", "box", box.String())
		}
		if p.view != nil {
			p.view.SetBoxes(p.Outlines())
		}
	}
	if p.OnChange != nil {
		p.OnChange()
	}
}

// Outlines lists the committed boxes in drawing order.
func (p *CanvasPresenter) Outlines() []images.Outline {
	if p == nil || p.sess == nil {
		return nil
	}
	classes := p.sess.Classes()
	boxes := p.sess.Boxes()
	out := make([]images.Outline, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, images.Outline{Rect: b.Rect(), Color: classColor(classes, b.Class)})
	}
	return out
}

func (p *CanvasPresenter) showPending(pend drawing.Pending) {
	if p.view == nil {
		return
	}
	r := image.Rectangle{Min: pend.Start, Max: pend.End}.Canon()
	p.view.SetPending(images.Outline{Rect: r, Color: classColor(p.sess.Classes(), pend.Class)}, true)
}

func (p *CanvasPresenter) ready() bool {
	return p != nil && p.sess != nil && p.fsm != nil && p.hasImage
}

func classColor(classes *annotation.ClassTable, id annotation.ClassID) string {
	if classes == nil {
		return images.FallbackColor
	}
	if c := classes.Color(id); c != "" {
		return c
	}
	return images.FallbackColor
}

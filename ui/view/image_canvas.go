package view

import (
	"image"

	"github.com/soocke/bbox-labeler/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImageCanvas shows the current image 1:1 with its box outlines and reports pointer
// events in image pixel coordinates.
type ImageCanvas interface {
	SetImage(img image.Image)
	SetBoxes(boxes []images.Outline)
	SetPending(pending images.Outline, visible bool)
	FitWindow()
	BindPointer(press, drag, release func(x, y int))
}

type imageCanvas struct {
	canvas *CanvasWidget

	// photo backs imageItem; the previous one is deleted once the item points at its replacement.
	photo     *Img
	imageItem string
	boxItems  []string
	pending   string // rubber band item, hidden while idle

	placeholder     []byte
	placeholderSize image.Point
}

// NewImageCanvas creates the canvas at row, showing placeholder (PNG bytes)
// until the first image is set.
func NewImageCanvas(row int, placeholder []byte) ImageCanvas {
	size, ok := images.PNGSize(placeholder)
	if !ok {
		size = image.Pt(400, 300)
		placeholder = images.EncodePNG(image.NewRGBA(image.Rectangle{Max: size}))
	}
	v := &imageCanvas{placeholder: placeholder, placeholderSize: size}
	// No border or highlight ring: canvas-relative event coordinates are image pixels.
	v.canvas = Canvas(Borderwidth(0), Highlightthickness(0), Cursor("crosshair"))
	Grid(v.canvas, Row(row), Column(0), Sticky("nw"))
	v.SetImage(nil)
	return v
}

// SetImage replaces the image item's photo and resizes the canvas to match.
// A nil image restores the placeholder.
func (v *imageCanvas) SetImage(img image.Image) {
	if v == nil || v.canvas == nil {
		return
	}
	pngBytes, size := v.placeholder, v.placeholderSize
	if img != nil {
		pngBytes, size = images.EncodePNG(img), img.Bounds().Size()
	}
	if len(pngBytes) == 0 {
		return
	}
	photo := NewPhoto(Data(pngBytes))
	if v.imageItem == "" {
		v.imageItem = v.createImageItem(photo)
	} else {
		v.setItemImage(v.imageItem, photo)
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = photo
	v.resize(size)
	if v.pending != "" {
		v.raise(v.pending)
	}
}

// SetBoxes reuses existing rectangle items and creates or deletes the difference.
func (v *imageCanvas) SetBoxes(boxes []images.Outline) {
	if v == nil || v.canvas == nil {
		return
	}
	for i, b := range boxes {
		if i < len(v.boxItems) {
			v.moveRect(v.boxItems[i], b)
			v.raise(v.boxItems[i])
			continue
		}
		v.boxItems = append(v.boxItems, v.createRect(b))
	}
	for _, id := range v.boxItems[min(len(boxes), len(v.boxItems)):] {
		v.deleteItem(id)
	}
	v.boxItems = v.boxItems[:min(len(boxes), len(v.boxItems))]
	if v.pending != "" {
		v.raise(v.pending)
	}
}

// SetPending moves the rubber band. It is the only canvas update during a drag.
func (v *imageCanvas) SetPending(pending images.Outline, visible bool) {
	if v == nil || v.canvas == nil {
		return
	}
	if !visible {
		if v.pending != "" {
			v.setItemHidden(v.pending, true)
		}
		return
	}
	if v.pending == "" {
		v.pending = v.createRect(pending)
		return
	}
	v.moveRect(v.pending, pending)
	v.setItemHidden(v.pending, false)
}

// BindPointer routes left-button press, motion and release to the callbacks.
func (v *imageCanvas) BindPointer(press, drag, release func(x, y int)) {
	if v == nil || v.canvas == nil {
		return
	}
	bind := func(event string, fn func(x, y int)) {
		if fn == nil {
			return
		}
		Bind(v.canvas, event, Command(func(e *Event) { fn(eventPoint(e)) }))
	}
	bind("<ButtonPress-1>", press)
	bind("<B1-Motion>", drag)
	bind("<ButtonRelease-1>", release)
}

// eventPoint extracts the widget-relative pointer position.
func eventPoint(e *Event) (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.X, e.Y
}

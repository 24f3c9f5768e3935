package view

import (
	"image"

	"github.com/soocke/bbox-labeler/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Thin wrappers over the Tk canvas item commands.

func (v *imageCanvas) createImageItem(photo *Img) string {
	return v.canvas.CreateImage(0, 0, Image(photo), Anchor("nw"))
}

func (v *imageCanvas) setItemImage(id string, photo *Img) {
	v.canvas.ItemConfigure(id, Image(photo))
}

func (v *imageCanvas) createRect(o images.Outline) string {
	x0, y0, x1, y1 := o.Coords()
	return v.canvas.CreateRectangle(x0, y0, x1, y1, Outline(o.Color), Width(images.DefaultStroke))
}

func (v *imageCanvas) moveRect(id string, o images.Outline) {
	x0, y0, x1, y1 := o.Coords()
	v.canvas.Coords(id, x0, y0, x1, y1)
	v.canvas.ItemConfigure(id, Outline(o.Color))
}

func (v *imageCanvas) setItemHidden(id string, hidden bool) {
	state := "normal"
	if hidden {
		state = "hidden"
	}
	v.canvas.ItemConfigure(id, State(state))
}

func (v *imageCanvas) raise(id string) {
	v.canvas.Raise(id)
}

func (v *imageCanvas) deleteItem(id string) {
	v.canvas.Delete(id)
}

func (v *imageCanvas) resize(size image.Point) {
	v.canvas.Configure(Width(size.X), Height(size.Y))
}

// FitWindow drops any fixed toplevel geometry so the window follows the
// canvas' requested size.
func (v *imageCanvas) FitWindow() {
	WmGeometry(App, "")
}

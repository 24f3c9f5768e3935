package images

import "image"

// DefaultStroke is the outline width in pixels.
const DefaultStroke = 2

// FallbackColor outlines boxes whose class has no color.
const FallbackColor = "magenta"

// Outline is one box rectangle drawn over the image.
type Outline struct {
	Rect  image.Rectangle // canonical, image pixels
	Color string          // Tk color name or #rrggbb
}

// Coords returns the corners in the x0, y0, x1, y1 order Tk canvas items take.
func (o Outline) Coords() (x0, y0, x1, y1 int) {
	return o.Rect.Min.X, o.Rect.Min.Y, o.Rect.Max.X, o.Rect.Max.Y
}

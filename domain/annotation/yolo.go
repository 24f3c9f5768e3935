package annotation

// Normalized label lines: "<class> <xCenter> <yCenter> <width> <height>".

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// Normalized is a box expressed as fractions of the image width and height.
type Normalized struct {
	Class   ClassID
	XCenter float64
	YCenter float64
	Width   float64
	Height  float64
}

// Normalize converts b into center/size fractions of an image of size.
// Width and height keep their sign when the box was drawn right-to-left or bottom-to-top.
func Normalize(b Box, size image.Point) Normalized {
	w := float64(size.X)
	h := float64(size.Y)
	return Normalized{
		Class:   b.Class,
		XCenter: float64(b.Start.X+b.End.X) / 2 / w,
		YCenter: float64(b.Start.Y+b.End.Y) / 2 / h,
		Width:   float64(b.End.X-b.Start.X) / w,
		Height:  float64(b.End.Y-b.Start.Y) / h,
	}
}

// Denormalize applies the inverse transform and rounds to the nearest pixel.
func (n Normalized) Denormalize(size image.Point) Box {
	w := float64(size.X)
	h := float64(size.Y)
	return Box{
		Start: image.Pt(int(math.Round((n.XCenter-n.Width/2)*w)), int(math.Round((n.YCenter-n.Height/2)*h))),
		End:   image.Pt(int(math.Round((n.XCenter+n.Width/2)*w)), int(math.Round((n.YCenter+n.Height/2)*h))),
		Class: n.Class,
	}
}

// Line renders n without the trailing newline.
func (n Normalized) Line() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(n.Class)))
	for _, v := range [4]float64{n.XCenter, n.YCenter, n.Width, n.Height} {
		sb.WriteByte(' ')
		sb.WriteString(FormatCoord(v))
	}
	return sb.String()
}

// FormatCoord prints v in its shortest round-trip form, always with a fractional part
// or exponent: 0.2, 1.0, -0.05, 1e-05.
func FormatCoord(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// FormatBoxes renders one line per box, each terminated by '\n', in recorded order.
func FormatBoxes(boxes []Box, size image.Point) string {
	var sb strings.Builder
	for _, b := range boxes {
		sb.WriteString(Normalize(b, size).Line())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseLine decodes a single label line. Blank lines are reported as an error.
func ParseLine(line string) (Normalized, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return Normalized{}, fmt.Errorf("expected 5 fields in %q, got %d", line, len(fields))
	}
	cls, err := strconv.Atoi(fields[0])
	if err != nil {
		return Normalized{}, fmt.Errorf("invalid class in %q: %w", line, err)
	}
	var vals [4]float64
	for i := range vals {
		vals[i], err = strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Normalized{}, fmt.Errorf("invalid value in %q: %w", line, err)
		}
	}
	return Normalized{Class: ClassID(cls), XCenter: vals[0], YCenter: vals[1], Width: vals[2], Height: vals[3]}, nil
}

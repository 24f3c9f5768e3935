package annotation

import (
	"fmt"
	"image"

	"github.com/soocke/bbox-labeler/config"
)

// ClassID is the integer label written as the first field of a label line.
type ClassID int

func (c ClassID) String() string { return fmt.Sprintf("%d", int(c)) }

// Box is one labeled rectangle in raw pixel coordinates of the displayed image.
// Start is the press location and End the release location; they are not reordered.
type Box struct {
	Start image.Point
	End   image.Point
	Class ClassID
}

// Width is End.X - Start.X and may be negative.
func (b Box) Width() int { return b.End.X - b.Start.X }

// Height is End.Y - Start.Y and may be negative.
func (b Box) Height() int { return b.End.Y - b.Start.Y }

// Empty reports whether the box has zero width or zero height.
func (b Box) Empty() bool { return b.Width() == 0 || b.Height() == 0 }

// Rect returns the canonical (top-left, bottom-right) rectangle covered by the box.
func (b Box) Rect() image.Rectangle { return image.Rectangle{Min: b.Start, Max: b.End}.Canon() }

func (b Box) String() string {
	return fmt.Sprintf("class %d: (%d,%d)-(%d,%d)", b.Class, b.Start.X, b.Start.Y, b.End.X, b.End.Y)
}

// Policy decides what happens to a box when it is committed.
type Policy int

const (
	PolicyPreserve Policy = iota
	PolicyNormalize
	PolicyRejectEmpty
)

func (p Policy) String() string {
	switch p {
	case PolicyPreserve:
		return config.PolicyPreserve
	case PolicyNormalize:
		return config.PolicyNormalize
	case PolicyRejectEmpty:
		return config.PolicyRejectEmpty
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config value to a Policy, falling back to PolicyPreserve.
func ParsePolicy(s string) Policy {
	switch s {
	case config.PolicyNormalize:
		return PolicyNormalize
	case config.PolicyRejectEmpty:
		return PolicyRejectEmpty
	default:
		return PolicyPreserve
	}
}

// Apply returns the box to store and whether it should be kept at all.
func (p Policy) Apply(b Box) (Box, bool) {
	switch p {
	case PolicyNormalize:
		r := b.Rect()
		return Box{Start: r.Min, End: r.Max, Class: b.Class}, true
	case PolicyRejectEmpty:
		if b.Empty() {
			return b, false
		}
		return b, true
	default:
		return b, true
	}
}

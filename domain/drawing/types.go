package drawing

import (
	"image"

	"github.com/soocke/bbox-labeler/domain/annotation"
)

// State enumerates the interaction states of the box drawing machine.
type State int

const (
	StateIdle State = iota
	StateDrawing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// Listener is called on each successful state transition.
type Listener func(prev, next State)

// Pending is the rubber-band rectangle shown while the mouse button is held.
// Class is the class whose color outlines the rectangle.
type Pending struct {
	Start image.Point
	End   image.Point
	Class annotation.ClassID
}

// Box converts the pending rectangle into a box of the given class.
func (p Pending) Box(class annotation.ClassID) annotation.Box {
	return annotation.Box{Start: p.Start, End: p.End, Class: class}
}

// Interaction slices for consumers (presenters).
type StateSource interface{ Current() State }
type PointerEvents interface {
	Press(pt image.Point, class annotation.ClassID) Pending
	Drag(pt image.Point) (Pending, bool)
	Release(pt image.Point, class annotation.ClassID) (annotation.Box, bool)
	Cancel()
}

// Contract aggregate for DI.
type Contract interface {
	StateSource
	PointerEvents
	PendingRect() (Pending, bool)
	AddListener(Listener)
}

package drawing

import (
	"image"
	"log/slog"

	"github.com/soocke/bbox-labeler/domain/annotation"
)

// Machine tracks one box being drawn with press, drag and release events.
// It is not safe for concurrent use; all events arrive on the UI thread.
type Machine struct {
	state     State
	pending   Pending
	logger    *slog.Logger
	listeners []Listener
}

// NewMachine returns a machine in StateIdle.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{state: StateIdle, logger: logger}
}

func (m *Machine) AddListener(l Listener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

func (m *Machine) Current() State { return m.state }

// Press starts a zero-size rectangle at pt outlined in the color of class.
// A press while already drawing restarts the rectangle.
func (m *Machine) Press(pt image.Point, class annotation.ClassID) Pending {
	m.pending = Pending{Start: pt, End: pt, Class: class}
	m.transition(StateDrawing)
	return m.pending
}

// Drag moves the far corner. It reports false when no rectangle is being drawn.
func (m *Machine) Drag(pt image.Point) (Pending, bool) {
	if m.state != StateDrawing {
		return Pending{}, false
	}
	m.pending.End = pt
	return m.pending, true
}

// Release finalizes the rectangle at pt with the class current at release time
// and returns it as a box. It reports false when no rectangle is being drawn.
func (m *Machine) Release(pt image.Point, class annotation.ClassID) (annotation.Box, bool) {
	if m.state != StateDrawing {
		return annotation.Box{}, false
	}
	m.pending.End = pt
	m.pending.Class = class
	box := m.pending.Box(class)
	m.pending = Pending{}
	m.transition(StateIdle)
	return box, true
}

// Cancel discards an in-progress rectangle.
func (m *Machine) Cancel() {
	if m.state == StateIdle {
		return
	}
	m.pending = Pending{}
	m.transition(StateIdle)
}

// PendingRect returns the in-progress rectangle, if any.
func (m *Machine) PendingRect() (Pending, bool) {
	if m.state != StateDrawing {
		return Pending{}, false
	}
	return m.pending, true
}

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("drawing state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

// Ensure contract satisfaction
var _ Contract = (*Machine)(nil)

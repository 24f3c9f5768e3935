package drawing

import (
	"image"
	"log/slog"
	"testing"

	"github.com/soocke/bbox-labeler/domain/annotation"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type transitionRecorder struct{ seq []State }

func (r *transitionRecorder) listener(prev, next State) { r.seq = append(r.seq, next) }

func TestMachine_PressDragRelease(t *testing.T) {
	m := NewMachine(discardLogger)
	r := &transitionRecorder{}
	m.AddListener(r.listener)

	p := m.Press(image.Pt(10, 10), 0)
	if m.Current() != StateDrawing {
		t.Fatalf("expected drawing after press, got %v", m.Current())
	}
	if p.Start != p.End || p.Start != image.Pt(10, 10) {
		t.Fatalf("press should create zero-size rect at press point, got %+v", p)
	}
	p, ok := m.Drag(image.Pt(30, 40))
	if !ok || p.End != image.Pt(30, 40) || p.Start != image.Pt(10, 10) {
		t.Fatalf("drag should move far corner only, got %+v ok=%v", p, ok)
	}
	box, ok := m.Release(image.Pt(50, 50), 0)
	if !ok {
		t.Fatalf("release should commit a box")
	}
	want := annotation.Box{Start: image.Pt(10, 10), End: image.Pt(50, 50), Class: 0}
	if box != want {
		t.Fatalf("expected %v, got %v", want, box)
	}
	if m.Current() != StateIdle {
		t.Fatalf("expected idle after release, got %v", m.Current())
	}
	if _, ok := m.PendingRect(); ok {
		t.Fatalf("no pending rect expected after release")
	}
	if len(r.seq) != 2 || r.seq[0] != StateDrawing || r.seq[1] != StateIdle {
		t.Fatalf("unexpected transition sequence %v", r.seq)
	}
}

func TestMachine_ClassChangedMidDragUsesReleaseClass(t *testing.T) {
	m := NewMachine(nil)
	m.Press(image.Pt(1, 2), 0)
	if p, _ := m.PendingRect(); p.Class != 0 {
		t.Fatalf("pending outline should use press class, got %v", p.Class)
	}
	box, ok := m.Release(image.Pt(3, 4), 1)
	if !ok || box.Class != 1 {
		t.Fatalf("expected release class 1, got %v ok=%v", box.Class, ok)
	}
}

func TestMachine_IgnoresEventsWhileIdle(t *testing.T) {
	m := NewMachine(nil)
	if _, ok := m.Drag(image.Pt(5, 5)); ok {
		t.Fatalf("drag while idle should be ignored")
	}
	if _, ok := m.Release(image.Pt(5, 5), 0); ok {
		t.Fatalf("release while idle should be ignored")
	}
	if m.Current() != StateIdle {
		t.Fatalf("state changed on ignored events: %v", m.Current())
	}
}

func TestMachine_ReleaseWithoutDragAllowsZeroArea(t *testing.T) {
	m := NewMachine(nil)
	m.Press(image.Pt(7, 7), 2)
	box, ok := m.Release(image.Pt(7, 7), 2)
	if !ok || !box.Empty() {
		t.Fatalf("expected committed zero-area box, got %v ok=%v", box, ok)
	}
}

func TestMachine_Cancel(t *testing.T) {
	m := NewMachine(nil)
	r := &transitionRecorder{}
	m.AddListener(r.listener)
	m.Cancel() // idle: no transition
	m.Press(image.Pt(1, 1), 0)
	m.Cancel()
	if m.Current() != StateIdle {
		t.Fatalf("cancel should return to idle, got %v", m.Current())
	}
	if _, ok := m.Release(image.Pt(2, 2), 0); ok {
		t.Fatalf("release after cancel should be ignored")
	}
	if len(r.seq) != 2 {
		t.Fatalf("expected 2 transitions, got %v", r.seq)
	}
}

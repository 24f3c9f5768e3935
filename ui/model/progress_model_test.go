package model

import (
	"testing"
)

func TestProgressModel_BasicLifecycle(t *testing.T) {
	m := NewProgressModel()

	// Nothing loaded yet.
	if p := m.Values(); p != (Progress{}) {
		t.Fatalf("expected zero progress before first image, got %+v", p)
	}

	m.OnImageLoaded("a.png")
	m.OnSaved("a.png", 2)
	m.OnImageLoaded("b.png")
	p := m.Values()
	if p.Visited != 2 || p.FilesSaved != 1 || p.BoxesSaved != 2 {
		t.Fatalf("unexpected progress %+v", p)
	}

	// Re-saving an image replaces its count instead of adding to it.
	m.OnSaved("a.png", 0)
	m.OnSaved("b.png", 3)
	p = m.Values()
	if p.FilesSaved != 2 || p.BoxesSaved != 3 {
		t.Fatalf("re-save should replace counts; got %+v", p)
	}
}

func TestProgressModel_IgnoresEmptyNamesAndNil(t *testing.T) {
	m := NewProgressModel()
	m.OnImageLoaded("")
	m.OnSaved("", 4)
	if p := m.Values(); p != (Progress{}) {
		t.Fatalf("empty names should be ignored; got %+v", p)
	}

	var nilModel *ProgressModel
	nilModel.OnImageLoaded("a.png")
	nilModel.OnSaved("a.png", 1)
	if p := nilModel.Values(); p != (Progress{}) {
		t.Fatalf("nil model should report zero progress; got %+v", p)
	}
}

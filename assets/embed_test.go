package assets

import "testing"

func TestPlaceholderImageDecodes(t *testing.T) {
	img, err := PlaceholderImage()
	if err != nil {
		t.Fatalf("decode placeholder: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 320 {
		t.Fatalf("unexpected placeholder size %v", b)
	}
}

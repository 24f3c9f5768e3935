package annotation

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBoxes_TwoClassesInDrawOrder(t *testing.T) {
	boxes := []Box{
		{Start: image.Pt(10, 10), End: image.Pt(50, 50), Class: 0},
		{Start: image.Pt(60, 60), End: image.Pt(100, 100), Class: 1},
	}
	got := FormatBoxes(boxes, image.Pt(200, 200))
	assert.Equal(t, "0 0.15 0.15 0.2 0.2\n1 0.4 0.4 0.2 0.2\n", got)
}

func TestFormatBoxes_Empty(t *testing.T) {
	assert.Equal(t, "", FormatBoxes(nil, image.Pt(10, 10)))
}

func TestNormalize_InvertedBoxKeepsNegativeSize(t *testing.T) {
	b := Box{Start: image.Pt(100, 80), End: image.Pt(60, 40), Class: 3}
	n := Normalize(b, image.Pt(200, 100))
	assert.InDelta(t, 0.4, n.XCenter, 1e-12)
	assert.InDelta(t, 0.6, n.YCenter, 1e-12)
	assert.InDelta(t, -0.2, n.Width, 1e-12)
	assert.InDelta(t, -0.4, n.Height, 1e-12)
	assert.Equal(t, "3 0.4 0.6 -0.2 -0.4", n.Line())
}

func TestNormalize_ZeroAreaBox(t *testing.T) {
	b := Box{Start: image.Pt(20, 20), End: image.Pt(20, 20)}
	assert.Equal(t, "0 0.1 0.2 0.0 0.0", Normalize(b, image.Pt(200, 100)).Line())
}

func TestFormatCoord(t *testing.T) {
	cases := map[float64]string{
		0:       "0.0",
		1:       "1.0",
		0.5:     "0.5",
		-0.05:   "-0.05",
		0.00001: "1e-05",
		0.0001:  "0.0001",
		1.0 / 3: "0.3333333333333333",
		12:      "12.0",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCoord(in), "input %v", in)
	}
}

func TestRoundTrip_InverseTransform(t *testing.T) {
	sizes := []image.Point{{200, 200}, {640, 480}, {1920, 1080}, {37, 91}}
	boxes := []Box{
		{Start: image.Pt(10, 10), End: image.Pt(50, 50), Class: 0},
		{Start: image.Pt(0, 0), End: image.Pt(37, 91), Class: 1},
		{Start: image.Pt(30, 25), End: image.Pt(3, 2), Class: 7},
		{Start: image.Pt(5, 5), End: image.Pt(5, 5), Class: 2},
	}
	for _, size := range sizes {
		for _, b := range boxes {
			line := Normalize(b, size).Line()
			n, err := ParseLine(line)
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, b, n.Denormalize(size), "size %v line %q", size, line)
		}
	}
}

func TestParseLine_Errors(t *testing.T) {
	for _, line := range []string{"", "0 0.1 0.2 0.3", "x 0.1 0.2 0.3 0.4", "0 0.1 y 0.3 0.4", "0 1 2 3 4 5"} {
		_, err := ParseLine(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestPolicy_Apply(t *testing.T) {
	inverted := Box{Start: image.Pt(50, 40), End: image.Pt(10, 20), Class: 1}
	flat := Box{Start: image.Pt(5, 5), End: image.Pt(30, 5)}

	got, keep := PolicyPreserve.Apply(inverted)
	assert.True(t, keep)
	assert.Equal(t, inverted, got)

	got, keep = PolicyNormalize.Apply(inverted)
	assert.True(t, keep)
	assert.Equal(t, Box{Start: image.Pt(10, 20), End: image.Pt(50, 40), Class: 1}, got)

	_, keep = PolicyRejectEmpty.Apply(flat)
	assert.False(t, keep)
	got, keep = PolicyRejectEmpty.Apply(inverted)
	assert.True(t, keep)
	assert.Equal(t, inverted, got)

	assert.Equal(t, PolicyNormalize, ParsePolicy("normalize"))
	assert.Equal(t, PolicyPreserve, ParsePolicy("whatever"))
}

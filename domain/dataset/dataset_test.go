package dataset

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/soocke/bbox-labeler/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestListImages_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.jpg"))
	touch(t, filepath.Join(dir, "a.png"))
	touch(t, filepath.Join(dir, "c.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	names, err := ListImages(dir, config.DefaultExtensions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.jpg"}, names)
}

func TestListImages_FollowsSymlinksToFilesOnly(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	touch(t, filepath.Join(other, "real.png"))
	require.NoError(t, os.Mkdir(filepath.Join(other, "folder"), 0o755))

	if err := os.Symlink(filepath.Join(other, "real.png"), filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(other, "folder"), filepath.Join(dir, "dir.png")))
	require.NoError(t, os.Symlink(filepath.Join(other, "gone.png"), filepath.Join(dir, "dangling.png")))

	names, err := ListImages(dir, config.DefaultExtensions())
	require.NoError(t, err)
	assert.Equal(t, []string{"link.png"}, names)
}

func TestListImages_CaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "X.JPEG"))
	touch(t, filepath.Join(dir, "y.Png"))
	touch(t, filepath.Join(dir, "z.gif"))

	names, err := ListImages(dir, config.DefaultExtensions())
	require.NoError(t, err)
	assert.Equal(t, []string{"X.JPEG", "y.Png"}, names)
}

func TestListImages_EmptyAndMissing(t *testing.T) {
	names, err := ListImages(t.TempDir(), config.DefaultExtensions())
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = ListImages(filepath.Join(t.TempDir(), "missing"), config.DefaultExtensions())
	assert.Error(t, err)
}

func TestFileDecoder_DecodesAndReportsErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	writePNG(t, good, 20, 10)
	img, err := NewFileDecoder(nil).Decode(good)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())

	bad := filepath.Join(dir, "bad.jpg")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	_, err = NewFileDecoder(nil).Decode(bad)
	assert.Error(t, err)
}

func TestFileDecoder_ExtraFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, image.NewRGBA(image.Rect(0, 0, 7, 3))))
	require.NoError(t, f.Close())

	img, err := NewFileDecoder(nil).Decode(path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(7, 3), img.Bounds().Size())
}

func TestLabelPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "img.001.txt"), LabelPath("out", "img.001.JPG"))
	assert.Equal(t, "photo", BaseNoExt("/x/y/photo.jpeg"))
}

func TestWriteLabels_OverwritesAndReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, WriteLabels(path, "0 0.15 0.15 0.2 0.2\n1 0.4 0.4 0.2 0.2\n"))
	require.NoError(t, WriteLabels(path, "1 0.5 0.5 1.0 1.0\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 0.5 0.5 1.0 1.0\n", string(data))

	labels, err := ReadLabels(path)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.EqualValues(t, 1, labels[0].Class)
	assert.InDelta(t, 1.0, labels[0].Width, 1e-12)
}

func TestReadLabels_MissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadLabels(filepath.Join(dir, "none.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("0 0.1 0.1 0.1 0.1\n\nbroken line\n"), 0o644))
	_, err = ReadLabels(bad)
	assert.ErrorContains(t, err, "bad.txt:3")
}

func TestWriteLabels_MissingDirectory(t *testing.T) {
	err := WriteLabels(filepath.Join(t.TempDir(), "nope", "a.txt"), "")
	assert.Error(t, err)
}

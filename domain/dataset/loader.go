package dataset

import (
	"image"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Extra decoders so a widened extension set can be opened.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder loads an image file into memory.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// FileDecoder decodes images from disk with the registered image decoders.
// Pixels stay in file orientation; EXIF orientation is not applied.
type FileDecoder struct {
	Logger *slog.Logger
}

// NewFileDecoder returns a decoder that logs decoded sizes at debug level.
func NewFileDecoder(logger *slog.Logger) *FileDecoder { return &FileDecoder{Logger: logger} }

func (d *FileDecoder) Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %q", path)
	}
	if d != nil && d.Logger != nil {
		b := img.Bounds()
		d.Logger.Debug("image decoded", "path", path, "width", b.Dx(), "height", b.Dy())
	}
	return img, nil
}

package images

import (
	"bytes"
	"image"
	"image/png"
)

// Encoded once per loaded image.
var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = pngEncoder.Encode(&buf, img)
	return buf.Bytes()
}

// PNGSize reads the dimensions from PNG header bytes without decoding pixels.
func PNGSize(data []byte) (image.Point, bool) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Point{}, false
	}
	return image.Pt(cfg.Width, cfg.Height), true
}

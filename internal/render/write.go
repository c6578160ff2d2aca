package render

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG renders img as PNG bytes so callers can write files once everything is encoded.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

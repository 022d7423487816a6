// Package png encodes packed RGB pixel buffers as PNG data and decodes them
// back. The encoder is lossless: every pixel byte handed in survives a
// decode unchanged.
package png

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// EncodeRGB encodes an interleaved RGB buffer (3 bytes per pixel, row-major)
// as a PNG.
func EncodeRGB(pixels []byte, width, height int) ([]byte, error) {
	expected := width * height * 3
	if len(pixels) != expected {
		return nil, fmt.Errorf("expected %d bytes for %dx%d RGB, got %d", expected, width, height, len(pixels))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := (y*width + x) * 3
			dst := y*img.Stride + x*4
			img.Pix[dst] = pixels[src]
			img.Pix[dst+1] = pixels[src+1]
			img.Pix[dst+2] = pixels[src+2]
			img.Pix[dst+3] = 0xff
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

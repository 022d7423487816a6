package png

import (
	"bytes"
	"fmt"
	"image/png"
)

// DecodedRGB holds the result of decoding a PNG to packed RGB.
type DecodedRGB struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3, alpha dropped
}

// DecodeRGB decodes a PNG from memory, outputting interleaved RGB pixels.
func DecodeRGB(data []byte) (*DecodedRGB, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("png decode: %w", err)
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	pixels := make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*width + x) * 3
			pixels[i] = uint8(r >> 8)
			pixels[i+1] = uint8(g >> 8)
			pixels[i+2] = uint8(bl >> 8)
		}
	}

	return &DecodedRGB{Width: width, Height: height, Pixels: pixels}, nil
}

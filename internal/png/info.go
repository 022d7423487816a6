package png

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
)

// ImageInfo contains metadata parsed from an encoded PNG header.
type ImageInfo struct {
	Width      int
	Height     int
	ColorModel string
}

// GetInfo parses image metadata without decoding the full pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("png parse: %w", err)
	}

	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}

// colorModelName returns a human-readable name for a decoded color model.
func colorModelName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.NRGBAModel:
		return "NRGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	default:
		return "unknown"
	}
}

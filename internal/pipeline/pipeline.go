// Package pipeline wires the render and encode stages into a single run.
package pipeline

import (
	"fmt"

	"github.com/davesmith10/mandelgen/internal/png"
	"github.com/davesmith10/mandelgen/internal/raster"
)

// Options controls a full render run.
type Options struct {
	Config raster.Config // grid, bounds, and iteration cap
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded PNG
	Width  int
	Height int
}

// Run executes the full pipeline: render the escape-time field, then encode
// it as a PNG. Encoding is the only stage that can fail.
func Run(opts Options) (*Result, error) {
	img := raster.Render(opts.Config)

	encoded, err := png.EncodeRGB(img.Pixels, img.Width, img.Height)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return &Result{
		Data:   encoded,
		Width:  img.Width,
		Height: img.Height,
	}, nil
}

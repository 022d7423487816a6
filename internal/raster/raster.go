// Package raster renders the Mandelbrot escape-time field into a packed
// RGB pixel buffer.
package raster

import (
	"github.com/davesmith10/mandelgen/internal/mandelbrot"
	"github.com/davesmith10/mandelgen/internal/palette"
)

// Bounds is the rectangle of the complex plane covered by the image.
type Bounds struct {
	MinReal, MaxReal float64
	MinImag, MaxImag float64
}

// Config fixes the pixel grid and the region of the plane it covers.
type Config struct {
	Width         int
	Height        int
	MaxIterations int
	Bounds        Bounds
}

// DefaultConfig returns the reference view: an 800x800 grid over
// real in [-2, 1], imag in [-1.5, 1.5], at 1000 iterations.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        800,
		MaxIterations: 1000,
		Bounds: Bounds{
			MinReal: -2.0,
			MaxReal: 1.0,
			MinImag: -1.5,
			MaxImag: 1.5,
		},
	}
}

// Render fills a packed RGB buffer for cfg. Pixel (x, y) maps linearly into
// cfg.Bounds and lands at buffer offset (y*Width + x) * 3. The mapping is
// purely positional, so the result is identical from run to run.
func Render(cfg Config) *RGBImage {
	pixels := make([]byte, cfg.Width*cfg.Height*3)

	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			re := cfg.Bounds.MinReal + (float64(x)/float64(cfg.Width))*(cfg.Bounds.MaxReal-cfg.Bounds.MinReal)
			im := cfg.Bounds.MinImag + (float64(y)/float64(cfg.Height))*(cfg.Bounds.MaxImag-cfg.Bounds.MinImag)

			iterations := mandelbrot.Evaluate(re, im, cfg.MaxIterations)
			r, g, b := palette.Map(iterations, cfg.MaxIterations)

			i := (y*cfg.Width + x) * 3
			pixels[i] = r
			pixels[i+1] = g
			pixels[i+2] = b
		}
	}

	return &RGBImage{Width: cfg.Width, Height: cfg.Height, Pixels: pixels}
}

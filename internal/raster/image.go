package raster

// RGBImage is the intermediate representation passed between the renderer
// and the PNG encoder. Pixels are stored as interleaved R,G,B bytes
// (3 bytes per pixel, row-major order).
type RGBImage struct {
	Width  int
	Height int
	Pixels []byte // len = Width * Height * 3
}

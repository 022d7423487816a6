// Package palette maps escape-time iteration counts to RGB channel values.
package palette

// Map converts an iteration count to an RGB triple. Points that reached
// maxIterations never escaped and are painted black; everything else gets a
// polynomial gradient over t = iterations/maxIterations. The channel
// polynomials and the 1.5 gain are empirical, not derived from any named
// palette; changing them changes the visible output.
func Map(iterations, maxIterations int) (r, g, b uint8) {
	if iterations == maxIterations {
		return 0, 0, 0
	}

	t := float64(iterations) / float64(maxIterations)

	r = clamp(9 * (1 - t) * t * t * t * 255 * 1.5)
	g = clamp(15 * (1 - t) * (1 - t) * t * t * 255 * 1.5)
	b = clamp(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255 * 1.5)
	return r, g, b
}

// clamp saturates v to [0, 255] and truncates it to an 8-bit channel value.
func clamp(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

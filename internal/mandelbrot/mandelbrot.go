// Package mandelbrot implements the escape-time iteration that measures how
// quickly a point of the complex plane diverges under z = z*z + c.
package mandelbrot

import "math/cmplx"

// Evaluate returns the number of iterations of z = z*z + c (starting from
// z = 0) before |z| reaches 2, capped at maxIterations. A return value equal
// to maxIterations means the point never escaped and is treated as inside
// the set.
func Evaluate(re, im float64, maxIterations int) int {
	c := complex(re, im)
	var z complex128

	iterations := 0
	for cmplx.Abs(z) < 2.0 && iterations < maxIterations {
		z = z*z + c
		iterations++
	}
	return iterations
}

package palette

import "testing"

func TestMap_MaxIterationsIsBlack(t *testing.T) {
	r, g, b := Map(1000, 1000)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Map(1000, 1000) = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestMap_ZeroIterationsIsBlack(t *testing.T) {
	// t = 0 zeroes every channel polynomial.
	r, g, b := Map(0, 1000)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Map(0, 1000) = (%d, %d, %d), want (0, 0, 0)", r, g, b)
	}
}

func TestMap_KnownValues(t *testing.T) {
	cases := []struct {
		iterations, maxIterations int
		r, g, b                   uint8
	}{
		// t = 0.5: green oversaturates and clamps to 255.
		{500, 1000, 215, 255, 203},
		// t = 0.1: blue dominates near the set boundary colors.
		{100, 1000, 3, 46, 237},
		// t = 0.9: red dominates for slowly escaping points.
		{900, 1000, 250, 46, 2},
	}
	for _, c := range cases {
		r, g, b := Map(c.iterations, c.maxIterations)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("Map(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				c.iterations, c.maxIterations, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestMap_SaturatesInsteadOfWrapping(t *testing.T) {
	// The green polynomial exceeds 255 over a wide band around t = 0.5; a
	// wrapping cast would fold those values back toward zero.
	sawSaturated := false
	for it := 0; it <= 1000; it++ {
		_, g, _ := Map(it, 1000)
		if g == 255 {
			sawSaturated = true
			break
		}
	}
	if !sawSaturated {
		t.Error("green channel never reached 255, clamp appears broken")
	}
}

package geometry

import "math"

// Float32 trig for the trail builder's per-sample torus mapping, the one
// place that evaluates thousands of sines per frame. Accurate to ~0.001,
// which is far below a pixel at the sizes involved.

// fastSin approximates sin(x) with a corrected parabola.
func fastSin(x float32) float32 {
	x = wrapPi(x)
	const pi = math.Pi
	const pi2 = pi * pi
	ax := x
	if ax < 0 {
		ax = -ax
	}
	y := 4 * x * (pi - ax) / pi2
	return 0.225*(y*absf(y)-y) + y
}

// fastCos approximates cos(x) via fastSin.
func fastCos(x float32) float32 {
	return fastSin(x + math.Pi/2)
}

// wrapPi wraps an angle to [-Pi, Pi].
func wrapPi(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

package systems

import "math"

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fract returns x - floor(x), matching GLSL mod(x, 1.0) for negative inputs too.
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// lerp linearly interpolates from a to b, exact at both ends like GLSL mix.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

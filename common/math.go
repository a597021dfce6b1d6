package common

import "math"

// Random is the subset of *rand.Rand the scene needs.
type Random interface {
	Float64() float64
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// MapRand returns a value uniformly drawn from [min, max).
// With isInt the result is rounded half up.
func MapRand(r Random, min, max float64, isInt bool) float64 {
	v := r.Float64()*(max-min) + min
	if isInt {
		v = math.Floor(v + 0.5)
	}
	return v
}

// RoundIndex maps a draw in [0,1) onto [0, n-1] by rounding, so the two end
// indices are half as likely as the interior ones.
func RoundIndex(r Random, n int) int {
	if n <= 0 {
		return 0
	}
	return int(MapRand(r, 0, float64(n-1), true))
}

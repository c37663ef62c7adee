package core

import (
	"math"

	"github.com/chewxy/math32"
)

// HaltonSequence computes the radical-inverse of i in the given base: a
// standard low-discrepancy sequence value in [0, 1) (spec.md §4.2).
func HaltonSequence(i uint64, base int) float32 {
	f := float32(1)
	r := float32(0)
	b := float32(base)
	for i > 0 {
		f /= b
		r += f * float32(i%uint64(base))
		i /= uint64(base)
	}
	// float32 accumulation rounds to exactly 1 for large i; keep [0, 1).
	if r >= 1 {
		r = math.Nextafter32(1, 0)
	}
	return r
}

// IncrementalAverage folds a new sample into a running mean using the
// formula mean_n = ((n-1)*mean_{n-1} + x_n) / n (spec.md §4.6, GLOSSARY).
func IncrementalAverage(oldAvg, sample float32, n int) float32 {
	return (float32(n-1)*oldAvg + sample) / float32(n)
}

// FastAtan is a piecewise-rational approximation of arctan on
// [-pi/4, pi/4], using the constants 0.2447 and 0.0663 from the original
// perspective camera (spec.md §4.1, §9 "Design Notes" — the constants
// must be preserved exactly to keep rendered images reproducible):
// pi/4*x - x*(|x|-1)*(0.2447 + 0.0663*|x|).
func FastAtan(x float32) float32 {
	absX := math32.Abs(x)
	return (math32.Pi/4)*x - x*(absX-1)*(0.2447+0.0663*absX)
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

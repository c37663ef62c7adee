package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"mobilert/pkg/core"
)

// TestHaltonSequenceRange checks spec.md §8's "Halton round-trip":
// halton(i, 2) is in [0,1) for every 32-bit i.
func TestHaltonSequenceRange(t *testing.T) {
	for _, i := range []uint64{0, 1, 2, 7, 1023, math.MaxUint32} {
		v := core.HaltonSequence(i, 2)
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}

func TestHaltonSequenceKnownValues(t *testing.T) {
	// Base-2 radical inverse of 1 is 0.5, of 2 is 0.25, of 3 is 0.75.
	assert.InDelta(t, float32(0.5), core.HaltonSequence(1, 2), 1e-6)
	assert.InDelta(t, float32(0.25), core.HaltonSequence(2, 2), 1e-6)
	assert.InDelta(t, float32(0.75), core.HaltonSequence(3, 2), 1e-6)
}

// TestIncrementalAverageIdempotence checks spec.md §8: averaging the
// same color n times yields that color's quantization (i.e. itself).
func TestIncrementalAverageIdempotence(t *testing.T) {
	const color = float32(137)
	avg := color
	for n := 2; n <= 20; n++ {
		avg = core.IncrementalAverage(avg, color, n)
	}
	assert.InDelta(t, color, avg, 1e-3)
}

func TestIncrementalAverageConverges(t *testing.T) {
	avg := float32(0)
	for n := 1; n <= 100; n++ {
		avg = core.IncrementalAverage(avg, 10, n)
	}
	assert.InDelta(t, float32(10), avg, 1e-2)
}

// TestFastAtanMatchesOriginalRationalForm pins FastAtan to the exact
// rational approximation spec.md §9 requires preserved verbatim:
// pi/4*x - x*(|x|-1)*(0.2447 + 0.0663*|x|). A loose comparison against
// math.Atan wouldn't catch a substituted polynomial that happens to be
// roughly arctan-shaped on this interval, so this asserts the original's
// exact formula instead.
func TestFastAtanMatchesOriginalRationalForm(t *testing.T) {
	for _, x := range []float32{-0.7, -0.3, 0, 0.3, 0.7} {
		absX := float32(math.Abs(float64(x)))
		want := float32(math.Pi/4)*x - x*(absX-1)*(0.2447+0.0663*absX)
		got := core.FastAtan(x)
		assert.InDelta(t, want, got, 1e-6)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), core.Clamp(-5, 0, 1))
	assert.Equal(t, float32(1), core.Clamp(5, 0, 1))
	assert.Equal(t, float32(0.5), core.Clamp(0.5, 0, 1))
}

package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mobilert/pkg/sampler"
)

func TestConstantSampler(t *testing.T) {
	c := sampler.NewConstant(0.25)
	assert.Equal(t, float32(0.25), c.Next())
	assert.Equal(t, float32(0.25), c.Next())
	c.Reset()
	assert.Equal(t, float32(0.25), c.Next())
}

func TestHaltonSeqWindowRollsBackAndSignalsExhaustion(t *testing.T) {
	h := sampler.NewHaltonSeq(2, 2) // domain = 4
	for i := 0; i < 4; i++ {
		v := h.Next()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
	// The 5th call in pass 0 leaves the [0,4) window: sentinel.
	assert.Equal(t, float32(1.0), h.Next())
}

func TestHaltonSeqKnownSequence(t *testing.T) {
	h := sampler.NewHaltonSeq(100, 100)
	assert.InDelta(t, float32(0), h.Next(), 1e-6)
	assert.InDelta(t, float32(0.5), h.Next(), 1e-6)
	assert.InDelta(t, float32(0.25), h.Next(), 1e-6)
}

func TestHaltonSeqResetRestartsSequence(t *testing.T) {
	h := sampler.NewHaltonSeq(100, 100)
	first := h.Next()
	h.Next()
	h.Reset()
	assert.Equal(t, first, h.Next())
}

func TestMersenneTwisterRangeAndDeterminism(t *testing.T) {
	a := sampler.NewMersenneTwister(42)
	b := sampler.NewMersenneTwister(42)
	for i := 0; i < 10; i++ {
		va, vb := a.Next(), b.Next()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, float32(0))
		assert.Less(t, va, float32(1))
	}
}

func TestPCGRangeAndDeterminism(t *testing.T) {
	a := sampler.NewPCG(1, 2)
	b := sampler.NewPCG(1, 2)
	for i := 0; i < 10; i++ {
		va, vb := a.Next(), b.Next()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, float32(0))
		assert.Less(t, va, float32(1))
	}
}

func TestStaticSamplersStayInRangeAndAdvanceIndependently(t *testing.T) {
	h1 := sampler.NewStaticHaltonSeq()
	h2 := sampler.NewStaticHaltonSeq()

	a := h1.Next()
	for i := 0; i < 50; i++ {
		v := h1.Next()
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
	// h2 keeps its own counter: h1 having read 51 values does not move
	// it, so its first value is the table's first value.
	assert.Equal(t, a, h2.Next())
	// Resetting h1's own counter replays from the table's start.
	h1.Reset()
	assert.Equal(t, a, h1.Next())
}

func TestStaticMersenneAndPCGStayInRange(t *testing.T) {
	m := sampler.NewStaticMersenneTwister()
	p := sampler.NewStaticPCG()
	for i := 0; i < 20; i++ {
		mv := m.Next()
		pv := p.Next()
		assert.GreaterOrEqual(t, mv, float32(0))
		assert.Less(t, mv, float32(1))
		assert.GreaterOrEqual(t, pv, float32(0))
		assert.Less(t, pv, float32(1))
	}
}

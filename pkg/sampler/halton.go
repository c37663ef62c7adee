package sampler

import (
	"sync/atomic"

	"mobilert/pkg/core"
)

// HaltonSeq is a per-pass Halton(base 2) sequence sampler. Its domain is
// the number of samples expected within a single pass (for the
// renderer's tile dispenser, the tile count; spec.md §4.2); Next rolls
// the shared counter back and returns the 1.0 "pass exhausted" sentinel
// once the current pass's window is consumed, letting the caller detect
// end-of-pass without a separate signal.
type HaltonSeq struct {
	domain  uint64
	counter uint64
}

// NewHaltonSeq builds a HaltonSeq whose domain is w*h (the renderer
// passes its tile-grid dimensions; a raw domain size works equally well
// for other callers).
func NewHaltonSeq(w, h int) *HaltonSeq {
	domain := uint64(w) * uint64(h)
	if domain == 0 {
		domain = 1
	}
	return &HaltonSeq{domain: domain}
}

// Next advances the sequence within pass 0, matching core.Sampler.
func (h *HaltonSeq) Next() float32 { return h.NextForPass(0) }

// NextForPass returns the next Halton value within the window
// [pass*domain, (pass+1)*domain); once the counter would leave that
// window it is rolled back (so the next caller in a later pass starts
// from the window's beginning) and the sentinel 1.0 is returned
// (spec.md §4.2).
func (h *HaltonSeq) NextForPass(pass int) float32 {
	windowEnd := h.domain * uint64(pass+1)
	counter := atomic.AddUint64(&h.counter, 1) - 1
	if counter >= windowEnd {
		atomic.AddUint64(&h.counter, ^uint64(0)) // roll back the increment
		return 1.0
	}
	return HaltonValue(counter-h.domain*uint64(pass), 2)
}

// Reset restarts the sequence from zero.
func (h *HaltonSeq) Reset() {
	atomic.StoreUint64(&h.counter, 0)
}

var _ core.Sampler = (*HaltonSeq)(nil)

// HaltonValue computes the radical-inverse of i in the given base
// (spec.md §4.2: "halton_sequence(i, b)"). It delegates to
// core.HaltonSequence, the single canonical implementation shared with
// the renderer's tile dispenser.
func HaltonValue(i uint64, base int) float32 {
	return core.HaltonSequence(i, base)
}

package sampler

import (
	"math/rand/v2"
	"sync"

	"mobilert/pkg/core"
)

// PCG wraps math/rand/v2's native PCG source behind a mutex (spec.md
// §4.2). Like MersenneTwister it needs no adapter for Go's rand
// package: rand/v2's PCG already produces the float64-in-[0,1) stream
// this sampler narrows to float32.
type PCG struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPCG seeds a PCG sampler from a pair of uint64 seeds.
func NewPCG(seed1, seed2 uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Next returns a uniform value in [0, 1).
func (p *PCG) Next() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return float32(p.rng.Float64())
}

// Reset is a no-op: a PCG stream has no pass-relative state to rewind.
func (p *PCG) Reset() {}

var _ core.Sampler = (*PCG)(nil)

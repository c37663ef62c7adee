package sampler

import (
	"math/rand"
	"sync"

	"mobilert/pkg/core"
)

// MersenneTwister wraps a seeded stdlib math/rand source behind a mutex,
// since a single sampler instance (an AreaLight's, for example) is called
// concurrently by every render worker that can see that light (spec.md
// §4.2, "samplers are atomic internally"). That source is Go's additive
// lagged Fibonacci generator; no MT19937 generator is implemented here.
type MersenneTwister struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMersenneTwister seeds a MersenneTwister from seed.
func NewMersenneTwister(seed int64) *MersenneTwister {
	return &MersenneTwister{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniform value in [0, 1).
func (m *MersenneTwister) Next() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float32(m.rng.Float64())
}

// Reset is a no-op: this random stream has no pass-relative state
// to rewind, unlike HaltonSeq's counter.
func (m *MersenneTwister) Reset() {}

var _ core.Sampler = (*MersenneTwister)(nil)

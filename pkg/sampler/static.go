package sampler

import (
	"math/rand"
	rand2 "math/rand/v2"
	"sync"
	"sync/atomic"

	"mobilert/pkg/core"
)

// staticTableSize is the length of each process-wide pre-filled table
// (spec.md §4.2: "Static variants pre-fill a table once per process").
// It is a power of two so indexing can mask instead of mod.
const staticTableSize = 1 << 20
const staticTableMask = staticTableSize - 1

var (
	staticHaltonOnce sync.Once
	staticHaltonTbl  [staticTableSize]float32

	staticMersenneOnce sync.Once
	staticMersenneTbl  [staticTableSize]float32

	staticPCGOnce sync.Once
	staticPCGTbl  [staticTableSize]float32
)

func fillStaticHalton() {
	for i := range staticHaltonTbl {
		staticHaltonTbl[i] = core.HaltonSequence(uint64(i+1), 2)
	}
	// Shuffled so that sequential readers (many goroutines fetch-adding
	// the same counter) don't each walk the low-discrepancy sequence in
	// lockstep with their tile's spatial position (spec.md §4.2).
	shuffleRng := rand.New(rand.NewSource(1))
	shuffleRng.Shuffle(len(staticHaltonTbl), func(i, j int) {
		staticHaltonTbl[i], staticHaltonTbl[j] = staticHaltonTbl[j], staticHaltonTbl[i]
	})
}

func fillStaticMersenne() {
	rng := rand.New(rand.NewSource(2))
	for i := range staticMersenneTbl {
		staticMersenneTbl[i] = float32(rng.Float64())
	}
}

func fillStaticPCG() {
	rng := rand.New(rand2.NewPCG(3, 7))
	for i := range staticPCGTbl {
		staticPCGTbl[i] = float32(rng.Float64())
	}
}

// StaticHaltonSeq reads from a process-wide, shuffled Halton table filled
// once via sync.Once, advancing its own per-instance counter with a
// lock-free atomic fetch-add; unlike HaltonSeq it has no pass window and
// never returns a sentinel (spec.md §4.2).
type StaticHaltonSeq struct {
	counter uint64
}

// NewStaticHaltonSeq builds a StaticHaltonSeq, filling the shared table
// on first use.
func NewStaticHaltonSeq() *StaticHaltonSeq {
	staticHaltonOnce.Do(fillStaticHalton)
	return &StaticHaltonSeq{}
}

// Next returns the next value from the shared table.
func (s *StaticHaltonSeq) Next() float32 {
	i := atomic.AddUint64(&s.counter, 1) - 1
	return staticHaltonTbl[i&staticTableMask]
}

// Reset restarts this instance's position in the shared table.
func (s *StaticHaltonSeq) Reset() { atomic.StoreUint64(&s.counter, 0) }

var _ core.Sampler = (*StaticHaltonSeq)(nil)

// StaticMersenneTwister reads from a process-wide table filled once via
// sync.Once from a seeded math/rand source, the same generator
// MersenneTwister uses (spec.md §4.2).
type StaticMersenneTwister struct {
	counter uint64
}

// NewStaticMersenneTwister builds a StaticMersenneTwister, filling the
// shared table on first use.
func NewStaticMersenneTwister() *StaticMersenneTwister {
	staticMersenneOnce.Do(fillStaticMersenne)
	return &StaticMersenneTwister{}
}

// Next returns the next value from the shared table.
func (s *StaticMersenneTwister) Next() float32 {
	i := atomic.AddUint64(&s.counter, 1) - 1
	return staticMersenneTbl[i&staticTableMask]
}

// Reset restarts this instance's position in the shared table.
func (s *StaticMersenneTwister) Reset() { atomic.StoreUint64(&s.counter, 0) }

var _ core.Sampler = (*StaticMersenneTwister)(nil)

// StaticPCG reads from a process-wide PCG table filled once via
// sync.Once (spec.md §4.2).
type StaticPCG struct {
	counter uint64
}

// NewStaticPCG builds a StaticPCG, filling the shared table on first use.
func NewStaticPCG() *StaticPCG {
	staticPCGOnce.Do(fillStaticPCG)
	return &StaticPCG{}
}

// Next returns the next value from the shared table.
func (s *StaticPCG) Next() float32 {
	i := atomic.AddUint64(&s.counter, 1) - 1
	return staticPCGTbl[i&staticTableMask]
}

// Reset restarts this instance's position in the shared table.
func (s *StaticPCG) Reset() { atomic.StoreUint64(&s.counter, 0) }

var _ core.Sampler = (*StaticPCG)(nil)

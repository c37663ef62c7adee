// Package sampler implements the pluggable scalar random sources of
// spec.md §4.2: a constant source, live HaltonSeq/MersenneTwister/PCG
// samplers, and process-wide pre-filled "static" variants of each.
// Every exported type satisfies core.Sampler and is safe to call Next()
// on from many goroutines at once, since a single Sampler instance (an
// AreaLight's, for example) is shared read-only across all render
// workers.
package sampler

import "mobilert/pkg/core"

// Constant always returns the same value (spec.md §4.2).
type Constant struct {
	Value float32
}

// NewConstant builds a Constant sampler.
func NewConstant(v float32) *Constant { return &Constant{Value: v} }

// Next returns the constant value.
func (c *Constant) Next() float32 { return c.Value }

// Reset is a no-op.
func (c *Constant) Reset() {}

var _ core.Sampler = (*Constant)(nil)

// Package accelerator implements the three spatial pruning strategies of
// spec.md §4.4: Naive (the oracle), RegularGrid (Amanatides-Woo 3DDDA)
// and BVH (flat-array, SAH-split, built one instance per primitive
// type). All three satisfy the same Accelerator contract so a shader can
// be built against whichever one a Config selects (spec.md §4.5).
package accelerator

import (
	"mobilert/pkg/core"
	"mobilert/pkg/scene"
)

// Accelerator is the common contract of spec.md §4.4: a nearest-hit
// trace and an any-hit shadow trace, both threading an Intersection
// through so repeated calls along a path only ever improve it.
type Accelerator interface {
	Trace(isect core.Intersection, ray core.Ray) core.Intersection
	ShadowTrace(isect core.Intersection, ray core.Ray) core.Intersection
}

// Naive iterates every primitive in the scene with no spatial pruning.
// It is the oracle other accelerators are checked against (spec.md
// §4.4.1, §8 "Accelerator agreement").
type Naive struct {
	Scene *scene.Scene
}

// NewNaive wraps s behind the Accelerator interface.
func NewNaive(s *scene.Scene) *Naive {
	return &Naive{Scene: s}
}

// Trace returns the nearest hit across every primitive in the scene.
func (n *Naive) Trace(isect core.Intersection, ray core.Ray) core.Intersection {
	return n.Scene.Trace(isect, ray)
}

// ShadowTrace exits on the first hit closer than the incoming
// intersection's length.
func (n *Naive) ShadowTrace(isect core.Intersection, ray core.Ray) core.Intersection {
	return n.Scene.ShadowTrace(isect, ray)
}

var _ Accelerator = (*Naive)(nil)

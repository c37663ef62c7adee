// Package scene implements the Scene container of spec.md §4.3: ordered
// primitive sequences, a deduplicated material table and the light list,
// plus the naive whole-scene trace/shadow_trace/trace_lights operations
// that accelerators build on top of.
package scene

import (
	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
	"mobilert/pkg/light"
)

// Scene owns all renderable geometry, the material table and the
// lights. It is populated by a loader, then read-only for the duration
// of rendering (spec.md §3).
type Scene struct {
	Triangles []geometry.Triangle
	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Materials []core.Material
	Lights    []light.Light
}

// New returns an empty Scene.
func New() *Scene {
	return &Scene{}
}

// AddMaterial inserts m, deduplicating against existing materials by
// Material.Equal, and returns its index. This is a linear scan rather
// than a hash-based dedup: per-scene material counts are small and
// float-epsilon equality does not hash cleanly (see SPEC_FULL.md,
// "Supplemented Features", grounded on the original's Scene::loadMaterial
// doing the same linear scan).
func (s *Scene) AddMaterial(m core.Material) int {
	for i, existing := range s.Materials {
		if existing.Equal(m) {
			return i
		}
	}
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddTriangle appends a triangle and returns its PrimitiveRef.
func (s *Scene) AddTriangle(t geometry.Triangle) core.PrimitiveRef {
	s.Triangles = append(s.Triangles, t)
	return core.PrimitiveRef{Kind: core.KindTriangle, Index: len(s.Triangles) - 1, Valid: true}
}

// AddSphere appends a sphere and returns its PrimitiveRef.
func (s *Scene) AddSphere(sp geometry.Sphere) core.PrimitiveRef {
	s.Spheres = append(s.Spheres, sp)
	return core.PrimitiveRef{Kind: core.KindSphere, Index: len(s.Spheres) - 1, Valid: true}
}

// AddPlane appends a plane and returns its PrimitiveRef.
func (s *Scene) AddPlane(p geometry.Plane) core.PrimitiveRef {
	s.Planes = append(s.Planes, p)
	return core.PrimitiveRef{Kind: core.KindPlane, Index: len(s.Planes) - 1, Valid: true}
}

// AddLight appends a light, which owns its identity (unique owner,
// spec.md §3).
func (s *Scene) AddLight(l light.Light) {
	s.Lights = append(s.Lights, l)
}

// Material returns the material at index idx, or the zero Material if
// idx is out of range (MaterialIndex == -1 meaning "no material").
func (s *Scene) Material(idx int) core.Material {
	if idx < 0 || idx >= len(s.Materials) {
		return core.Material{}
	}
	return s.Materials[idx]
}

// PrimitiveCount returns the total number of primitives across all
// three kinds.
func (s *Scene) PrimitiveCount() int {
	return len(s.Triangles) + len(s.Spheres) + len(s.Planes)
}

// Trace walks every primitive in the scene (triangles, spheres, planes)
// and returns the nearest hit, if any, on top of the incoming
// intersection (spec.md §4.3). This is the naive, unaccelerated
// traversal; package accelerator's Naive accelerator wraps this same
// logic behind the common Accelerator interface.
func (s *Scene) Trace(isect core.Intersection, ray core.Ray) core.Intersection {
	for i := range s.Triangles {
		s.Triangles[i].Intersect(ray, &isect, core.PrimitiveRef{Kind: core.KindTriangle, Index: i, Valid: true})
	}
	for i := range s.Spheres {
		s.Spheres[i].Intersect(ray, &isect, core.PrimitiveRef{Kind: core.KindSphere, Index: i, Valid: true})
	}
	for i := range s.Planes {
		s.Planes[i].Intersect(ray, &isect, core.PrimitiveRef{Kind: core.KindPlane, Index: i, Valid: true})
	}
	return isect
}

// ShadowTrace walks the scene looking only for any hit closer than the
// incoming intersection's length, exiting early on the first one found
// (spec.md §4.3, §4.4.1).
func (s *Scene) ShadowTrace(isect core.Intersection, ray core.Ray) core.Intersection {
	for i := range s.Triangles {
		if s.Triangles[i].Intersect(ray, &isect, core.PrimitiveRef{Kind: core.KindTriangle, Index: i, Valid: true}) {
			return isect
		}
	}
	for i := range s.Spheres {
		if s.Spheres[i].Intersect(ray, &isect, core.PrimitiveRef{Kind: core.KindSphere, Index: i, Valid: true}) {
			return isect
		}
	}
	for i := range s.Planes {
		if s.Planes[i].Intersect(ray, &isect, core.PrimitiveRef{Kind: core.KindPlane, Index: i, Valid: true}) {
			return isect
		}
	}
	return isect
}

// TraceLights runs only the light intersect passes: it asks each light
// to test its own geometry against the ray and returns the updated isect
// together with the light whose geometry became the closest hit (nil if
// none). isect is not given the light's emission; the caller reads it
// from the returned light (spec.md §4.3).
func (s *Scene) TraceLights(isect core.Intersection, ray core.Ray) (core.Intersection, light.Light) {
	var hitLight light.Light
	for _, l := range s.Lights {
		candidate := isect
		if l.Intersect(&candidate, ray) {
			isect = candidate
			hitLight = l
		}
	}
	return isect, hitLight
}

// Bounds returns the AABB union of every primitive in the scene, used
// by the grid and BVH builders (spec.md §4.3 "get_bounds<T>").
func (s *Scene) Bounds() core.AABB {
	first := true
	var box core.AABB
	accumulate := func(b core.AABB) {
		if first {
			box = b
			first = false
			return
		}
		box = box.Union(b)
	}
	for i := range s.Triangles {
		accumulate(s.Triangles[i].BoundingBox())
	}
	for i := range s.Spheres {
		accumulate(s.Spheres[i].BoundingBox())
	}
	for i := range s.Planes {
		accumulate(s.Planes[i].BoundingBox())
	}
	return box
}

package accelerator

import (
	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
	"mobilert/pkg/scene"
)

// SceneBVH holds one BVH per primitive type and presents them behind the
// single Accelerator contract a shader expects, merging the three
// per-type results the way spec.md §4.4.3 describes ("the shader merges
// their results") so a shader can treat BVH the same as Naive or
// RegularGrid without caring that it is internally three trees.
type SceneBVH struct {
	Triangles *BVH[geometry.Triangle]
	Spheres   *BVH[geometry.Sphere]
	Planes    *BVH[geometry.Plane]
}

// NewSceneBVH builds the three per-type BVHs from s.
func NewSceneBVH(s *scene.Scene) *SceneBVH {
	return &SceneBVH{
		Triangles: NewBVH(s.Triangles, core.KindTriangle),
		Spheres:   NewBVH(s.Spheres, core.KindSphere),
		Planes:    NewBVH(s.Planes, core.KindPlane),
	}
}

// Trace merges the nearest hit across all three per-type trees.
func (b *SceneBVH) Trace(isect core.Intersection, ray core.Ray) core.Intersection {
	isect = b.Triangles.Trace(isect, ray)
	isect = b.Spheres.Trace(isect, ray)
	isect = b.Planes.Trace(isect, ray)
	return isect
}

// ShadowTrace exits as soon as any of the three trees reports a hit
// closer than the incoming intersection's length.
func (b *SceneBVH) ShadowTrace(isect core.Intersection, ray core.Ray) core.Intersection {
	start := isect.Length
	isect = b.Triangles.ShadowTrace(isect, ray)
	if isect.Length < start {
		return isect
	}
	isect = b.Spheres.ShadowTrace(isect, ray)
	if isect.Length < start {
		return isect
	}
	return b.Planes.ShadowTrace(isect, ray)
}

var _ Accelerator = (*SceneBVH)(nil)

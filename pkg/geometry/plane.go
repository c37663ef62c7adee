package geometry

import (
	"github.com/chewxy/math32"

	"mobilert/pkg/core"
)

// planeParallelEpsilon rejects rays nearly parallel to the plane
// (spec.md §3).
const planeParallelEpsilon = 1e-6

// planeMinDistance rejects hits closer than this, avoiding
// self-intersection noise at the plane itself.
const planeMinDistance = 1e-5

// planeAABBExtent bounds the plane's AABB to a large but finite box,
// since an infinite plane has no true bounding box (spec.md §3).
const planeAABBExtent = 100

// Plane is an infinite plane defined by a point and a unit normal
// (spec.md §3).
type Plane struct {
	Point       core.Vec3
	Normal      core.Vec3
	MaterialIdx int
}

// NewPlane builds a Plane, normalizing the supplied normal.
func NewPlane(point, normal core.Vec3, materialIdx int) Plane {
	return Plane{Point: point, Normal: normal.Normalize(), MaterialIdx: materialIdx}
}

// BoundingBox returns a bounded approximation of the plane's extent:
// ±100 around the plane's point along the normal's dominant axis, and
// ±100 around the origin along the other two (spec.md §3).
func (p Plane) BoundingBox() core.AABB {
	const big = planeAABBExtent
	min := core.NewVec3(-big, -big, -big)
	max := core.NewVec3(big, big, big)

	// Center the box on the plane's point along the dominant normal axis.
	axis := 0
	maxComponent := math32.Abs(p.Normal.X)
	if math32.Abs(p.Normal.Y) > maxComponent {
		axis, maxComponent = 1, math32.Abs(p.Normal.Y)
	}
	if math32.Abs(p.Normal.Z) > maxComponent {
		axis = 2
	}
	switch axis {
	case 0:
		min.X, max.X = p.Point.X-big, p.Point.X+big
	case 1:
		min.Y, max.Y = p.Point.Y-big, p.Point.Y+big
	default:
		min.Z, max.Z = p.Point.Z-big, p.Point.Z+big
	}
	return core.NewAABB(min, max)
}

// Intersect solves the ray/plane equation, rejecting rays nearly
// parallel to the plane and hits below planeMinDistance or beyond the
// current best length (spec.md §3).
func (p Plane) Intersect(ray core.Ray, isect *core.Intersection, ref core.PrimitiveRef) bool {
	if ray.Source.Equal(ref) {
		return false
	}

	denom := ray.Direction.Dot(p.Normal)
	if math32.Abs(denom) < planeParallelEpsilon {
		return false
	}

	dist := p.Point.Sub(ray.Origin).Dot(p.Normal) / denom
	if dist < planeMinDistance || dist >= isect.Length {
		return false
	}

	isect.Length = dist
	isect.Point = ray.At(dist)
	isect.Normal = p.Normal
	isect.UV = core.Vec2{}
	isect.MaterialIndex = p.MaterialIdx
	isect.Primitive = ref
	return true
}

// IntersectAABB reports whether the plane's bounded AABB overlaps box.
func (p Plane) IntersectAABB(box core.AABB) bool {
	return aabbOverlap(p.BoundingBox(), box)
}

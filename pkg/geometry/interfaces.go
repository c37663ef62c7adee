package geometry

import "mobilert/pkg/core"

// Primitive is the common contract Triangle, Sphere and Plane satisfy:
// a ray test that only ever improves isect (never discards a better
// existing hit) and an AABB overlap test used by the grid builder and
// the BVH's SAH partitioning (spec.md §3). Accelerators that need
// homogeneous dispatch across primitive kinds (the Naive accelerator,
// the grid traversal's per-cell scan) go through this interface; the BVH
// builds one instance per primitive type instead, to keep its inner loop
// free of interface dispatch (spec.md §4.4.3).
type Primitive interface {
	Intersect(ray core.Ray, isect *core.Intersection, ref core.PrimitiveRef) bool
	IntersectAABB(box core.AABB) bool
	BoundingBox() core.AABB
}

var (
	_ Primitive = Triangle{}
	_ Primitive = Sphere{}
	_ Primitive = Plane{}
)

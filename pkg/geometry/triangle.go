// Package geometry implements the three primitive shapes MobileRT-Go
// traces against — Triangle, Sphere and Plane — plus the AABB/ray
// intersection math each needs to serve the accelerators in package
// accelerator (spec.md §3, §4.4).
package geometry

import (
	"github.com/chewxy/math32"

	"mobilert/pkg/core"
)

// moellerTrumboreEpsilon rejects rays nearly parallel to the triangle's
// plane (spec.md §3).
const moellerTrumboreEpsilon = 1e-6

// Triangle is stored as a base vertex plus two edge vectors (A, AB, AC)
// rather than three vertices, matching spec.md §3 exactly so the
// Möller-Trumbore test below can reuse AB/AC without recomputing them
// per ray.
type Triangle struct {
	A, AB, AC     core.Vec3
	NA, NB, NC    core.Vec3 // per-vertex normals (defaulted if HasNormals is false)
	HasNormals    bool
	UVA, UVB, UVC core.Vec2
	HasUVs        bool
	MaterialIdx   int
	bbox          core.AABB
}

// NewTriangle builds a triangle from three vertices and a material
// index, defaulting the normal to normalize(cross(AC, AB)) per spec.md §3.
func NewTriangle(a, b, c core.Vec3, materialIdx int) Triangle {
	ab := b.Sub(a)
	ac := c.Sub(a)
	t := Triangle{A: a, AB: ab, AC: ac, MaterialIdx: materialIdx}
	t.bbox = core.NewAABBFromPoints(a, b, c)
	return t
}

// WithNormals attaches explicit per-vertex normals.
func (t Triangle) WithNormals(na, nb, nc core.Vec3) Triangle {
	t.NA, t.NB, t.NC = na.Normalize(), nb.Normalize(), nc.Normalize()
	t.HasNormals = true
	return t
}

// WithUVs attaches explicit per-vertex texture coordinates.
func (t Triangle) WithUVs(uva, uvb, uvc core.Vec2) Triangle {
	t.UVA, t.UVB, t.UVC = uva, uvb, uvc
	t.HasUVs = true
	return t
}

func (t Triangle) defaultNormal() core.Vec3 {
	return t.AC.Cross(t.AB).Normalize()
}

// B and C reconstruct the triangle's second and third vertex.
func (t Triangle) B() core.Vec3 { return t.A.Add(t.AB) }
func (t Triangle) C() core.Vec3 { return t.A.Add(t.AC) }

// BoundingBox returns the triangle's cached AABB.
func (t Triangle) BoundingBox() core.AABB { return t.bbox }

// Intersect performs the Möller-Trumbore ray/triangle test, updating
// isect in place when this triangle is the closest hit found so far
// (spec.md §3, §4.3). ref is this triangle's stable identity, used both
// to suppress self-intersection and to stamp the winning hit.
func (t Triangle) Intersect(ray core.Ray, isect *core.Intersection, ref core.PrimitiveRef) bool {
	if ray.Source.Equal(ref) {
		return false
	}

	pVec := ray.Direction.Cross(t.AC)
	det := t.AB.Dot(pVec)
	if math32.Abs(det) < moellerTrumboreEpsilon {
		return false
	}
	invDet := 1 / det

	tVec := ray.Origin.Sub(t.A)
	u := tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return false
	}

	qVec := tVec.Cross(t.AB)
	v := ray.Direction.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return false
	}

	dist := t.AC.Dot(qVec) * invDet
	if dist <= 0 || dist >= isect.Length {
		return false
	}

	w := 1 - u - v
	normal := t.defaultNormal()
	if t.HasNormals {
		normal = t.NA.Scale(w).Add(t.NB.Scale(u)).Add(t.NC.Scale(v)).Normalize()
	}
	uv := core.NewVec2(u, v)
	if t.HasUVs {
		uv = t.UVA.Scale(w).Add(t.UVB.Scale(u)).Add(t.UVC.Scale(v))
	}

	isect.Length = dist
	isect.Point = ray.At(dist)
	isect.Normal = normal
	isect.UV = uv
	isect.MaterialIndex = t.MaterialIdx
	isect.Primitive = ref
	return true
}

// IntersectAABB reports whether the triangle overlaps box, used by the
// regular grid builder and the BVH's SAH partitioning (spec.md §3). It
// conservatively uses the triangle's own AABB against box — sufficient
// for a bounding-volume acceleration structure that only needs a
// superset of true overlaps.
func (t Triangle) IntersectAABB(box core.AABB) bool {
	return aabbOverlap(t.bbox, box)
}

func aabbOverlap(a, b core.AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

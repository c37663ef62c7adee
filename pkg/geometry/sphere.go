package geometry

import (
	"github.com/chewxy/math32"

	"mobilert/pkg/core"
)

// sphereMinDistance is the minimum accepted root distance for a sphere
// hit, rejecting roots so close to the origin they are numerically
// unreliable (spec.md §3).
const sphereMinDistance = 1e-5

// Sphere is stored as a center and squared radius, per spec.md §3.
type Sphere struct {
	Center      core.Vec3
	RadiusSq    float32
	MaterialIdx int
}

// NewSphere builds a Sphere from a center, radius and material index.
func NewSphere(center core.Vec3, radius float32, materialIdx int) Sphere {
	return Sphere{Center: center, RadiusSq: radius * radius, MaterialIdx: materialIdx}
}

// Radius returns the sphere's radius.
func (s Sphere) Radius() float32 { return math32.Sqrt(s.RadiusSq) }

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius(), s.Radius(), s.Radius())
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Intersect solves the closed-form ray/sphere quadratic, rejecting a
// negative discriminant or a smaller positive root below
// sphereMinDistance or beyond the current best length (spec.md §3). The
// outward normal is normalize(P - C).
func (s Sphere) Intersect(ray core.Ray, isect *core.Intersection, ref core.PrimitiveRef) bool {
	if ray.Source.Equal(ref) {
		return false
	}

	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.RadiusSq

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math32.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < sphereMinDistance || root >= isect.Length {
		root = (-halfB + sqrtD) / a
		if root < sphereMinDistance || root >= isect.Length {
			return false
		}
	}

	point := ray.At(root)
	normal := point.Sub(s.Center).Scale(1 / s.Radius())

	isect.Length = root
	isect.Point = point
	isect.Normal = normal
	isect.UV = sphereUV(normal)
	isect.MaterialIndex = s.MaterialIdx
	isect.Primitive = ref
	return true
}

func sphereUV(n core.Vec3) core.Vec2 {
	theta := math32.Acos(core.Clamp(-n.Y, -1, 1))
	phi := math32.Atan2(-n.Z, n.X) + math32.Pi
	return core.NewVec2(phi/(2*math32.Pi), theta/math32.Pi)
}

// IntersectAABB reports whether the sphere overlaps box.
func (s Sphere) IntersectAABB(box core.AABB) bool {
	closest := core.Vec3{
		X: core.Clamp(s.Center.X, box.Min.X, box.Max.X),
		Y: core.Clamp(s.Center.Y, box.Min.Y, box.Max.Y),
		Z: core.Clamp(s.Center.Z, box.Min.Z, box.Max.Z),
	}
	d := closest.Sub(s.Center)
	return d.Dot(d) <= s.RadiusSq
}

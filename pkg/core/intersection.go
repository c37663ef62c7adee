package core

import "github.com/chewxy/math32"

// InfDistance is the +Inf sentinel an Intersection's Length is
// initialized to before any primitive has been tested against it.
var InfDistance = float32(math32.Inf(1))

// Intersection records the result of testing a Ray against scene
// geometry. Its Length is a parametric distance along the owning Ray;
// MaterialIndex is -1 and Primitive is the zero PrimitiveRef until a
// primitive reports a closer hit (spec.md §3).
type Intersection struct {
	Ray           Ray
	Point         Vec3
	Normal        Vec3
	Length        float32
	MaterialIndex int
	UV            Vec2
	Primitive     PrimitiveRef
}

// NewIntersection creates the initial, empty intersection state for a
// ray query: no material, no primitive, distance at +Inf.
func NewIntersection(ray Ray) Intersection {
	return Intersection{
		Ray:           ray,
		Length:        InfDistance,
		MaterialIndex: -1,
	}
}

// Hit reports whether this intersection recorded an actual primitive hit.
func (i Intersection) Hit() bool {
	return i.MaterialIndex >= 0 || i.Primitive.Valid
}

// IsCoherent checks the "intersection coherence" invariant of spec.md §8:
// a recorded hit has positive length and a unit-length normal.
func (i Intersection) IsCoherent(tolerance float32) bool {
	if !i.Hit() {
		return true
	}
	return i.Length > 0 && i.Normal.IsUnit(tolerance)
}

package camera

import "mobilert/pkg/core"

// Orthographic generates parallel rays over a fixed-size viewing
// rectangle (spec.md §4.1).
type Orthographic struct {
	Frame
	SizeH float32
	SizeV float32
}

// NewOrthographic builds an Orthographic camera.
func NewOrthographic(position, lookAt, up core.Vec3, sizeH, sizeV float32) *Orthographic {
	return &Orthographic{Frame: NewFrame(position, lookAt, up), SizeH: sizeH, SizeV: sizeV}
}

// GenerateRay offsets the ray origin across the viewing rectangle; every
// ray shares the camera's direction (spec.md §4.1).
func (o *Orthographic) GenerateRay(u, v, du, dv float32) core.Ray {
	origin := o.Position.
		Add(o.Right.Scale((u-0.5)*o.SizeH + du)).
		Add(o.Up.Scale((0.5-v)*o.SizeV + dv))

	return core.NewRayFrom(origin, o.Direction, core.NilPrimitiveRef, 1)
}

// AABB returns the degenerate box at the camera's eye point.
func (o *Orthographic) AABB() core.AABB {
	return core.NewAABB(o.Position, o.Position)
}

var _ Camera = (*Orthographic)(nil)

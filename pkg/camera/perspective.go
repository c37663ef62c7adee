package camera

import "mobilert/pkg/core"

// Perspective generates rays through a field-of-view pinhole model
// (spec.md §4.1).
type Perspective struct {
	Frame
	HFov float32 // radians
	VFov float32 // radians
}

// NewPerspective builds a Perspective camera. hFov and vFov are in
// radians.
func NewPerspective(position, lookAt, up core.Vec3, hFov, vFov float32) *Perspective {
	return &Perspective{Frame: NewFrame(position, lookAt, up), HFov: hFov, VFov: vFov}
}

// GenerateRay builds a primary ray for pixel coordinates u,v in [0,1]
// with jitters du,dv in [-0.5/W, 0.5/W]^2, using the fast_atan
// approximation in place of a true arctangent (spec.md §4.1, §9
// "Design Notes" — the approximation is intentional, not a shortcut, so
// rendered images stay reproducible against the original engine).
func (p *Perspective) GenerateRay(u, v, du, dv float32) core.Ray {
	rx := core.FastAtan(p.HFov*(u-0.5)) + du
	ry := core.FastAtan(p.VFov*(0.5-v)) + dv

	dest := p.Position.Add(p.Direction).Add(p.Right.Scale(rx)).Add(p.Up.Scale(ry))
	direction := dest.Sub(p.Position).Normalize()

	return core.NewRayFrom(p.Position, direction, core.NilPrimitiveRef, 1)
}

// AABB returns the degenerate box at the camera's eye point.
func (p *Perspective) AABB() core.AABB {
	return core.NewAABB(p.Position, p.Position)
}

var _ Camera = (*Perspective)(nil)

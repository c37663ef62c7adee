// Package camera implements the two primary-ray generation models of
// spec.md §4.1: Perspective and Orthographic, both built on a shared
// left-handed orthonormal frame.
package camera

import (
	"mobilert/pkg/core"
)

// Camera is the common contract a Renderer drives: generate a primary
// ray for a jittered pixel coordinate, and report the camera's own
// bounding point for scene-bounds computations (spec.md §4.1).
type Camera interface {
	GenerateRay(u, v, du, dv float32) core.Ray
	AABB() core.AABB
}

// Frame is the left-handed orthonormal basis shared by every camera
// variant: direction points from the eye toward lookAt, right and up
// complete the basis (spec.md §4.1).
type Frame struct {
	Position  core.Vec3
	Direction core.Vec3
	Right     core.Vec3
	Up        core.Vec3
}

// NewFrame builds the frame from the camera's position, look-at point
// and an input up vector. Per spec.md §4.1 this is a left-handed basis:
// right = cross(up_input, direction), up = cross(direction, right).
func NewFrame(position, lookAt, upInput core.Vec3) Frame {
	direction := lookAt.Sub(position).Normalize()
	right := upInput.Cross(direction).Normalize()
	up := direction.Cross(right).Normalize()
	return Frame{Position: position, Direction: direction, Right: right, Up: up}
}

package shader

import "mobilert/pkg/core"

// shadeDepthMap implements spec.md §4.5.4: a grayscale visualization of
// hit distance, replicated to RGB.
func (s *Shader) shadeDepthMap(isect core.Intersection) core.Vec3 {
	if s.maxDist <= 0 {
		return core.Vec3{}
	}
	v := core.Clamp((s.maxDist-isect.Length)/s.maxDist, 0, 1)
	return core.NewVec3(v, v, v)
}

// MaxDistFromBounds computes DepthMap's maxDist scalar: the distance
// from rayOrigin to the scene bounds' Max corner, scaled by 1.1
// (spec.md §4.5.4).
func MaxDistFromBounds(bounds core.AABB, rayOrigin core.Vec3) float32 {
	maxPoint := bounds.Max
	return maxPoint.Sub(rayOrigin).Length() * 1.1
}

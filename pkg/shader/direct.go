package shader

import "mobilert/pkg/core"

// directLighting averages samplesLight picks of a random light, accumulating
// emission*cosine when the light is on the correct side of the surface
// (spec.md §4.5.1). withShadowRays gates each pick behind a shadow test
// (spec.md §4.5.2); NoShadows passes false, Whitted and PathTracer pass
// true.
func (s *Shader) directLighting(isect core.Intersection, withShadowRays bool, sampler core.Sampler) core.Vec3 {
	sum := core.Vec3{}
	for i := 0; i < s.SamplesLight; i++ {
		pos, emission, ok := s.pickLightPosition(sampler)
		if !ok {
			continue
		}
		toLight := pos.Sub(isect.Point).Normalize()
		cosine := isect.Normal.Dot(toLight)
		if cosine <= 0 {
			continue
		}
		if withShadowRays && s.ShadowTrace(isect.Point, pos, isect.Primitive) {
			continue
		}
		sum = sum.Add(emission.Scale(cosine))
	}
	return sum.Scale(1 / float32(s.SamplesLight))
}

package shader

import "mobilert/pkg/core"

// shadeNoShadows implements spec.md §4.5.1: terminal emission, else
// direct lighting (no shadow rays) scaled by Kd plus an ambient term.
func (s *Shader) shadeNoShadows(isect core.Intersection, sampler core.Sampler) (core.Vec3, bool) {
	mat := s.material(isect)
	if mat.IsLight() {
		return mat.Le, true
	}

	direct := s.directLighting(isect, false, sampler)
	kd := mat.DiffuseColor(isect.UV)
	color := direct.Mul(kd).Add(kd.Scale(ambientFactor))
	return color, false
}

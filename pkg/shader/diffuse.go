package shader

import "mobilert/pkg/core"

// shadeDiffuseMaterial implements spec.md §4.5.5: returns the first
// non-zero of {Kd, Ks, Kt, Le}, used for material visualization rather
// than physically meaningful shading.
func (s *Shader) shadeDiffuseMaterial(isect core.Intersection) core.Vec3 {
	mat := s.material(isect)
	if nonZero(mat.Kd) {
		return mat.Kd
	}
	if nonZero(mat.Ks) {
		return mat.Ks
	}
	if nonZero(mat.Kt) {
		return mat.Kt
	}
	return mat.Le
}

func nonZero(v core.Vec3) bool {
	return v.X > 0 || v.Y > 0 || v.Z > 0
}

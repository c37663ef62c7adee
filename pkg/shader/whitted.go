package shader

import "mobilert/pkg/core"

// shadeWhitted implements spec.md §4.5.2: bounded recursive ray tracing
// with shadow-ray direct lighting, plus deterministic specular
// reflection and transmission.
func (s *Shader) shadeWhitted(isect core.Intersection, ray core.Ray, sampler core.Sampler, depth int) (core.Vec3, bool) {
	if depth > RayDepthMax {
		return core.Vec3{}, false
	}

	mat := s.material(isect)
	if mat.IsLight() {
		return mat.Le, true
	}

	color := core.Vec3{}

	kd := mat.DiffuseColor(isect.UV)
	if kd.X > 0 || kd.Y > 0 || kd.Z > 0 {
		direct := s.directLighting(isect, true, sampler)
		color = color.Add(direct.Mul(kd)).Add(kd.Scale(ambientFactor))
	}

	if mat.Ks.X > 0 || mat.Ks.Y > 0 || mat.Ks.Z > 0 {
		reflected := core.Reflect(ray.Direction, isect.Normal)
		reflectRay := core.NewRayFrom(isect.Point, reflected, isect.Primitive, depth+1)
		reflColor, _ := s.traceAndShade(reflectRay, sampler, depth+1)
		color = color.Add(mat.Ks.Mul(reflColor))
	}

	if mat.Kt.X > 0 || mat.Kt.Y > 0 || mat.Kt.Z > 0 {
		etaRatio := float32(1) / mat.RefractiveIdx
		refracted, ok := core.Refract(ray.Direction, isect.Normal, etaRatio)
		if ok {
			refractRay := core.NewRayFrom(isect.Point, refracted, isect.Primitive, depth+1)
			refrColor, _ := s.traceAndShade(refractRay, sampler, depth+1)
			color = color.Add(mat.Kt.Mul(refrColor))
		}
	}

	return color, false
}

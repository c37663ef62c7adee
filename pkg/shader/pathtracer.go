package shader

import "mobilert/pkg/core"

// shadePathTracer implements spec.md §4.5.3: direct lighting as Whitted,
// plus one cosine-weighted indirect sample with russian-roulette
// termination below RayDepthMax and unconditional continuation below
// RayDepthMin.
func (s *Shader) shadePathTracer(isect core.Intersection, ray core.Ray, sampler core.Sampler, depth int) (core.Vec3, bool) {
	if depth > RayDepthMax {
		return core.Vec3{}, false
	}

	mat := s.material(isect)
	if mat.IsLight() {
		return mat.Le, true
	}

	color := core.Vec3{}
	directContributed := false

	kd := mat.DiffuseColor(isect.UV)
	if kd.X > 0 || kd.Y > 0 || kd.Z > 0 {
		direct := s.directLighting(isect, true, sampler)
		if direct.X > 0 || direct.Y > 0 || direct.Z > 0 {
			directContributed = true
		}
		color = color.Add(direct.Mul(kd))

		continueRR := true
		if depth > RayDepthMin {
			continueRR = sampler.Next() < rrContinueProbability
		}
		if continueRR {
			indirectDir := sampleHemisphere(isect.Normal, sampler)
			indirectRay := core.NewRayFrom(isect.Point, indirectDir, isect.Primitive, depth+1)
			indirectColor, hitLight := s.traceAndShade(indirectRay, sampler, depth+1)
			if hitLight && directContributed {
				// avoid double-counting light already reached directly
			} else {
				indirect := indirectColor.Mul(kd)
				if depth > RayDepthMin {
					indirect = indirect.Scale(1 / (rrContinueProbability * 0.5))
				}
				color = color.Add(indirect)
			}
		}
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

// Package shader implements the five light-transport shaders of
// spec.md §4.5: NoShadows, Whitted, PathTracer, DepthMap and
// DiffuseMaterial. Per spec.md §9 ("Design Notes"), the five variants are
// expressed as one Kind enum plus a single dispatch function rather than
// five interface implementations, matching the same tagged-variant
// treatment used for primitives elsewhere in this module (lights, by
// contrast, are the small light.Light interface).
package shader

import (
	"mobilert/pkg/accelerator"
	"mobilert/pkg/core"
	"mobilert/pkg/scene"
)

// Kind selects which of the five shading models Shade dispatches to.
type Kind int

const (
	NoShadows Kind = iota
	Whitted
	PathTracer
	DepthMap
	DiffuseMaterial
)

// RayDepthMax bounds Whitted and PathTracer recursion (spec.md §4.5.2).
const RayDepthMax = 6

// RayDepthMin is the bounce count below which PathTracer's russian
// roulette always continues (spec.md §4.5.3).
const RayDepthMin = 4

// rrContinueProbability is PathTracer's russian-roulette survival
// probability once depth exceeds RayDepthMin (spec.md §4.5.3).
const rrContinueProbability = 0.5

// shadowEpsilon nudges a shadow ray's target distance so a light exactly
// at the surface doesn't self-shadow from float rounding.
const shadowEpsilon = 1e-4

// ambientFactor scales Kd for the ambient term NoShadows and Whitted add
// on top of direct lighting (spec.md §4.5.1).
const ambientFactor = 0.1

// Shader holds everything every variant needs: the scene (for materials
// and lights), the chosen accelerator, the variant tag, and the
// per-light sample count from Config (spec.md §4.5). maxDist is only
// used by DepthMap.
type Shader struct {
	Kind         Kind
	Scene        *scene.Scene
	Accel        accelerator.Accelerator
	SamplesLight int
	maxDist      float32
}

// New builds a Shader. maxDist is the DepthMap normalization distance
// (spec.md §4.5.4); it is ignored by every other variant.
func New(kind Kind, s *scene.Scene, accel accelerator.Accelerator, samplesLight int, maxDist float32) *Shader {
	if samplesLight < 1 {
		samplesLight = 1
	}
	return &Shader{Kind: kind, Scene: s, Accel: accel, SamplesLight: samplesLight, maxDist: maxDist}
}

// RayTrace is the shader's public contract (spec.md §4.5): trace ray
// against the chosen accelerator, then dispatch to the variant's shade
// function. Returns the computed radiance and whether the ray landed on
// an emissive light.
func (s *Shader) RayTrace(ray core.Ray, sampler core.Sampler) (core.Vec3, bool) {
	return s.traceAndShade(ray, sampler, 1)
}

// traceAndShade traces ray through the accelerator and dispatches to the
// variant's shade function at the given recursion depth. Whitted and
// PathTracer use this for their reflected/refracted/indirect rays;
// RayTrace is just this called at depth 1 against a fresh primary ray.
func (s *Shader) traceAndShade(ray core.Ray, sampler core.Sampler, depth int) (core.Vec3, bool) {
	isect := core.NewIntersection(ray)
	isect = s.Accel.Trace(isect, ray)

	lightIsect, hitLight := s.Scene.TraceLights(isect, ray)
	if hitLight != nil && lightIsect.Length < isect.Length {
		return hitLight.Emission(), true
	}
	if !isect.Hit() {
		return core.Vec3{}, false
	}

	return s.shade(isect, ray, sampler, depth)
}

// ShadowTrace reports whether a ray toward a light sample is blocked by
// any closer geometry.
func (s *Shader) ShadowTrace(point, target core.Vec3, source core.PrimitiveRef) bool {
	toLight := target.Sub(point)
	dist := toLight.Length()
	if dist <= 0 {
		return false
	}
	ray := core.NewShadowRay(point, toLight, source)
	isect := core.NewIntersection(ray)
	isect.Length = dist - shadowEpsilon
	result := s.Accel.ShadowTrace(isect, ray)
	return result.Length < dist-shadowEpsilon
}

// shade dispatches by s.Kind to the variant's shading function.
func (s *Shader) shade(isect core.Intersection, ray core.Ray, sampler core.Sampler, depth int) (core.Vec3, bool) {
	switch s.Kind {
	case NoShadows:
		return s.shadeNoShadows(isect, sampler)
	case Whitted:
		return s.shadeWhitted(isect, ray, sampler, depth)
	case PathTracer:
		return s.shadePathTracer(isect, ray, sampler, depth)
	case DepthMap:
		return s.shadeDepthMap(isect), false
	case DiffuseMaterial:
		return s.shadeDiffuseMaterial(isect), false
	default:
		return core.Vec3{}, false
	}
}

// material looks up the hit's material.
func (s *Shader) material(isect core.Intersection) core.Material {
	return s.Scene.Material(isect.MaterialIndex)
}

// pickLightPosition selects a light via spec.md §4.5.5's "light index
// selection" rule and samples a position on it.
func (s *Shader) pickLightPosition(sampler core.Sampler) (core.Vec3, core.Vec3, bool) {
	lights := s.Scene.Lights
	if len(lights) == 0 {
		return core.Vec3{}, core.Vec3{}, false
	}
	idx := int(sampler.Next() * float32(len(lights)) * 0.99999)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(lights) {
		idx = len(lights) - 1
	}
	light := lights[idx]
	pos := light.SamplePosition(sampler)
	return pos, light.Emission(), true
}

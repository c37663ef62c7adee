// Package light implements the two light variants of spec.md §3:
// PointLight and AreaLight. Both satisfy the same capability set
// (sample a position, reset any internal sampling state, and test
// whether a ray hits the light's own geometry) so shaders can treat a
// scene's lights uniformly.
package light

import (
	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
)

// Light is the polymorphic capability set of spec.md §3: sample a point
// on the light's surface, reset per-pass sampling state, and test a ray
// against the light's own geometry (used by Scene.TraceLights).
type Light interface {
	SamplePosition(sampler core.Sampler) core.Vec3
	ResetSampling()
	Intersect(isect *core.Intersection, ray core.Ray) bool
	Emission() core.Vec3
}

// PointLight is a fixed-position light with no sampling state
// (spec.md §3).
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight builds a PointLight.
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// SamplePosition always returns the light's fixed position.
func (p *PointLight) SamplePosition(core.Sampler) core.Vec3 { return p.Position }

// ResetSampling is a no-op: a point light has no sampling state to reset.
func (p *PointLight) ResetSampling() {}

// Intersect never hits: a point light has no surface to trace against.
func (p *PointLight) Intersect(*core.Intersection, core.Ray) bool { return false }

// Emission returns the light's intensity.
func (p *PointLight) Emission() core.Vec3 { return p.Intensity }

// AreaLight is a triangular emitter: three vertices plus an owned
// Sampler used to draw its surface position (spec.md §3).
type AreaLight struct {
	Triangle  geometry.Triangle
	Sampler   core.Sampler
	Intensity core.Vec3
}

// NewAreaLight builds an AreaLight over the triangle (a, ab, ac) with the
// given emission and an owned position sampler.
func NewAreaLight(a, ab, ac core.Vec3, intensity core.Vec3, sampler core.Sampler) *AreaLight {
	return &AreaLight{
		Triangle:  geometry.Triangle{A: a, AB: ab, AC: ac},
		Sampler:   sampler,
		Intensity: intensity,
	}
}

// SamplePosition draws two uniform values (R, S) from the light's owned
// Sampler (from sampler when the light owns none), folds them into the
// triangle when R+S >= 1, and returns A + R*AB + S*AC (spec.md §3).
func (l *AreaLight) SamplePosition(sampler core.Sampler) core.Vec3 {
	if l.Sampler != nil {
		sampler = l.Sampler
	}
	r := sampler.Next()
	s := sampler.Next()
	if r+s >= 1 {
		r, s = 1-r, 1-s
	}
	return l.Triangle.A.Add(l.Triangle.AB.Scale(r)).Add(l.Triangle.AC.Scale(s))
}

// ResetSampling resets the light's owned sampler.
func (l *AreaLight) ResetSampling() {
	if l.Sampler != nil {
		l.Sampler.Reset()
	}
}

// Intersect defers to the light's triangle; a caller (Scene.TraceLights)
// uses the boolean result to pick the light whose Emission the shader
// then returns (spec.md §3).
func (l *AreaLight) Intersect(isect *core.Intersection, ray core.Ray) bool {
	return l.Triangle.Intersect(ray, isect, core.NilPrimitiveRef)
}

// Emission returns the light's emitted radiance.
func (l *AreaLight) Emission() core.Vec3 { return l.Intensity }

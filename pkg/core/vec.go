// Package core holds the data model shared by every other MobileRT-Go
// package: vectors, rays, materials, textures, intersections, AABBs and
// the Sampler and Logger interfaces. The scene container and the light
// variants live in packages scene and light. It has no dependency on
// geometry, accelerators or shaders so that all of those can depend on
// it freely.
package core

import "github.com/chewxy/math32"

// Vec2 is a two-component 32-bit float vector, used for texture coordinates.
type Vec2 struct {
	U, V float32
}

// NewVec2 builds a Vec2.
func NewVec2(u, v float32) Vec2 { return Vec2{U: u, V: v} }

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.U + o.U, v.V + o.V} }

// Scale returns the vector scaled by a scalar.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.U * s, v.V * s} }

// Vec3 is a three-component 32-bit float vector used throughout the
// renderer for points, directions and colors.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 builds a Vec3.
func NewVec3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the component-wise product of two vectors.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns the negated vector.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// LengthSquared returns the squared length, avoiding the sqrt.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1.0 / length)
}

// IsUnit reports whether the vector has unit length within tolerance,
// used by tests enforcing the "ray normalization" and "intersection
// coherence" invariants.
func (v Vec3) IsUnit(tolerance float32) bool {
	l := v.Length()
	return math32.Abs(l-1) <= tolerance
}

// Min returns the component-wise minimum of two vectors.
func Min(a, b Vec3) Vec3 {
	return Vec3{math32.Min(a.X, b.X), math32.Min(a.Y, b.Y), math32.Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of two vectors.
func Max(a, b Vec3) Vec3 {
	return Vec3{math32.Max(a.X, b.X), math32.Max(a.Y, b.Y), math32.Max(a.Z, b.Z)}
}

// Reflect returns the reflection of direction d about the normal n; n is
// assumed to be unit length and to face against d.
func Reflect(d, n Vec3) Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// Refract returns the refracted direction of d through a surface with
// normal n and relative refractive index ratio (etaIncident/etaTransmit),
// plus false if the ray undergoes total internal reflection.
func Refract(d, n Vec3, etaRatio float32) (Vec3, bool) {
	unitD := d.Normalize()
	cosTheta := math32.Min(n.Neg().Dot(unitD), 1)
	sinTheta2 := 1 - cosTheta*cosTheta
	if etaRatio*etaRatio*sinTheta2 > 1 {
		return Vec3{}, false
	}
	rOutPerp := unitD.Add(n.Scale(cosTheta)).Scale(etaRatio)
	rOutParallel := n.Scale(-math32.Sqrt(math32.Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel), true
}

// Fresnel computes the Schlick approximation of the Fresnel reflectance
// for a surface with the given relative refractive index ratio and the
// cosine of the incident angle.
func Fresnel(cosTheta, etaRatio float32) float32 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 *= r0
	return r0 + (1-r0)*math32.Pow(1-cosTheta, 5)
}

package shader

import (
	"github.com/chewxy/math32"

	"mobilert/pkg/core"
)

// sampleHemisphere draws a cosine-weighted direction over the
// hemisphere around normal n, using the orthonormal frame construction
// of spec.md §4.5.5.
func sampleHemisphere(n core.Vec3, sampler core.Sampler) core.Vec3 {
	u1 := sampler.Next()
	u2 := sampler.Next()

	phi := 2 * math32.Pi * u1
	cosTheta := math32.Sqrt(u2)     // spec.md §4.5.5's "cosθ"
	nCoeff := math32.Sqrt(1 - u2)

	ref := core.NewVec3(1, 0, 0)
	if math32.Abs(n.X) > 0.1 {
		ref = core.NewVec3(0, 1, 0)
	}
	u := ref.Cross(n).Normalize()
	v := n.Cross(u)

	dir := u.Scale(math32.Cos(phi) * cosTheta).
		Add(v.Scale(math32.Sin(phi) * cosTheta)).
		Add(n.Scale(nCoeff))
	return dir.Normalize()
}

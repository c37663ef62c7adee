package core

import "github.com/chewxy/math32"

// epsilon is the tolerance used for float equality comparisons of
// material components (spec.md §3, "Equality is component-wise float
// equality within ε").
const epsilon = 1e-5

// Texture is a fixed-format RGB byte buffer sampled with nearest-neighbor
// lookup (spec.md §3). It is owned by a Material and never mutated after
// a loader populates it.
type Texture struct {
	Width, Height int
	Channels      int
	Data          []byte
}

// NewTexture allocates a texture of the given dimensions and channel
// count with a zeroed buffer.
func NewTexture(width, height, channels int) *Texture {
	return &Texture{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     make([]byte, width*height*channels),
	}
}

// Sample performs nearest-neighbor lookup at normalized coordinates
// (u, v) in [0, 1] and returns the color normalized to [0, 1] per
// channel, per spec.md §3:
// index = (floor(v*H)*W + floor(u*W)) * C
func (t *Texture) Sample(uv Vec2) Vec3 {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return Vec3{}
	}
	x := clampInt(int(uv.U*float32(t.Width)), 0, t.Width-1)
	y := clampInt(int(uv.V*float32(t.Height)), 0, t.Height-1)
	index := (y*t.Width + x) * t.Channels
	if index+2 >= len(t.Data) {
		return Vec3{}
	}
	const inv255 = 1.0 / 255.0
	return Vec3{
		X: float32(t.Data[index]) * inv255,
		Y: float32(t.Data[index+1]) * inv255,
		Z: float32(t.Data[index+2]) * inv255,
	}
}

// Equal compares two textures by dimensions only, matching spec.md §3
// ("texture equality by dimensions").
func (t *Texture) Equal(o *Texture) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Width == o.Width && t.Height == o.Height && t.Channels == o.Channels
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Material describes the Phong-like reflectance model of spec.md §3:
// diffuse (Kd), specular reflection (Ks), specular transmission (Kt),
// emission (Le) and a refractive index, with an optional diffuse
// texture.
type Material struct {
	Kd, Ks, Kt, Le Vec3
	RefractiveIdx  float32
	Texture        *Texture
}

// NewMaterial builds a Material with the default refractive index of 1.0.
func NewMaterial(kd, ks, kt, le Vec3) Material {
	return Material{Kd: kd, Ks: ks, Kt: kt, Le: le, RefractiveIdx: 1.0}
}

// IsLight reports whether the material emits light: any Le component > 0.
func (m Material) IsLight() bool {
	return m.Le.X > 0 || m.Le.Y > 0 || m.Le.Z > 0
}

func vec3Equal(a, b Vec3, eps float32) bool {
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

// Equal compares two materials component-wise within ε, plus texture
// equality by dimensions (spec.md §3).
func (m Material) Equal(o Material) bool {
	return vec3Equal(m.Kd, o.Kd, epsilon) &&
		vec3Equal(m.Ks, o.Ks, epsilon) &&
		vec3Equal(m.Kt, o.Kt, epsilon) &&
		vec3Equal(m.Le, o.Le, epsilon) &&
		math32.Abs(m.RefractiveIdx-o.RefractiveIdx) < epsilon &&
		m.Texture.Equal(o.Texture)
}

// DiffuseColor returns the Kd color, sampling the texture at uv when one
// is present (nearest-neighbor, spec.md §3).
func (m Material) DiffuseColor(uv Vec2) Vec3 {
	if m.Texture != nil {
		return m.Texture.Sample(uv)
	}
	return m.Kd
}

// Package config implements the public Config record of spec.md §6 and
// the error taxonomy of spec.md §7. Its defaults and field order are
// carried from the original engine's Config.hpp (SPEC_FULL.md
// "Supplemented Features").
package config

// ShaderKind selects one of the five shaders (spec.md §6).
type ShaderKind int

const (
	NoShadows ShaderKind = iota
	Whitted
	PathTracer
	DepthMap
	DiffuseMaterial
)

// AcceleratorKind selects one of the three spatial acceleration
// structures (spec.md §6).
type AcceleratorKind int

const (
	Naive AcceleratorKind = iota
	RegularGrid
	BVH
)

// shaderNames and acceleratorNames are the canonical string forms of the
// two enums, shared by the YAML config loader and the CLI's flag
// parsing so both accept (and the CLI's --help lists) the same names.
var shaderNames = map[string]ShaderKind{
	"no_shadows":       NoShadows,
	"whitted":          Whitted,
	"path_tracer":      PathTracer,
	"depth_map":        DepthMap,
	"diffuse_material": DiffuseMaterial,
}

var acceleratorNames = map[string]AcceleratorKind{
	"naive":        Naive,
	"regular_grid": RegularGrid,
	"bvh":          BVH,
}

// ParseShaderKind resolves a shader's canonical name to its ShaderKind.
func ParseShaderKind(name string) (ShaderKind, bool) {
	k, ok := shaderNames[name]
	return k, ok
}

// ParseAcceleratorKind resolves an accelerator's canonical name to its
// AcceleratorKind.
func ParseAcceleratorKind(name string) (AcceleratorKind, bool) {
	k, ok := acceleratorNames[name]
	return k, ok
}

// String returns the shader's canonical name.
func (s ShaderKind) String() string {
	for name, k := range shaderNames {
		if k == s {
			return name
		}
	}
	return "unknown"
}

// String returns the accelerator's canonical name.
func (a AcceleratorKind) String() string {
	for name, k := range acceleratorNames {
		if k == a {
			return name
		}
	}
	return "unknown"
}

// Config is the public entry point into a render: everything a host
// binding supplies to drive render_frame (spec.md §6).
type Config struct {
	Width, Height int
	Threads       int

	Shader      ShaderKind
	SceneIndex  int // 0-3 built-in, >=4 means "load from ObjFilePath"
	Accelerator AcceleratorKind

	SamplesPixel int
	SamplesLight int
	Repeats      int

	ObjFilePath string
	MtlFilePath string
	CamFilePath string

	// OutputBitmap is the pre-allocated width*height 0xAABBGGRR pixel
	// array the renderer writes in place (spec.md §6).
	OutputBitmap []uint32
}

// Default returns the Config defaults carried from the original
// engine's Config.hpp: 1280x720, hardware_concurrency threads, Whitted
// shader, the built-in scene 0, BVH accelerator, 1 sample per pixel and
// per light, 1 repeat (SPEC_FULL.md "Supplemented Features").
func Default(hardwareConcurrency int) Config {
	if hardwareConcurrency < 1 {
		hardwareConcurrency = 1
	}
	return Config{
		Width:        1280,
		Height:       720,
		Threads:      hardwareConcurrency,
		Shader:       Whitted,
		SceneIndex:   0,
		Accelerator:  BVH,
		SamplesPixel: 1,
		SamplesLight: 1,
		Repeats:      1,
	}
}

// Validate reports the first InvalidArgument violation found in c, if
// any (spec.md §7: loaders and configuration are expected to validate
// before handing data to the core).
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return NewError(KindInvalidArgument, "config: width and height must be positive")
	}
	if c.Threads <= 0 {
		return NewError(KindInvalidArgument, "config: threads must be positive")
	}
	if c.SamplesPixel <= 0 {
		return NewError(KindInvalidArgument, "config: samples_pixel must be positive")
	}
	if c.SamplesLight <= 0 {
		return NewError(KindInvalidArgument, "config: samples_light must be positive")
	}
	if len(c.OutputBitmap) != c.Width*c.Height {
		return NewError(KindInvalidArgument, "config: output_bitmap size must equal width*height")
	}
	return nil
}

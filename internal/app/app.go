// Package app assembles the pieces spec.md §6 names as a Config record
// into a runnable render: it loads or builds a scene and camera, picks
// the accelerator and shader the Config selects, and drives the
// renderer for Config.Repeats frames. This is host-binding glue, not
// core behavior (spec.md §1 scopes the host out of the core), grounded
// on the teacher's own root main.go orchestration (createScene +
// renderProgressive) split out of main() so it can be driven by tests
// without a process boundary.
package app

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"mobilert/internal/demoscene"
	"mobilert/pkg/accelerator"
	"mobilert/pkg/camera"
	"mobilert/pkg/config"
	"mobilert/pkg/core"
	"mobilert/pkg/loaders"
	"mobilert/pkg/renderer"
	"mobilert/pkg/sampler"
	"mobilert/pkg/scene"
	"mobilert/pkg/shader"
)

// maxBuiltinSceneIndex and below select a built-in demoscene.Build scene;
// any higher index loads an OBJ file (spec.md §6: "scene_index 0-3
// built-in, >=4 OBJ").
const maxBuiltinSceneIndex = 3

// BuildScene resolves cfg's scene and camera: a built-in demo scene for
// SceneIndex 0-3, or an OBJ/MTL load for any higher index. A .cam file,
// when given, always overrides whichever camera the scene step produced.
func BuildScene(cfg config.Config) (*scene.Scene, camera.Camera, error) {
	var sc *scene.Scene
	var cam camera.Camera

	if cfg.SceneIndex <= maxBuiltinSceneIndex {
		built, err := demoscene.Build(cfg.SceneIndex, cfg.Width, cfg.Height)
		if err != nil {
			return nil, nil, config.Wrap(config.KindLoaderFailure, err, "app: building demo scene")
		}
		sc, cam = built.Scene, built.Camera
	} else {
		if cfg.ObjFilePath == "" {
			return nil, nil, config.NewError(config.KindInvalidArgument, "app: scene_index >= 4 requires obj_file_path")
		}
		loaded, err := loaders.LoadOBJ(cfg.ObjFilePath, cfg.MtlFilePath)
		if err != nil {
			return nil, nil, err
		}
		sc = loaded
	}

	if cfg.CamFilePath != "" {
		loadedCam, err := loadCameraFile(cfg)
		if err != nil {
			return nil, nil, err
		}
		cam = loadedCam
	}

	if cam == nil {
		return nil, nil, config.NewError(config.KindInvalidArgument, "app: no camera available (scene has none and no cam_file_path given)")
	}

	return sc, cam, nil
}

func loadCameraFile(cfg config.Config) (camera.Camera, error) {
	f, err := os.Open(cfg.CamFilePath)
	if err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "app: opening cam file")
	}
	defer f.Close()

	def, err := camera.LoadCam(f)
	if err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "app: parsing cam file")
	}
	return camera.BuildPerspective(def, cfg.Width, cfg.Height), nil
}

// gridResolution picks a RegularGrid resolution from the scene's
// primitive count: a cube root so the expected primitives-per-cell
// stays roughly constant as scene size grows, floored at 4 cells per
// axis so tiny scenes still get real spatial pruning.
func gridResolution(primitiveCount int) int {
	if primitiveCount < 1 {
		return 1
	}
	res := int(math.Cbrt(float64(primitiveCount)))
	if res < 4 {
		res = 4
	}
	return res
}

// BuildAccelerator constructs the Accelerator cfg.Accelerator selects
// over sc (spec.md §6).
func BuildAccelerator(cfg config.Config, sc *scene.Scene) accelerator.Accelerator {
	switch cfg.Accelerator {
	case config.Naive:
		return accelerator.NewNaive(sc)
	case config.RegularGrid:
		return accelerator.NewRegularGrid(sc, gridResolution(sc.PrimitiveCount()))
	default:
		return accelerator.NewSceneBVH(sc)
	}
}

var shaderKindOf = map[config.ShaderKind]shader.Kind{
	config.NoShadows:       shader.NoShadows,
	config.Whitted:         shader.Whitted,
	config.PathTracer:      shader.PathTracer,
	config.DepthMap:        shader.DepthMap,
	config.DiffuseMaterial: shader.DiffuseMaterial,
}

// BuildShader constructs the Shader cfg.Shader selects, wiring in
// DepthMap's maxDist normalization distance when that shader is chosen
// (spec.md §4.5.4).
func BuildShader(cfg config.Config, sc *scene.Scene, accel accelerator.Accelerator, cam camera.Camera) *shader.Shader {
	kind := shaderKindOf[cfg.Shader]

	var maxDist float32
	if cfg.Shader == config.DepthMap {
		maxDist = shader.MaxDistFromBounds(sc.Bounds(), cam.AABB().Min)
	}
	return shader.New(kind, sc, accel, cfg.SamplesLight, maxDist)
}

// Render validates cfg, assembles a scene/camera/accelerator/shader and
// drives Renderer.RenderFrame for cfg.Repeats passes over cfg.Threads
// worker goroutines, writing into cfg.OutputBitmap. It returns the
// RenderStats of the last repeat.
func Render(cfg config.Config, logger core.Logger) (renderer.RenderStats, error) {
	if err := cfg.Validate(); err != nil {
		return renderer.RenderStats{}, err
	}

	sc, cam, err := BuildScene(cfg)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	accel := BuildAccelerator(cfg, sc)
	shd := BuildShader(cfg, sc, accel, cam)
	pixelSampler := sampler.NewStaticHaltonSeq()
	r := renderer.New(cam, shd, pixelSampler, cfg.Width, cfg.Height, cfg.SamplesPixel, logger)

	repeats := cfg.Repeats
	if repeats < 1 {
		repeats = 1
	}

	var stats renderer.RenderStats
	for i := 0; i < repeats; i++ {
		stats = r.RenderFrame(cfg.OutputBitmap, cfg.Threads)
		if logger != nil {
			logger.Printf("render %d/%d: %d samples traced, stopped=%v\n", i+1, repeats, stats.SamplesTraced, stats.Stopped)
		}
	}
	return stats, nil
}

// BitmapToImage unpacks a width*height 0xAABBGGRR bitmap (spec.md §6,
// §4.6's pixel layout) into a standard library image.Image suitable for
// image/png encoding.
func BitmapToImage(width, height int, bitmap []uint32) (*image.RGBA, error) {
	if len(bitmap) != width*height {
		return nil, fmt.Errorf("app: bitmap length %d does not match %dx%d", len(bitmap), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := bitmap[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(px & 0xFF),
				G: uint8((px >> 8) & 0xFF),
				B: uint8((px >> 16) & 0xFF),
				A: uint8((px >> 24) & 0xFF),
			})
		}
	}
	return img, nil
}

package renderer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobilert/pkg/accelerator"
	"mobilert/pkg/camera"
	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
	"mobilert/pkg/light"
	"mobilert/pkg/renderer"
	"mobilert/pkg/sampler"
	"mobilert/pkg/scene"
	"mobilert/pkg/shader"
)

func buildCornellBoxScene() *scene.Scene {
	s := scene.New()
	red := s.AddMaterial(core.NewMaterial(core.NewVec3(0.8, 0.1, 0.1), core.Vec3{}, core.Vec3{}, core.Vec3{}))
	white := s.AddMaterial(core.NewMaterial(core.NewVec3(0.8, 0.8, 0.8), core.Vec3{}, core.Vec3{}, core.Vec3{}))

	s.AddPlane(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white))
	s.AddPlane(geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red))
	s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, white))
	s.AddLight(light.NewPointLight(core.NewVec3(0, 4, 3), core.NewVec3(15, 15, 15)))
	return s
}

// TestRenderFrameProducesNonZeroFramebuffer implements spec.md §8 end-
// to-end scenario 1: a 30x30 Whitted/BVH render with a 3-thread pool
// changes the framebuffer from its initial all-zero state.
func TestRenderFrameProducesNonZeroFramebuffer(t *testing.T) {
	s := buildCornellBoxScene()
	cam := camera.NewPerspective(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 5), core.NewVec3(0, 1, 0), 1.0, 1.0)
	accel := accelerator.NewSceneBVH(s)
	shd := shader.New(shader.Whitted, s, accel, 1, 0)

	const width, height = 30, 30
	bitmap := make([]uint32, width*height)
	r := renderer.New(cam, shd, sampler.NewStaticHaltonSeq(), width, height, 1, nil)

	stats := r.RenderFrame(bitmap, 3)

	assert.False(t, stats.Stopped)
	assert.Equal(t, width, stats.Width)
	assert.Equal(t, height, stats.Height)
	assert.Greater(t, stats.SamplesTraced, int64(0))

	nonZero := 0
	for _, px := range bitmap {
		if px != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 0, "render_frame must change the framebuffer from its initial all-zero state")

	for _, px := range bitmap {
		assert.Equal(t, uint32(0xFF), px>>24, "every written pixel's alpha byte must be 0xFF")
	}
}

// TestStopRenderBoundsReturn implements spec.md §8 end-to-end scenario
// 6: stopping a render mid-pass returns promptly with Stopped set, and
// every pixel's top byte is either untouched (0x00) or fully opaque
// (0xFF) -- never a partial value.
func TestStopRenderBoundsReturn(t *testing.T) {
	s := buildCornellBoxScene()
	cam := camera.NewPerspective(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 5), core.NewVec3(0, 1, 0), 1.0, 1.0)
	accel := accelerator.NewSceneBVH(s)
	shd := shader.New(shader.PathTracer, s, accel, 1, 0)

	const width, height = 256, 256
	bitmap := make([]uint32, width*height)
	r := renderer.New(cam, shd, sampler.NewStaticHaltonSeq(), width, height, 200, nil)

	go func() {
		time.Sleep(2 * time.Millisecond)
		r.StopRender()
	}()
	stats := r.RenderFrame(bitmap, 2)

	require.True(t, stats.Stopped, "a 256x256 200spp path-traced render must still be in flight 2ms in")
	for _, px := range bitmap {
		top := px >> 24
		assert.True(t, top == 0x00 || top == 0xFF, "pixel top byte must be 0x00 or 0xFF, got %#x", top)
	}
}

func TestProgressReportsCompletionFraction(t *testing.T) {
	s := buildCornellBoxScene()
	cam := camera.NewPerspective(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 5), core.NewVec3(0, 1, 0), 1.0, 1.0)
	accel := accelerator.NewNaive(s)
	shd := shader.New(shader.NoShadows, s, accel, 1, 0)

	const width, height = 16, 16
	bitmap := make([]uint32, width*height)
	r := renderer.New(cam, shd, sampler.NewStaticHaltonSeq(), width, height, 1, nil)

	assert.Equal(t, float32(0), r.Progress())
	r.RenderFrame(bitmap, 1)
	assert.InDelta(t, float32(1), r.Progress(), 1e-5)
}

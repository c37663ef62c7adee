// Package renderer implements the tiled multi-threaded frame orchestration
// of spec.md §4.6: atomic tile dispensing across N worker goroutines (no
// per-tile queue, no work stealing), incremental-average pixel blending
// into a packed 0xAABBGGRR framebuffer (red in the low byte), and
// cooperative cancellation.
package renderer

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"mobilert/pkg/camera"
	"mobilert/pkg/core"
	"mobilert/pkg/shader"
)

// RenderStats summarizes a completed render_frame call, used for
// progress reporting and CLI output (spec.md §4.6, "an atomic sample
// counter used only for progress reporting").
type RenderStats struct {
	Width, Height   int
	SamplesPerPixel int
	SamplesTraced   int64
	Stopped         bool
}

// Renderer owns the camera, shader, pixel sampler and tile geometry of a
// single render job (spec.md §4.6).
type Renderer struct {
	Camera          camera.Camera
	Shader          *shader.Shader
	PixelSampler    core.Sampler
	Width, Height   int
	SamplesPerPixel int
	Logger          core.Logger

	dispenser     *tileDispenser
	sampleCounter atomic.Int64
	stopped       atomic.Bool
}

// New builds a Renderer. logger may be nil, in which case a
// DefaultLogger is used.
func New(cam camera.Camera, shd *shader.Shader, pixelSampler core.Sampler, width, height, samplesPerPixel int, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		Camera:          cam,
		Shader:          shd,
		PixelSampler:    pixelSampler,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Logger:          logger,
		dispenser:       newTileDispenser(),
	}
}

// reset restarts the pixel sampler and tile dispenser for a fresh frame
// (spec.md §4.6 step 1: "Reset pixel sampler, shader, camera sampling
// state").
func (r *Renderer) reset() {
	r.PixelSampler.Reset()
	r.dispenser.reset()
	r.sampleCounter.Store(0)
	r.stopped.Store(false)
}

// RenderFrame renders bitmap (a pre-allocated width*height 0xAABBGGRR
// pixel array, per spec.md §6's Config.output_bitmap) using nThreads worker
// goroutines: nThreads-1 are spawned via errgroup, and the caller
// participates as the last worker (spec.md §4.6 step 2-3).
func (r *Renderer) RenderFrame(bitmap []uint32, nThreads int) RenderStats {
	r.reset()
	if nThreads < 1 {
		nThreads = 1
	}

	var g errgroup.Group
	for i := 0; i < nThreads-1; i++ {
		g.Go(func() error {
			r.renderScene(bitmap)
			return nil
		})
	}
	r.renderScene(bitmap)
	_ = g.Wait()

	return RenderStats{
		Width:           r.Width,
		Height:          r.Height,
		SamplesPerPixel: r.SamplesPerPixel,
		SamplesTraced:   r.sampleCounter.Load(),
		Stopped:         r.stopped.Load(),
	}
}

// StopRender cooperatively cancels an in-flight frame: workers observe it
// before their next tile dispense and return, skipping any remaining
// passes; in-flight shade calls run to completion (spec.md §4.6, §5). Idempotent and safe from any
// goroutine.
func (r *Renderer) StopRender() {
	r.stopped.Store(true)
}

// Progress returns the fraction of the frame's total samples traced so
// far, for progress reporting only.
func (r *Renderer) Progress() float32 {
	total := int64(r.Width) * int64(r.Height) * int64(r.SamplesPerPixel)
	if total == 0 {
		return 1
	}
	return float32(r.sampleCounter.Load()) / float32(total)
}

// renderScene is the worker loop every goroutine runs: for each sample
// pass, repeatedly dispense a tile and render every pixel in it until
// the pass is exhausted or the frame is stopped (spec.md §4.6).
func (r *Renderer) renderScene(bitmap []uint32) {
	for pass := 0; pass < r.SamplesPerPixel; pass++ {
		for {
			if r.stopped.Load() {
				return
			}
			idx := r.dispenser.next(pass)
			if idx < 0 {
				break
			}
			r.renderTile(tileBounds(idx, r.Width, r.Height), pass, bitmap)
		}
	}
}

// renderTile renders every pixel in tile for the given sample pass,
// blending each new sample into bitmap via incremental averaging
// (spec.md §4.6).
func (r *Renderer) renderTile(tile Tile, pass int, bitmap []uint32) {
	n := pass + 1
	invW := 1 / float32(r.Width)
	invH := 1 / float32(r.Height)

	for y := tile.StartY; y < tile.StartY+tile.Height; y++ {
		for x := tile.StartX; x < tile.StartX+tile.Width; x++ {
			u := float32(x) * invW
			v := float32(y) * invH

			r1 := r.PixelSampler.Next()
			r2 := r.PixelSampler.Next()
			du := (r1 - 0.5) * 2 * invW
			dv := (r2 - 0.5) * 2 * invH

			ray := r.Camera.GenerateRay(u, v, du, dv)
			color, _ := r.Shader.RayTrace(ray, r.PixelSampler)

			pixelIdx := y*r.Width + x
			bitmap[pixelIdx] = blendPixel(bitmap[pixelIdx], color, n)
			r.sampleCounter.Add(1)
		}
	}
}

// blendPixel folds color into the existing packed pixel via incremental
// averaging, one 8-bit channel at a time, saturating to [0,255]. The
// layout is 0xAABBGGRR (red in the low byte) with alpha fixed at 0xFF
// (spec.md §4.6).
func blendPixel(old uint32, color core.Vec3, n int) uint32 {
	oldR := float32(old & 0xFF)
	oldG := float32((old >> 8) & 0xFF)
	oldB := float32((old >> 16) & 0xFF)

	newR := core.Clamp(core.IncrementalAverage(oldR, core.Clamp(color.X, 0, 1)*255, n), 0, 255)
	newG := core.Clamp(core.IncrementalAverage(oldG, core.Clamp(color.Y, 0, 1)*255, n), 0, 255)
	newB := core.Clamp(core.IncrementalAverage(oldB, core.Clamp(color.Z, 0, 1)*255, n), 0, 255)

	r := uint32(newR + 0.5)
	g := uint32(newG + 0.5)
	b := uint32(newB + 0.5)

	return 0xFF000000 | (b << 16) | (g << 8) | r
}

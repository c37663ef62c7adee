package renderer

import "mobilert/pkg/sampler"

// tileGridSide is sqrt(NumberOfTiles) (spec.md §4.6): the renderer
// always divides the image into a 16x16 grid of tiles regardless of
// image resolution.
const tileGridSide = 16

// NumberOfTiles is the fixed tile count spec.md §4.6 dispenses across a
// render pass.
const NumberOfTiles = tileGridSide * tileGridSide

// Tile is one rectangular region of the framebuffer.
type Tile struct {
	StartX, StartY int
	Width, Height  int
}

// tileDispenser hands out distinct, space-filling tile indices within a
// sample pass via a shared Halton sequence (spec.md §4.6 "get_block"):
// each worker calls next(pass) until it returns -1, which is what the
// sequence's 1.0 "pass exhausted" sentinel maps to. It is built on sampler.HaltonSeq, the same
// per-pass Halton dispenser package sampler already implements for
// spec.md §4.2 — reused here rather than reimplemented.
type tileDispenser struct {
	seq *sampler.HaltonSeq
}

func newTileDispenser() *tileDispenser {
	return &tileDispenser{seq: sampler.NewHaltonSeq(tileGridSide, tileGridSide)}
}

// next returns the next tile index for samplePass, or -1 once the pass
// is exhausted (spec.md §4.6: "if block >= 1.0 the pass is done").
func (d *tileDispenser) next(samplePass int) int {
	block := d.seq.NextForPass(samplePass)
	if block >= 1.0 {
		return -1
	}
	idx := int(block*float32(NumberOfTiles) + 0.5)
	if idx >= NumberOfTiles {
		idx = NumberOfTiles - 1
	}
	return idx
}

func (d *tileDispenser) reset() {
	d.seq.Reset()
}

// tileBounds derives a tile's pixel rectangle from its index in the
// 16x16 grid and the image dimensions (spec.md §4.6).
func tileBounds(index, imageWidth, imageHeight int) Tile {
	tileX := index % tileGridSide
	tileY := index / tileGridSide
	blockW := imageWidth / tileGridSide
	blockH := imageHeight / tileGridSide

	startX := tileX * blockW
	startY := tileY * blockH
	width := blockW
	height := blockH

	// The last row/column absorbs any remainder from integer division so
	// every pixel belongs to exactly one tile.
	if tileX == tileGridSide-1 {
		width = imageWidth - startX
	}
	if tileY == tileGridSide-1 {
		height = imageHeight - startY
	}

	return Tile{StartX: startX, StartY: startY, Width: width, Height: height}
}

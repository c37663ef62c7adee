package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mobilert/pkg/core"
)

// TestBlendPixelIdempotence checks spec.md §8: blending the same color
// into a pixel repeatedly converges to (and stays at) that color's
// 8-bit quantization.
func TestBlendPixelIdempotence(t *testing.T) {
	color := core.NewVec3(0.5, 0.25, 0.75)
	px := uint32(0xFF000000)
	for n := 1; n <= 10; n++ {
		px = blendPixel(px, color, n)
	}
	final := blendPixel(px, color, 11)
	assert.Equal(t, px, final)
}

// TestBlendPixelAlphaAlwaysOpaque checks the packed format's top byte
// invariant: alpha is always 0xFF regardless of the blended color.
func TestBlendPixelAlphaAlwaysOpaque(t *testing.T) {
	px := blendPixel(0, core.NewVec3(1, 1, 1), 1)
	assert.Equal(t, uint32(0xFF), px>>24)

	black := blendPixel(0, core.Vec3{}, 1)
	assert.Equal(t, uint32(0xFF), black>>24)
}

func TestBlendPixelSaturatesOutOfRangeColor(t *testing.T) {
	px := blendPixel(0, core.NewVec3(5, -5, 0.5), 1)
	assert.Equal(t, uint32(255), px&0xFF)
	assert.Equal(t, uint32(0), (px>>8)&0xFF)
}

func TestTileBoundsCoverWholeImageExactly(t *testing.T) {
	const w, h = 64, 32
	covered := make([][]bool, h)
	for y := range covered {
		covered[y] = make([]bool, w)
	}
	for i := 0; i < NumberOfTiles; i++ {
		tile := tileBounds(i, w, h)
		for y := tile.StartY; y < tile.StartY+tile.Height; y++ {
			for x := tile.StartX; x < tile.StartX+tile.Width; x++ {
				assert.False(t, covered[y][x], "pixel (%d,%d) covered by more than one tile", x, y)
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.True(t, covered[y][x], "pixel (%d,%d) not covered by any tile", x, y)
		}
	}
}

func TestTileDispenserExhaustsThenSignalsPassDone(t *testing.T) {
	d := newTileDispenser()
	seen := 0
	for {
		idx := d.next(0)
		if idx < 0 {
			break
		}
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, NumberOfTiles)
		seen++
		if seen > NumberOfTiles*2 {
			t.Fatal("tile dispenser never signaled pass exhaustion")
		}
	}
	assert.Equal(t, NumberOfTiles, seen, "the dispenser's domain is exactly NumberOfTiles, so pass 0 must hand out that many tiles before exhausting")
}

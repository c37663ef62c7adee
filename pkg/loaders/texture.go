package loaders

import (
	"image"
	_ "image/jpeg" // decoder registered for image.Decode
	_ "image/png"  // decoder registered for image.Decode
	"os"

	"golang.org/x/image/draw"

	"mobilert/pkg/config"
	"mobilert/pkg/core"
)

// textureMaxDimension caps a loaded texture's resampled side length,
// keeping per-texture memory bounded regardless of the source image's
// resolution (SPEC_FULL.md "Domain Stack": golang.org/x/image/draw
// nearest-neighbor resampling into the fixed-format RGB Texture buffer).
const textureMaxDimension = 2048

// LoadTexture decodes a PNG or JPEG file and resamples it, via
// draw.NearestNeighbor, into a core.Texture no larger than
// textureMaxDimension on either side. Nearest-neighbor is chosen
// specifically because it matches Texture.Sample's own nearest-sample
// policy (spec.md §3) rather than introducing a filtering behavior the
// core doesn't otherwise have (spec.md §1, "texture filtering beyond
// nearest sample" is out of scope).
func LoadTexture(path string) (*core.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: opening texture file")
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: decoding texture file")
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, config.NewError(config.KindLoaderFailure, "loaders: texture has zero dimension")
	}
	width, height = clampDimensions(width, height, textureMaxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	tex := core.NewTexture(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := dst.PixOffset(x, y)
			i := (y*width + x) * 3
			tex.Data[i] = dst.Pix[o]
			tex.Data[i+1] = dst.Pix[o+1]
			tex.Data[i+2] = dst.Pix[o+2]
		}
	}
	return tex, nil
}

// clampDimensions scales width/height down proportionally so neither
// side exceeds max, preserving aspect ratio.
func clampDimensions(width, height, max int) (int, int) {
	if width <= max && height <= max {
		return width, height
	}
	if width >= height {
		height = height * max / width
		width = max
	} else {
		width = width * max / height
		height = max
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

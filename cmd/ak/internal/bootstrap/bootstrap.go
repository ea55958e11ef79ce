// Package bootstrap turns the command line configuration into ready to use
// transforms.
package bootstrap

import (
	"fmt"
	"image"

	"github.com/rustemperor/assetkit/batch"
	"github.com/rustemperor/assetkit/bitmap"
	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
)

// Gradient returns the gradient set by the -dark and -light flags.
func Gradient() (bitmap.Gradient, error) {
	g, err := bitmap.ParseGradient(cfg.Dark, cfg.Light)
	if err != nil {
		return bitmap.Gradient{}, fmt.Errorf("invalid gradient: %w", err)
	}
	return g, nil
}

// Recolorer returns the recolouring transform for g.  If -levels is set, the
// recoloured image is quantised to that many gradient stops using the -dither
// function.
func Recolorer(g bitmap.Gradient) (batch.Transform, error) {
	if cfg.Levels == 0 {
		return func(img image.Image) (image.Image, error) {
			return g.Recolor(img), nil
		}, nil
	}
	pal, err := g.Palette(cfg.Levels)
	if err != nil {
		return nil, err
	}
	dfn, ok := bitmap.DitherFunction(cfg.Dither)
	if !ok {
		return nil, fmt.Errorf("unknown dithering function: %s", cfg.Dither)
	}
	cfg.Log.Debug("quantising output", "levels", cfg.Levels, "dither", cfg.Dither)
	return func(img image.Image) (image.Image, error) {
		return bitmap.Quantize(g.Recolor(img), pal, dfn), nil
	}, nil
}

// Upscaler returns the nearest-neighbour upscaling transform.
func Upscaler(factor int) (batch.Transform, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", bitmap.ErrScale, factor)
	}
	return func(img image.Image) (image.Image, error) {
		return bitmap.Upscale(img, factor)
	}, nil
}

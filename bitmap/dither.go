package bitmap

import (
	"image"
	"image/color"
	"sort"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"
)

// DitherFunc maps an opaque image onto the palette.
type DitherFunc func(img image.Image, pal color.Palette) image.Image

var ditherFunctions = map[string]DitherFunc{
	"none":            DNearest,
	"floyd-steinberg": DFloydSteinberg,
	"atkinson":        DAtkinson,
	"stucki":          DStucki,
	"bayer":           DBayer,
}

// DitherFunction returns a registered dither function by name.  Empty name
// selects DNearest.
func DitherFunction(name string) (DitherFunc, bool) {
	if name == "" {
		return DNearest, true
	}
	fn, ok := ditherFunctions[name]
	if !ok {
		return nil, false
	}
	return fn, true
}

// AllDitherFunctions returns a sorted list of all available dither function
// names.
func AllDitherFunctions() []string {
	keys := make([]string, 0, len(ditherFunctions))
	for k := range ditherFunctions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Quantize maps img onto pal with dfn.  Dithering runs on an opaque copy and
// the alpha channel of img is restored on the result, so transparency is
// never dithered.
func Quantize(img image.Image, pal color.Palette, dfn DitherFunc) *image.NRGBA {
	if dfn == nil {
		dfn = DNearest
	}
	src := NRGBA(img)
	opaque := NRGBA(src)
	eachPixel(opaque, func(i int) {
		opaque.Pix[i+3] = 0xff
	})
	dst := NRGBA(dfn(opaque, pal))
	eachPixel(dst, func(i int) {
		dst.Pix[i+3] = src.Pix[i+3]
	})
	return dst
}

// DNearest replaces each pixel with the closest palette colour, no error
// diffusion.
func DNearest(img image.Image, pal color.Palette) image.Image {
	dst := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

// DFloydSteinberg uses the standard library Floyd-Steinberg drawer, so it is
// defined as a function instead of a variable like the others.
func DFloydSteinberg(img image.Image, pal color.Palette) image.Image {
	dst := image.NewPaletted(img.Bounds(), pal)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), img, img.Bounds().Min)
	return dst
}

// diffusionDither returns a dither function that applies error diffusion
// dithering using the specified matrix.
func diffusionDither(matrix dither.ErrorDiffusionMatrix) DitherFunc {
	return func(img image.Image, pal color.Palette) image.Image {
		d := dither.NewDitherer(pal)
		if d == nil {
			return DNearest(img, pal)
		}
		d.Matrix = matrix
		dst := image.NewRGBA(img.Bounds())
		d.Draw(dst, dst.Bounds(), img, img.Bounds().Min)
		return dst
	}
}

// patternDither returns a dither function that applies ordered dithering
// using the specified pixel mapper.
func patternDither(mapper dither.PixelMapper) DitherFunc {
	return func(img image.Image, pal color.Palette) image.Image {
		d := dither.NewDitherer(pal)
		if d == nil {
			return DNearest(img, pal)
		}
		d.Mapper = mapper
		dst := image.NewRGBA(img.Bounds())
		d.Draw(dst, dst.Bounds(), img, img.Bounds().Min)
		return dst
	}
}

var (
	// DAtkinson applies Atkinson error diffusion dithering.
	DAtkinson = diffusionDither(dither.Atkinson)
	// DStucki applies Stucki error diffusion dithering.
	DStucki = diffusionDither(dither.Stucki)
	// DBayer applies 4x4 Bayer ordered dithering, small enough for sprites.
	DBayer = patternDither(dither.Bayer(4, 4, 1.0))
)

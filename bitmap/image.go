// Package bitmap provides the pixel operations behind the asset tools:
// gradient recolouring, palette quantisation and integer upscaling.
package bitmap

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// NRGBA returns a non-premultiplied copy of img with bounds starting at (0, 0).
// Images without an alpha channel come out fully opaque.
func NRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Encode writes img to w as PNG with the given compression level.
func Encode(w io.Writer, img image.Image, level png.CompressionLevel) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(level))
}

// Luminance returns the unweighted mean of the red, green and blue channels
// normalised to [0, 1], 0 being black.
func Luminance(c color.NRGBA) float64 {
	gray := float64(int(c.R)+int(c.G)+int(c.B)) / 3
	return gray / 255
}

// pixel returns the colour at offset i of the Pix slice.
func pixel(pix []uint8, i int) color.NRGBA {
	return color.NRGBA{R: pix[i], G: pix[i+1], B: pix[i+2], A: pix[i+3]}
}

func setPixel(pix []uint8, i int, c color.NRGBA) {
	pix[i+0] = c.R
	pix[i+1] = c.G
	pix[i+2] = c.B
	pix[i+3] = c.A
}

// eachPixel calls fn with the Pix offset of every pixel in img.
func eachPixel(img *image.NRGBA, fn func(i int)) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			fn(i)
			i += 4
		}
	}
}

package bitmap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// TestPatterns are the generated sprites used to try the pipeline without game
// assets.
var TestPatterns = map[string]func(dx, dy int) image.Image{
	"ramp":        GrayRamp,
	"checkers":    Checkers,
	"transparent": AlphaRamp,
}

// GrayRamp generates a horizontal ramp from black on the left to white on the
// right.  It has no alpha channel.
func GrayRamp(dx, dy int) image.Image {
	img := image.NewGray(image.Rect(0, 0, dx, dy))
	for x := 0; x < dx; x++ {
		v := rampValue(x, dx)
		for y := 0; y < dy; y++ {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// Checkers generates a checkerboard of black and white 1x1 cells, the
// hardest case for resampling.
func Checkers(dx, dy int) image.Image {
	img := image.NewGray(image.Rect(0, 0, dx, dy))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			if (x+y)%2 != 0 {
				img.SetGray(x, y, color.Gray{})
			}
		}
	}
	return img
}

// AlphaRamp is the GrayRamp with alpha going from transparent at the top to
// opaque at the bottom.
func AlphaRamp(dx, dy int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, dx, dy))
	for y := 0; y < dy; y++ {
		a := rampValue(y, dy)
		for x := 0; x < dx; x++ {
			v := rampValue(x, dx)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: a})
		}
	}
	return img
}

// rampValue spreads [0, n) over [0, 255] so that both ends are hit.
func rampValue(i, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(i * 255 / (n - 1))
}

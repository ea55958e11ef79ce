package bitmap

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrScale is returned for scale factors below 1.
var ErrScale = errors.New("scale factor must be a positive integer")

// Upscale enlarges img by factor in both dimensions using nearest-neighbour
// sampling, so that every output pixel is a copy of exactly one source pixel
// and hard pixel-art edges are kept.
func Upscale(img image.Image, factor int) (*image.NRGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrScale, factor)
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor), nil
}

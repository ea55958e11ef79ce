package bitmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpscale(t *testing.T) {
	type args struct {
		img    image.Image
		factor int
	}
	tests := []struct {
		name     string
		args     args
		wantSize image.Point
		wantErr  error
	}{
		{
			name:     "single pixel by 4",
			args:     args{img: testNRGBA(color.NRGBA{R: 10, G: 20, B: 30, A: 40}), factor: 4},
			wantSize: image.Pt(4, 4),
		},
		{
			name:     "checkers by 4",
			args:     args{img: Checkers(3, 2), factor: 4},
			wantSize: image.Pt(12, 8),
		},
		{
			name:     "transparent ramp by 3",
			args:     args{img: AlphaRamp(5, 7), factor: 3},
			wantSize: image.Pt(15, 21),
		},
		{
			name:     "factor 1 keeps the image",
			args:     args{img: GrayRamp(6, 2), factor: 1},
			wantSize: image.Pt(6, 2),
		},
		{
			name:    "zero factor",
			args:    args{img: GrayRamp(2, 2), factor: 0},
			wantErr: ErrScale,
		},
		{
			name:    "negative factor",
			args:    args{img: GrayRamp(2, 2), factor: -4},
			wantErr: ErrScale,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Upscale(tt.args.img, tt.args.factor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, got.Bounds().Size())

			// every output pixel is the source pixel it falls into.
			src := NRGBA(tt.args.img)
			for y := 0; y < tt.wantSize.Y; y++ {
				for x := 0; x < tt.wantSize.X; x++ {
					want := src.NRGBAAt(x/tt.args.factor, y/tt.args.factor)
					if !assert.Equal(t, want, got.NRGBAAt(x, y), "pixel (%d,%d)", x, y) {
						return
					}
				}
			}
		})
	}
}

func TestUpscale_noNewColours(t *testing.T) {
	src := AlphaRamp(9, 5)
	got, err := Upscale(src, 4)
	require.NoError(t, err)

	want := colours(src)
	for c := range colours(got) {
		assert.Contains(t, want, c)
	}
}

func TestUpscale_subImage(t *testing.T) {
	canvas := testColorImage(image.Rect(0, 0, 4, 4), color.Black)
	fillColor(canvas, image.Rect(2, 2, 3, 3), color.White)

	got, err := Upscale(canvas.SubImage(image.Rect(2, 2, 4, 3)), 2)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 4, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, got.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{A: 255}, got.NRGBAAt(2, 0))
}

package cmdrecolor

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustemperor/assetkit/batch"
	"github.com/rustemperor/assetkit/bitmap"
	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
	"github.com/rustemperor/assetkit/cmd/ak/internal/golang/base"
)

func writePNG(t *testing.T, filename string, img image.Image) {
	t.Helper()
	f, err := os.Create(filename)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func readPNG(t *testing.T, filename string) image.Image {
	t.Helper()
	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// setup points the command at a temporary directory and restores the
// defaults once the test is done.
func setup(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	oldDir, oldLevels, oldDark, oldLight := dir, cfg.Levels, cfg.Dark, cfg.Light
	t.Cleanup(func() {
		dir, cfg.Levels, cfg.Dark, cfg.Light = oldDir, oldLevels, oldDark, oldLight
		base.SetExitStatus(base.SNoError)
	})
	dir = tmp
	return tmp
}

func TestRunRecolor(t *testing.T) {
	tmp := setup(t)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(0, 1, color.NRGBA{128, 128, 128, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 0})
	writePNG(t, filepath.Join(tmp, "icon.png"), img)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "notes.txt"), []byte("not an image"), 0o644))

	err := runRecolor(context.Background(), CmdRecolor, nil)
	require.NoError(t, err)
	assert.Equal(t, base.SNoError, base.ExitStatus())

	got := readPNG(t, filepath.Join(tmp, "icon.png"))
	assert.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{63, 52, 38, 255}, nrgbaAt(got, 0, 0))
	assert.Equal(t, color.NRGBA{249, 245, 234, 255}, nrgbaAt(got, 1, 0))
	assert.Equal(t, color.NRGBA{156, 148, 136, 255}, nrgbaAt(got, 0, 1))
	assert.Equal(t, uint8(0), nrgbaAt(got, 1, 1).A)

	notes, err := os.ReadFile(filepath.Join(tmp, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "not an image", string(notes))
}

func uniform(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRunRecolor_customGradient(t *testing.T) {
	tmp := setup(t)
	cfg.Dark, cfg.Light = "#000000", "#ff0000"

	writePNG(t, filepath.Join(tmp, "a.png"), uniform(3, 2, color.White))
	require.NoError(t, runRecolor(context.Background(), CmdRecolor, nil))

	got := readPNG(t, filepath.Join(tmp, "a.png"))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, nrgbaAt(got, 2, 1))
}

func TestRunRecolor_levels(t *testing.T) {
	tmp := setup(t)
	cfg.Levels = 2

	writePNG(t, filepath.Join(tmp, "a.png"), uniform(2, 2, color.Gray{Y: 200}))
	require.NoError(t, runRecolor(context.Background(), CmdRecolor, nil))

	got := readPNG(t, filepath.Join(tmp, "a.png"))
	for y := range 2 {
		for x := range 2 {
			assert.Equal(t, color.NRGBA{249, 245, 234, 255}, nrgbaAt(got, x, y))
		}
	}
}

func TestRunRecolor_errors(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(t *testing.T, tmp string)
		args       []string
		wantErr    error
		wantStatus base.StatusCode
	}{
		{
			name:       "no png files",
			prepare:    func(t *testing.T, tmp string) {},
			wantErr:    batch.ErrNoFiles,
			wantStatus: base.SGenericError,
		},
		{
			name: "missing directory",
			prepare: func(t *testing.T, tmp string) {
				dir = filepath.Join(tmp, "missing")
			},
			wantErr:    batch.ErrNoDirectory,
			wantStatus: base.SGenericError,
		},
		{
			name:       "unexpected arguments",
			prepare:    func(t *testing.T, tmp string) {},
			args:       []string{"extra"},
			wantStatus: base.SInvalidParameters,
		},
		{
			name: "invalid colour",
			prepare: func(t *testing.T, tmp string) {
				cfg.Dark = "gold"
			},
			wantStatus: base.SInvalidParameters,
		},
		{
			name: "light colour with trailing digits",
			prepare: func(t *testing.T, tmp string) {
				cfg.Light = "#f9f5ea00"
			},
			wantErr:    bitmap.ErrHexColour,
			wantStatus: base.SInvalidParameters,
		},
		{
			name: "invalid levels",
			prepare: func(t *testing.T, tmp string) {
				cfg.Levels = 1
			},
			wantStatus: base.SInvalidParameters,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmp := setup(t)
			tt.prepare(t, tmp)

			err := runRecolor(context.Background(), CmdRecolor, tt.args)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantStatus, base.ExitStatus())
		})
	}
}

func TestRunRecolor_badColourLeavesFiles(t *testing.T) {
	tmp := setup(t)
	cfg.Light = "#f9f5e"

	src := uniform(2, 2, color.Gray{Y: 100})
	writePNG(t, filepath.Join(tmp, "a.png"), src)
	before, err := os.ReadFile(filepath.Join(tmp, "a.png"))
	require.NoError(t, err)

	err = runRecolor(context.Background(), CmdRecolor, nil)
	assert.ErrorIs(t, err, bitmap.ErrHexColour)
	assert.Equal(t, base.SInvalidParameters, base.ExitStatus())

	after, err := os.ReadFile(filepath.Join(tmp, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

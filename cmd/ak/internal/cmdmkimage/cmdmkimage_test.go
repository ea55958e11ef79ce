package cmdmkimage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustemperor/assetkit/cmd/ak/internal/golang/base"
)

func setup(t *testing.T) string {
	t.Helper()
	tmp := filepath.Join(t.TempDir(), "fixtures")
	oldDir, oldSz, oldList := outdir, imgSz, listPatterns
	t.Cleanup(func() {
		outdir, imgSz, listPatterns = oldDir, oldSz, oldList
		base.SetExitStatus(base.SNoError)
	})
	outdir, imgSz, listPatterns = tmp, 8, false
	return tmp
}

func TestRunMkimage(t *testing.T) {
	tmp := setup(t)

	require.NoError(t, runMkimage(context.Background(), CmdMkimage, nil))

	for _, name := range []string{"checkers", "ramp", "swatch", "transparent"} {
		f, err := os.Open(filepath.Join(tmp, name+".png"))
		require.NoError(t, err, name)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err, name)
		assert.Equal(t, image.Point{8, 4}, image.Point{cfg.Width, cfg.Height}, name)
	}
}

func TestRunMkimage_invalidSize(t *testing.T) {
	setup(t)
	imgSz = 1

	require.Error(t, runMkimage(context.Background(), CmdMkimage, nil))
	assert.Equal(t, base.SInvalidParameters, base.ExitStatus())
}

func TestListAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listAll(&buf))
	assert.Equal(t, "Available test patterns: [checkers ramp transparent swatch]\n", buf.String())
}

// Package cmdmkimage provides a subcommand that generates test sprites.
package cmdmkimage

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/rustemperor/assetkit/bitmap"
	"github.com/rustemperor/assetkit/cmd/ak/internal/bootstrap"
	"github.com/rustemperor/assetkit/cmd/ak/internal/golang/base"
	"github.com/rustemperor/assetkit/cmd/ak/internal/report"
)

var CmdMkimage = &base.Command{
	Run:        runMkimage,
	UsageLine:  "ak mkimage [flags]",
	Short:      "generates grayscale test sprites and a gradient swatch",
	PrintFlags: true,
	Long: `
Generates test sprites to try recolor and upscale on, without the game
assets: a gray ramp, a checkerboard, a ramp with an alpha ramp, and a swatch
of the configured gradient.
`,
}

var (
	outdir       string
	imgSz        int
	listPatterns bool
)

func init() {
	CmdMkimage.Flag.StringVar(&outdir, "d", "fixtures", "output `directory` for the images")
	CmdMkimage.Flag.IntVar(&imgSz, "s", 32, "width of the images in `pixels`, height is half of it")
	CmdMkimage.Flag.BoolVar(&listPatterns, "list", false, "list patterns")
}

// swatchName is the file name of the gradient swatch.
const swatchName = "swatch"

func runMkimage(ctx context.Context, cmd *base.Command, args []string) error {
	if listPatterns {
		return listAll(os.Stdout)
	}
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if imgSz < 2 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("image size too small: %d", imgSz)
	}
	g, err := bootstrap.Gradient()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	recolor, err := bootstrap.Recolorer(g)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	if err := os.MkdirAll(outdir, 0o755); err != nil {
		base.SetExitStatus(base.SGenericError)
		return err
	}
	dx, dy := imgSz, max(imgSz/2, 1)
	for _, name := range patternNames() {
		if err := mkimage(filepath.Join(outdir, name+".png"), bitmap.TestPatterns[name](dx, dy)); err != nil {
			base.SetExitStatus(base.SApplicationError)
			return err
		}
		report.Info("Image created: %s.png", name)
	}
	swatch, err := recolor(bitmap.GrayRamp(dx, dy))
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	if err := mkimage(filepath.Join(outdir, swatchName+".png"), swatch); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	report.Info("Image created: %s.png (%s)", swatchName, g)
	return nil
}

func mkimage(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := bitmap.Encode(f, img, png.DefaultCompression); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode %s: %w", filename, err)
	}
	return f.Close()
}

func patternNames() []string {
	var names []string
	for name := range bitmap.TestPatterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func listAll(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Available test patterns: %v\n", append(patternNames(), swatchName))
	return err
}

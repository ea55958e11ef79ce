// Package cmdupscale provides the pixel-art upscaling subcommand.
package cmdupscale

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/rustemperor/assetkit/batch"
	"github.com/rustemperor/assetkit/cmd/ak/internal/bootstrap"
	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
	"github.com/rustemperor/assetkit/cmd/ak/internal/golang/base"
	"github.com/rustemperor/assetkit/cmd/ak/internal/report"
)

const (
	DefaultSrc   = "RustEmperorOriginal/images"
	DefaultDst   = "static/images"
	DefaultScale = 4
)

var CmdUpscale = &base.Command{
	Run:        runUpscale,
	UsageLine:  "ak upscale [flags]",
	Short:      "upscales pixel-art images with nearest-neighbour sampling",
	FlagMask:   cfg.OmitGradientFlags,
	PrintFlags: true,
	Long: `
Upscales every PNG image of the source directory by an integer factor and
writes the result under the same name to the target directory, which is
created if needed.

Nearest-neighbour sampling copies each source pixel into a square block, so
hard pixel-art edges stay sharp.  An empty source directory is not an error.
`,
}

var (
	srcDir string
	dstDir string
	scale  int
)

func init() {
	CmdUpscale.Flag.StringVar(&srcDir, "src", DefaultSrc, "source `directory`")
	CmdUpscale.Flag.StringVar(&dstDir, "dst", DefaultDst, "target `directory`")
	CmdUpscale.Flag.IntVar(&scale, "scale", DefaultScale, "scale `factor`")
}

func runUpscale(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	transform, err := bootstrap.Upscaler(scale)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		base.SetExitStatus(base.SGenericError)
		return fmt.Errorf("unable to create target directory: %w", err)
	}

	files, err := batch.Scan(srcDir)
	if err != nil && !errors.Is(err, batch.ErrNoDirectory) {
		base.SetExitStatus(base.SGenericError)
		return err
	}
	if len(files) == 0 {
		report.Info("No PNG files found in %s", srcDir)
		return nil
	}

	report.Info("Upscaling %d images with %dx nearest-neighbor scaling...", len(files), scale)

	var progress batch.Progress
	cfg.RegisterSigInfoReporter(progress.Info)
	job := batch.Job{
		SrcDir:      srcDir,
		DstDir:      dstDir,
		Transform:   transform,
		Compression: png.DefaultCompression,
		OnResult:    report.Upscaled,
		Progress:    &progress,
		Logger:      cfg.Log,
	}
	sum, err := job.Run(ctx, files)
	report.Summary("Upscaling complete", sum)
	if err != nil {
		return err
	}
	report.Info("Done! All images saved to %s", dstDir)
	cfg.Log.DebugContext(ctx, "upscale finished", "src", srcDir, "dst", dstDir, "succeeded", sum.Succeeded, "failed", sum.Failed)
	return nil
}

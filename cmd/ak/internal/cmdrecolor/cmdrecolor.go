// Package cmdrecolor provides the recolouring subcommand.
package cmdrecolor

import (
	"context"
	"fmt"

	"github.com/rustemperor/assetkit/batch"
	"github.com/rustemperor/assetkit/cmd/ak/internal/bootstrap"
	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
	"github.com/rustemperor/assetkit/cmd/ak/internal/golang/base"
	"github.com/rustemperor/assetkit/cmd/ak/internal/report"
)

// DefaultDir is the directory recoloured when -dir is not given.
const DefaultDir = "static/images"

var CmdRecolor = &base.Command{
	Run:        runRecolor,
	UsageLine:  "ak recolor [flags]",
	Short:      "recolours grayscale images with the parchment and gold gradient",
	PrintFlags: true,
	Long: `
Recolours every PNG image in the directory, in place.

Each pixel's luminance, the plain mean of its red, green and blue channels,
picks a colour on the gradient from -dark (black) to -light (white).  The
alpha channel is kept.  Images that fail to load or save are reported and
skipped; the command fails only if the directory is missing or has no PNG
files.
`,
}

var dir string

func init() {
	CmdRecolor.Flag.StringVar(&dir, "dir", DefaultDir, "images `directory`, files are overwritten")
}

func runRecolor(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) > 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	g, err := bootstrap.Gradient()
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	transform, err := bootstrap.Recolorer(g)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	files, err := batch.Scan(dir)
	if err != nil {
		base.SetExitStatus(base.SGenericError)
		return err
	}
	if len(files) == 0 {
		base.SetExitStatus(base.SGenericError)
		return fmt.Errorf("%w in %q", batch.ErrNoFiles, dir)
	}

	report.Info("Found %d images to recolor", len(files))
	report.Info("Colors: %s", g)
	report.Rule()

	var progress batch.Progress
	cfg.RegisterSigInfoReporter(progress.Info)
	job := batch.Job{
		SrcDir:    dir,
		DstDir:    dir,
		Transform: transform,
		OnResult:  report.Recolored,
		Progress:  &progress,
		Logger:    cfg.Log,
	}
	sum, err := job.Run(ctx, files)
	report.Rule()
	report.Summary("Recoloring complete", sum)
	if err != nil {
		return err
	}
	cfg.Log.DebugContext(ctx, "recolor finished", "dir", dir, "succeeded", sum.Succeeded, "failed", sum.Failed)
	return nil
}

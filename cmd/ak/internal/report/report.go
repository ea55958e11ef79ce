// Package report prints the progress of a batch run to the console.
package report

import (
	"github.com/pterm/pterm"

	"github.com/rustemperor/assetkit/batch"
)

// Info prints an informational line.
func Info(format string, a ...any) {
	pterm.Info.Printfln(format, a...)
}

// Rule prints a separator.
func Rule() {
	pterm.Println(pterm.Gray("------------------------------------------------------------"))
}

// Recolored reports the outcome of one recoloured file.
func Recolored(r batch.Result) {
	if !r.OK() {
		failed(r)
		return
	}
	pterm.Success.Printfln("%s", r.File)
}

// Upscaled reports the outcome of one upscaled file with its dimensions.
func Upscaled(r batch.Result) {
	if !r.OK() {
		failed(r)
		return
	}
	pterm.Success.Printfln("%s: %dx%d → %dx%d", r.File, r.Size.X, r.Size.Y, r.Out.X, r.Out.Y)
}

func failed(r batch.Result) {
	pterm.Error.Printfln("%s (%s): %v", r.File, r.Class, r.Err)
}

// Summary prints the counts of the run.
func Summary(title string, sum batch.Summary) {
	if sum.Failed > 0 {
		pterm.Warning.Printfln("%s: processed %d images, %d succeeded, %d failed.", title, sum.Total(), sum.Succeeded, sum.Failed)
		return
	}
	pterm.Success.Printfln("%s: processed %d images.", title, sum.Total())
}

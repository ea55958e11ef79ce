package cfg

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustemperor/assetkit/batch"
)

func TestSetBaseFlags(t *testing.T) {
	tests := []struct {
		name        string
		mask        FlagMask
		wantPresent []string
		wantAbsent  []string
	}{
		{
			name:        "default",
			mask:        DefaultFlags,
			wantPresent: []string{"trace", "log", "log-json", "v", "dark", "light", "levels", "dither"},
		},
		{
			name:        "omit gradient",
			mask:        OmitGradientFlags,
			wantPresent: []string{"trace", "log", "log-json", "v"},
			wantAbsent:  []string{"dark", "light", "levels", "dither"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet(tt.name, flag.ContinueOnError)
			SetBaseFlags(fs, tt.mask)
			for _, name := range tt.wantPresent {
				assert.NotNil(t, fs.Lookup(name), name)
			}
			for _, name := range tt.wantAbsent {
				assert.Nil(t, fs.Lookup(name), name)
			}
		})
	}
}

func TestSetBaseFlags_parse(t *testing.T) {
	dark, levels := Dark, Levels
	t.Cleanup(func() { Dark, Levels = dark, levels })

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	SetBaseFlags(fs, DefaultFlags)
	assert.NoError(t, fs.Parse([]string{"-dark", "#000000", "-levels", "4"}))
	assert.Equal(t, "#000000", Dark)
	assert.Equal(t, 4, Levels)
}

func TestSigInfo(t *testing.T) {
	old := sigReporters
	t.Cleanup(func() { sigReporters = old })
	sigReporters = nil

	RegisterSigInfoReporter(nil)
	RegisterSigInfoReporter(func(w io.Writer) { io.WriteString(w, "one\n") })
	RegisterSigInfoReporter(func(w io.Writer) { io.WriteString(w, "two\n") })

	var buf bytes.Buffer
	SigInfo(&buf)
	assert.Equal(t, "one\ntwo\n", buf.String())
	SigInfo(nil)
}

func TestSigInfo_progress(t *testing.T) {
	old := sigReporters
	t.Cleanup(func() { sigReporters = old })
	sigReporters = nil

	var progress batch.Progress
	RegisterSigInfoReporter(progress.Info)

	var buf bytes.Buffer
	SigInfo(&buf)
	assert.Equal(t, "files: 0/0 processed, 0 failed, last: \"\"\n", buf.String())
}

package batch

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rustemperor/assetkit/bitmap"
)

// Transform produces the output image for one decoded source image.
type Transform func(img image.Image) (image.Image, error)

// Job applies Transform to files of SrcDir and writes the results under the
// same names to DstDir.  SrcDir and DstDir may be the same directory, in which
// case the files are overwritten.
type Job struct {
	SrcDir    string
	DstDir    string
	Transform Transform
	// Compression is the PNG compression level of the output,
	// png.DefaultCompression if zero.
	Compression png.CompressionLevel
	// OnResult, if set, is called after each file is processed.
	OnResult func(Result)
	// Progress, if set, is updated as files are processed.
	Progress *Progress
	// Logger receives per-file messages, slog.Default() if nil.
	Logger *slog.Logger
}

func (j *Job) logger() *slog.Logger {
	if j.Logger == nil {
		return slog.Default()
	}
	return j.Logger
}

// Result is the outcome of processing one file.
type Result struct {
	File  string      // file name
	Src   string      // source path
	Dst   string      // destination path
	Size  image.Point // source dimensions
	Out   image.Point // output dimensions
	Class Class       // ClassNone on success
	Err   error
}

// OK reports whether the file was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary collects the results of a run in processing order.
type Summary struct {
	Results   []Result
	Succeeded int
	Failed    int
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	if r.OK() {
		s.Succeeded++
	} else {
		s.Failed++
	}
}

// Total returns the number of processed files.
func (s Summary) Total() int {
	return len(s.Results)
}

// Failures returns the results of the files that failed.
func (s Summary) Failures() []Result {
	var ret []Result
	for _, r := range s.Results {
		if !r.OK() {
			ret = append(ret, r)
		}
	}
	return ret
}

// Run processes files one after another.  A failing file is recorded in the
// Summary and does not stop the run.  The context is checked between files;
// if it is cancelled, Run returns the results so far and the context error.
func (j *Job) Run(ctx context.Context, files FileSet) (Summary, error) {
	var sum Summary
	j.Progress.start(len(files))
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		res := j.process(ctx, name)
		sum.add(res)
		j.Progress.done(res)
		if j.OnResult != nil {
			j.OnResult(res)
		}
	}
	return sum, nil
}

func (j *Job) process(ctx context.Context, name string) Result {
	it := newItem(name, filepath.Join(j.SrcDir, name), filepath.Join(j.DstDir, name))
	lg := j.logger().With("file", name)

	res := Result{File: it.Name, Src: it.Src, Dst: it.Dst}
	if err := j.processItem(ctx, it, &res); err != nil {
		res.Err = err
		res.Class = it.class
		lg.WarnContext(ctx, "failed to process file", "class", res.Class, "error", err)
		return res
	}
	lg.DebugContext(ctx, "file processed", "src", it.Src, "dst", it.Dst, "size", res.Size, "out", res.Out)
	return res
}

func (j *Job) processItem(ctx context.Context, it *Item, res *Result) error {
	img, err := j.load(ctx, it)
	if err != nil {
		return err
	}
	res.Size = img.Bounds().Size()

	out, err := j.Transform(img)
	if err != nil {
		return it.fail(ctx, fmt.Errorf("transform: %w", err))
	}
	if err := it.advance(ctx, itemEvtTransform); err != nil {
		return err
	}
	res.Out = out.Bounds().Size()

	if err := j.write(it, out); err != nil {
		return it.fail(ctx, fmt.Errorf("write: %w", err))
	}
	return it.advance(ctx, itemEvtWrite)
}

// load opens and decodes the source.  The file is closed before load
// returns.
func (j *Job) load(ctx context.Context, it *Item) (image.Image, error) {
	f, err := os.Open(it.Src)
	if err != nil {
		return nil, it.fail(ctx, err)
	}
	defer f.Close()
	if err := it.advance(ctx, itemEvtOpen); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, it.fail(ctx, fmt.Errorf("decode: %w", err))
	}
	if err := it.advance(ctx, itemEvtDecode); err != nil {
		return nil, err
	}
	return img, nil
}

// write creates (or truncates) the destination and encodes img into it.
func (j *Job) write(it *Item, img image.Image) error {
	f, err := os.Create(it.Dst)
	if err != nil {
		return err
	}
	if err := bitmap.Encode(f, img, j.Compression); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package batch

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Progress counts processed files.  It is safe to read from another goroutine
// while a Job is running, i.e. from a signal handler.  A nil Progress is a
// no-op.
type Progress struct {
	total     atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
	current   atomic.Value // string
}

func (p *Progress) start(total int) {
	if p == nil {
		return
	}
	p.total.Store(int64(total))
	p.processed.Store(0)
	p.failed.Store(0)
	p.current.Store("")
}

func (p *Progress) done(r Result) {
	if p == nil {
		return
	}
	p.processed.Add(1)
	if !r.OK() {
		p.failed.Add(1)
	}
	p.current.Store(r.File)
}

// Counts returns the number of processed and failed files and the total.
func (p *Progress) Counts() (processed, failed, total int) {
	if p == nil {
		return 0, 0, 0
	}
	return int(p.processed.Load()), int(p.failed.Load()), int(p.total.Load())
}

// Info writes a one line status report to w.
func (p *Progress) Info(w io.Writer) {
	processed, failed, total := p.Counts()
	last, _ := p.lastFile()
	fmt.Fprintf(w, "files: %d/%d processed, %d failed, last: %q\n", processed, total, failed, last)
}

func (p *Progress) lastFile() (string, bool) {
	if p == nil {
		return "", false
	}
	s, ok := p.current.Load().(string)
	return s, ok
}

package cfg

import "io"

// InfoReportFunc writes a status report of a running command to w.
type InfoReportFunc func(w io.Writer)

var sigReporters []InfoReportFunc

// RegisterSigInfoReporter adds fn to the reporters run by SigInfo.  Batch
// commands register the Info method of the batch.Progress of the current
// run, so the report shows how many files are done.  Nil fn is ignored.
func RegisterSigInfoReporter(fn InfoReportFunc) {
	if fn == nil {
		return
	}
	sigReporters = append(sigReporters, fn)
}

// SigInfo runs the registered reporters in registration order.  It is
// called from the signal handler goroutine, so reporters must only read
// state that is safe for concurrent access.
func SigInfo(w io.Writer) {
	if w == nil {
		return
	}
	for _, fn := range sigReporters {
		fn(w)
	}
}

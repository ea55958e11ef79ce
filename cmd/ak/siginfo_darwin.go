package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
)

// trapSigInfo prints the progress of the batch run on SIGINFO (Ctrl+T) or
// SIGUSR1.
func trapSigInfo() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINFO, syscall.SIGUSR1)
	go func() {
		for range ch {
			fmt.Fprint(os.Stderr, "ASSETKIT STATUS REPORT\n")
			cfg.SigInfo(os.Stderr)
		}
	}()
}

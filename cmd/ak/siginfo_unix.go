//go:build !darwin && !windows

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
)

// trapSigInfo prints the status report on SIGUSR1, there's no SIGINFO here.
func trapSigInfo() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	go func() {
		for range ch {
			fmt.Fprint(os.Stderr, "ASSETKIT STATUS REPORT\n")
			cfg.SigInfo(os.Stderr)
		}
	}()
}

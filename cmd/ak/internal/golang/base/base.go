// Package base defines shared basic pieces of the ak command,
// in particular the Command structure and exit handling.
//
// It is modelled after cmd/go/internal/base from the Go distribution.
package base

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rustemperor/assetkit/cmd/ak/internal/cfg"
)

// A Command is an implementation of an ak command
// like ak recolor or ak upscale.
type Command struct {
	// Run runs the command.
	// The args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	// The words between "ak" and the first flag or argument in the line are
	// taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'ak help' output.
	Short string

	// Long is the long message shown in the 'ak help <this-command>' output.
	Long string

	// Flag is a set of flags specific to this command.
	Flag flag.FlagSet

	// FlagMask is the mask of the base flags that the command does not use.
	FlagMask cfg.FlagMask

	// PrintFlags tells help to print the flag defaults.
	PrintFlags bool

	// Commands lists the available commands and help topics.
	// The order here is the order in which they are printed by 'ak help'.
	// Note that subcommands are in general best avoided.
	Commands []*Command
}

var AkCommand = &Command{
	UsageLine: "ak",
	Long: `ak is the asset kit of the game's static asset pipeline.

It recolours grayscale artwork into the parchment and gold theme and
upscales pixel-art sprites without smoothing them.`,
	// Commands initialised in package main
}

// LongName returns the command's long name: all the words in the usage line
// between "ak" and a flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == "ak" {
		return ""
	}
	return strings.TrimPrefix(name, "ak ")
}

// Name returns the command's short name: the last word in the usage line
// before a flag or argument.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	if c.PrintFlags {
		c.Flag.SetOutput(os.Stderr)
		c.Flag.PrintDefaults()
	}
	fmt.Fprintf(os.Stderr, "Run 'ak help %s' for details.\n", c.LongName())
	SetExitStatus(SInvalidParameters)
	Exit()
}

// Runnable reports whether the command can be run; otherwise
// it is a documentation pseudo-command.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

var (
	atExitFuncs []func()
	exitStatus  = SNoError
	exitMu      sync.Mutex
)

// AtExit registers f to be called by Exit, in registration order.
func AtExit(f func()) {
	atExitFuncs = append(atExitFuncs, f)
}

// Exit runs the registered exit functions and terminates the process with the
// current exit status.
func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(int(ExitStatus()))
}

// SetExitStatus sets the status the process will exit with.
func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	exitStatus = n
	exitMu.Unlock()
}

// ExitStatus returns the current exit status.
func ExitStatus() StatusCode {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

// Usage is the usage-reporting function, filled in by package main
// but here for reference by other packages.
var Usage func()

// CmdName is the name of the command being run, i.e. "recolor".
var CmdName string

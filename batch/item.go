package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/looplab/fsm"
)

// Class classifies a per-file failure by the stage it happened in.
type Class int

const (
	ClassNone      Class = iota // no error
	ClassOpen                   // source could not be opened
	ClassDecode                 // source is a broken PNG
	ClassFormat                 // source is not a recognised image format
	ClassTransform              // transform rejected the image
	ClassWrite                  // output could not be created or encoded
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassOpen:
		return "open"
	case ClassDecode:
		return "decode"
	case ClassFormat:
		return "format"
	case ClassTransform:
		return "transform"
	case ClassWrite:
		return "write"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// item states.
const (
	statePending     = "pending"
	stateOpened      = "opened"
	stateDecoded     = "decoded"
	stateTransformed = "transformed"
	stateWritten     = "written"
	stateFailed      = "failed"
)

// item events.
const (
	itemEvtOpen      = "open"
	itemEvtDecode    = "decode"
	itemEvtTransform = "transform"
	itemEvtWrite     = "write"
	itemEvtFail      = "fail"
)

/*
	pending --> opened --> decoded --> transformed --> written
	   |          |           |             |
	   +----------+-----------+-------------+------> failed
*/

var itemFsmEvts = []fsm.EventDesc{
	{Name: itemEvtOpen, Src: []string{statePending}, Dst: stateOpened},
	{Name: itemEvtDecode, Src: []string{stateOpened}, Dst: stateDecoded},
	{Name: itemEvtTransform, Src: []string{stateDecoded}, Dst: stateTransformed},
	{Name: itemEvtWrite, Src: []string{stateTransformed}, Dst: stateWritten},
	{
		Name: itemEvtFail,
		Src:  []string{statePending, stateOpened, stateDecoded, stateTransformed},
		Dst:  stateFailed,
	},
}

// Item tracks one file through the pipeline.
type Item struct {
	Name string // file name
	Src  string // source path
	Dst  string // destination path

	class Class
	err   error
	sm    *fsm.FSM
}

func newItem(name, src, dst string) *Item {
	it := &Item{
		Name: name,
		Src:  src,
		Dst:  dst,
	}
	it.sm = fsm.NewFSM(statePending, itemFsmEvts, fsm.Callbacks{
		"enter_state": func(ctx context.Context, e *fsm.Event) {
			slog.DebugContext(ctx, "item state changed", "file", it.Name, "from", e.Src, "to", e.Dst)
		},
	})
	return it
}

// State returns the current lifecycle state.
func (it *Item) State() string {
	return it.sm.Current()
}

// advance moves the item to the next stage.
func (it *Item) advance(ctx context.Context, event string) error {
	if err := it.sm.Event(ctx, event); err != nil {
		return fmt.Errorf("%s: %w", it.Name, err)
	}
	return nil
}

// fail records err, classified by the current state, and moves the item to the
// failed state.  It returns err for convenience.
func (it *Item) fail(ctx context.Context, err error) error {
	it.class = classify(it.State(), err)
	it.err = err
	if evtErr := it.sm.Event(ctx, itemEvtFail); evtErr != nil {
		slog.WarnContext(ctx, "unable to mark item as failed", "file", it.Name, "state", it.State(), "error", evtErr)
	}
	return err
}

func classify(state string, err error) Class {
	switch state {
	case statePending:
		return ClassOpen
	case stateOpened:
		if errors.Is(err, image.ErrFormat) {
			return ClassFormat
		}
		return ClassDecode
	case stateDecoded:
		return ClassTransform
	case stateTransformed:
		return ClassWrite
	}
	return ClassNone
}

package base

import "strconv"

// StatusCode is the process exit status.
type StatusCode uint8

const (
	SNoError           StatusCode = iota // 0
	SGenericError                        // 1
	SInvalidParameters                   // 2
	SHelpRequested                       // 3
	SApplicationError                    // 4
)

func (s StatusCode) String() string {
	switch s {
	case SNoError:
		return "NoError"
	case SGenericError:
		return "GenericError"
	case SInvalidParameters:
		return "InvalidParameters"
	case SHelpRequested:
		return "HelpRequested"
	case SApplicationError:
		return "ApplicationError"
	}
	return "StatusCode(" + strconv.Itoa(int(s)) + ")"
}

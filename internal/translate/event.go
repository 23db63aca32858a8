package translate

import (
	"errors"
	"fmt"
)

// Level indicates the severity of an event.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Event is a diagnostic emitted during translation.
type Event struct {
	Message   string
	Level     Level
	InputLine int
}

// ErrNoScore is wrapped by the FatalError returned for a nil score.
var ErrNoScore = errors.New("no score to translate")

// FatalError aborts a translation.
type FatalError struct {
	InputLine int
	Message   string
	Err       error
}

func (e *FatalError) Error() string {
	if e.InputLine > 0 {
		return fmt.Sprintf("line %d: %s", e.InputLine, e.Message)
	}
	return e.Message
}

func (e *FatalError) Unwrap() error { return e.Err }

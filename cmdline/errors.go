package cmdline

import "fmt"

// SyntaxError describes input that could not be tokenized. Offset counts
// code points from the start of the line.
type SyntaxError struct {
	Offset    int
	Msg       string
	Remainder string
}

func (e *SyntaxError) Error() string {
	if e.Remainder == "" {
		return fmt.Sprintf("%d: %s", e.Offset+1, e.Msg)
	}
	return fmt.Sprintf("%d: %s near %q", e.Offset+1, e.Msg, e.Remainder)
}

// LineError is a SyntaxError located within a script.
type LineError struct {
	Line int
	Err  *SyntaxError
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Err.Offset+1, e.Err.Msg)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

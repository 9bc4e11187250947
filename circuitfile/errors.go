package circuitfile

import "fmt"

// OpenError reports that a circuit file could not be opened for reading.
type OpenError struct {
	Path  string
	Cause error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opening circuit file %s: %v", e.Path, e.Cause)
}

func (e *OpenError) Unwrap() error { return e.Cause }

// ValueError reports a malformed integer value in strict mode.
type ValueError struct {
	Key   string
	Value string
	Line  int // 1-based line number
	Cause error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("line %d: invalid integer %q for key %q", e.Line, e.Value, e.Key)
}

func (e *ValueError) Unwrap() error { return e.Cause }

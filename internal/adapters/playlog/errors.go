package playlog

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel kind for every row that cannot be used.
var ErrMalformedInput = errors.New("malformed play log")

// Sentinel reasons wrapped by MalformedInputError.
var (
	ErrTooFewFields  = errors.New("too few fields")
	ErrEmptyPlayerID = errors.New("empty player id")
	ErrInvalidScore  = errors.New("score is not an integer")
)

// MalformedInputError describes a log row that aborts aggregation.
type MalformedInputError struct {
	Line  int    // 1-based line in the input
	Field string // column name, empty for row-level problems
	Value string // offending raw value
	Err   error  // underlying reason
}

func (e *MalformedInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: line %d: %v", ErrMalformedInput, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %s %q: %v", ErrMalformedInput, e.Line, e.Field, e.Value, e.Err)
}

// Is reports ErrMalformedInput as the kind of every MalformedInputError.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

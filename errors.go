package nametags

import (
	"errors"
	"fmt"
)

// Sentinel errors for sheet generation failures.
var (
	ErrNoTemplate      = errors.New("nametags: background requested but no template is configured")
	ErrInvalidGeometry = errors.New("nametags: invalid sheet geometry")
)

// GenError represents a failure in a specific step of generating a sheet.
// It wraps an underlying error and names the step for context.
type GenError struct {
	Op  string // step name, e.g. "fonts", "logo", "output"
	Err error  // underlying error
}

func (e *GenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nametags: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("nametags: %s: unknown error", e.Op)
}

func (e *GenError) Unwrap() error {
	return e.Err
}

func newGenError(op string, err error) *GenError {
	return &GenError{Op: op, Err: err}
}

package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for sheet rendering failures.
var (
	ErrNoLogo   = errors.New("render: logo has not been loaded")
	ErrLogo     = errors.New("render: logo is not a readable PNG")
	ErrFont     = errors.New("render: font is not a usable TrueType font")
	ErrTemplate = errors.New("render: background template is unreadable")
	ErrUnknown  = errors.New("render: unknown instruction kind")
)

// Error records the document operation that failed and why.
type Error struct {
	Op  string // operation name, e.g. "LoadLogo", "Output"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

package luigi

import (
	"errors"
	"fmt"
)

var (
	// ErrCreationFailed matches every *CreationError.
	ErrCreationFailed = errors.New("luigi: native constructor returned null")

	// Programmer contract violations. These are raised with panic, never returned.
	ErrDoubleInitialization = errors.New("luigi: toolkit initialised twice")
	ErrLoopBeforeInit       = errors.New("luigi: message loop entered before init")
	ErrLoopReentered        = errors.New("luigi: message loop entered while already running")

	ErrNotInitialized = errors.New("luigi: environment not initialised")
	ErrTerminated     = errors.New("luigi: environment terminated")
	ErrDestroyed      = errors.New("luigi: element or one of its ancestors was destroyed")
	ErrInvalidParent  = errors.New("luigi: invalid parent element")
	ErrInvalidString  = errors.New("luigi: string contains a NUL byte")
	ErrNilCallback    = errors.New("luigi: nil callback")
	ErrInvalidImage   = errors.New("luigi: image buffer does not match its dimensions")
)

// CreationError reports that the native constructor for Kind returned null.
// Nothing was wrapped and no further native call was made.
type CreationError struct {
	Kind Kind
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("luigi: failed to create %s", e.Kind)
}

// Is makes errors.Is(err, ErrCreationFailed) hold for any kind.
func (e *CreationError) Is(target error) bool {
	return target == ErrCreationFailed
}

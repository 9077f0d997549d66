package contact

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInFlight   = errors.New("submission already in flight")
	ErrInvalid    = errors.New("form validation failed")
	ErrSendFailed = errors.New("send failed")
)

// NewUnknownFieldError reports an UpdateField call with an unrecognized name.
func NewUnknownFieldError(name string) error {
	return fmt.Errorf("unknown form field: %s", name)
}

// WrapSendError tags a transport failure with the send-failed kind.
func WrapSendError(err error) error {
	return fmt.Errorf("%w: %w", ErrSendFailed, err)
}

// NewPanicError converts a recovered sender panic into an error.
func NewPanicError(v any) error {
	return fmt.Errorf("sender panicked: %v", v)
}

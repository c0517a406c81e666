package arr

import "errors"

// Sentinel errors returned by [InvokeMethod].
var (
	// ErrMethodNotFound is returned when an element has no exported method
	// with the requested name.
	ErrMethodNotFound = errors.New("arr: method not found")

	// ErrBadArguments is returned when the supplied arguments do not match
	// the method's parameter list.
	ErrBadArguments = errors.New("arr: arguments do not match method signature")
)

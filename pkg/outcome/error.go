package outcome

import "fmt"

// Error is an immutable domain error: a human-readable message plus a
// machine-readable code drawn from the caller's enumeration type E. The
// zero value has an empty message and the enumeration's zero member.
type Error[E comparable] struct {
	message string
	code    E
}

// NewError creates an Error from a message and a code.
func NewError[E comparable](message string, code E) Error[E] {
	return Error[E]{
		message: message,
		code:    code,
	}
}

// NewErrorCode creates an Error from a code alone; the message is empty.
func NewErrorCode[E comparable](code E) Error[E] {
	return NewError("", code)
}

// NewErrorMessage creates an Error from a message alone; the code is the
// enumeration's zero value.
func NewErrorMessage[E comparable](message string) Error[E] {
	var zero E
	return NewError(message, zero)
}

// Message returns the human-readable error message, possibly empty.
func (e Error[E]) Message() string {
	return e.message
}

// Code returns the machine-readable error code.
func (e Error[E]) Code() E {
	return e.code
}

// Error implements the error interface. It falls back to formatting the
// code when the message is empty.
func (e Error[E]) Error() string {
	if e.message == "" {
		return fmt.Sprintf("error code %v", e.code)
	}
	return e.message
}

package device

import (
	"errors"
	"fmt"
)

// TagMismatchError indicates that a response carried a different command
// tag than the request it answers.
type TagMismatchError struct {
	// Sent is the tag of the request
	Sent byte

	// Received is the tag the device answered with
	Received byte
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("invalid answer command received: '%c' (sent '%c')", e.Received, e.Sent)
}

// LengthMismatchError indicates that a response payload did not have the
// fixed length expected for the operation.
type LengthMismatchError struct {
	// Tag is the command the response belongs to
	Tag byte

	// Expected is the fixed response length for the operation
	Expected int

	// Received is the payload length the device actually sent
	Received int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("invalid length received for '%c': %d bytes, expected %d", e.Tag, e.Received, e.Expected)
}

// PageMismatchError indicates that the device echoed a different flash
// page number than the one requested.
type PageMismatchError struct {
	// Requested is the page number sent to the device
	Requested uint16

	// Received is the page number the device echoed
	Received uint16
}

func (e *PageMismatchError) Error() string {
	return fmt.Sprintf("bad page number received: %d (requested %d)", e.Received, e.Requested)
}

// IsTagMismatch returns true if the error is a TagMismatchError.
func IsTagMismatch(err error) bool {
	var e *TagMismatchError
	return errors.As(err, &e)
}

// IsLengthMismatch returns true if the error is a LengthMismatchError.
func IsLengthMismatch(err error) bool {
	var e *LengthMismatchError
	return errors.As(err, &e)
}

// IsPageMismatch returns true if the error is a PageMismatchError.
func IsPageMismatch(err error) bool {
	var e *PageMismatchError
	return errors.As(err, &e)
}

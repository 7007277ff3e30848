package services

import (
	"errors"
	"fmt"
)

// Common decode error causes
var (
	ErrUnexpectedEnd = errors.New("unexpected end of JSON input")
	ErrTrailingData  = errors.New("extra data after JSON value")
	ErrTooDeep       = errors.New("exceeded max nesting depth")
)

// DecodeError reports a body that is not exactly one JSON value
type DecodeError struct {
	Offset int64 // Byte offset at which decoding stopped
	Err    error // Underlying error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode body at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(offset int64, err error) *DecodeError {
	return &DecodeError{
		Offset: offset,
		Err:    err,
	}
}

// IsDecodeError returns true if err is or wraps a DecodeError
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

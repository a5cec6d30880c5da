package errors

import (
	"errors"
)

var (
	ErrInvalidStatusCode = errors.New("response status code is not valid")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidHeader     = errors.New("invalid header")

	ErrNotReadable = errors.New("stream is not readable")
	ErrNotWritable = errors.New("stream is not writable")
	ErrDetached    = errors.New("stream is detached")
)

// Package errs defines the sentinel errors returned by seqpack packages.
//
// Errors are wrapped with context using fmt.Errorf and the %w verb, so callers
// should match them with errors.Is:
//
//	_, err := arr.Get(idx)
//	if errors.Is(err, errs.ErrIndexOutOfRange) {
//	    // ...
//	}
package errs

import "errors"

var (
	// ErrIndexOutOfRange is returned when an element index, element range or seek
	// target falls outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrValueOutOfRange is returned when a stored value lies outside the declared domain.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidRange is returned when a value range or maximum value cannot be packed.
	ErrInvalidRange = errors.New("invalid value range")

	// ErrLengthOverflow is returned when an element count does not fit the byte
	// arithmetic of the platform.
	ErrLengthOverflow = errors.New("length overflow")

	// ErrClosed is returned by operations on a closed writer or reader.
	ErrClosed = errors.New("stream is closed")

	// ErrNotSeekable is returned by Seek on a reader opened for forward access only.
	ErrNotSeekable = errors.New("stream is not seekable")

	// ErrTruncated is returned when a file holds fewer chunks than its element count requires.
	ErrTruncated = errors.New("packed data truncated")

	// ErrInvalidConfig is returned for unrecognized encodings or value domains.
	ErrInvalidConfig = errors.New("invalid configuration")
)

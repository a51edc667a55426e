package squash

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// CodecError is the error type returned by every codec in this module. The
// WithMessage and Wrap methods return derived errors that still satisfy
// errors.Is for the original sentinel, so callers can both match on the
// error category and read a human-oriented description of what went wrong.
type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type baseCodecError string

const rootError = baseCodecError("")

// Invalid-parameter errors. The caller passed an argument outside the
// codec's documented domain; no decoding was attempted.
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")

// Malformed-input errors. The encoded stream itself is damaged or was not
// produced by the matching encoder.
var ErrMalformedInput = rootError.WithMessage("Malformed encoded stream")
var ErrTruncatedInput = rootError.WithMessage("Encoded stream ends unexpectedly")
var ErrUnknownCode = rootError.WithMessage("Unrecognized code in encoded stream")
var ErrNotPrefixFree = rootError.WithMessage("Code table is not prefix-free")

func (e baseCodecError) Error() string {
	return string(e)
}

func (e baseCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e baseCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}

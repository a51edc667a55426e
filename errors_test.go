package squash_test

import (
	"errors"
	"testing"

	"github.com/dargueta/squash"
	"github.com/stretchr/testify/assert"
)

func TestCodecErrorWithMessage(t *testing.T) {
	newErr := squash.ErrMalformedInput.WithMessage("asdfqwerty")
	assert.Equal(
		t, "Malformed encoded stream: asdfqwerty", newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, squash.ErrMalformedInput)
}

func TestCodecErrorWrap(t *testing.T) {
	originalErr := errors.New("original error")
	newErr := squash.ErrInvalidArgument.Wrap(originalErr)
	expectedMessage := "Invalid argument: original error"

	assert.EqualValues(t, expectedMessage, newErr.Error(), "error message is wrong")
	assert.ErrorIs(t, newErr, originalErr, "original error not set as parent")
	assert.ErrorIs(t, newErr, squash.ErrInvalidArgument, "sentinel not set as parent")
}

func TestCodecErrorSentinelsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, squash.ErrTruncatedInput, squash.ErrUnknownCode)
	assert.NotErrorIs(t, squash.ErrNotPrefixFree, squash.ErrInvalidArgument)
}

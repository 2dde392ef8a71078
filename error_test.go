package orgscout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := orgscout.Errorf(orgscout.ENOTFOUND, "source %q not found", "test")

	assert.Equal(t, orgscout.ENOTFOUND, orgscout.ErrorCode(err))
	assert.Equal(t, "source \"test\" not found", orgscout.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", orgscout.Errorf(orgscout.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, orgscout.EUNAVAILABLE, orgscout.ErrorCode(err))
	assert.Equal(t, "HTTP 503", orgscout.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, orgscout.EINTERNAL, orgscout.ErrorCode(err))
	assert.Equal(t, "Internal error", orgscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, orgscout.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, orgscout.ErrorMessage(nil))
}

package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundError("document not found")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidArgumentErrorf("bad %s", "input")))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(UnavailableError("index down")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestHTTPStatusSeesThroughWrapping(t *testing.T) {
	wrapped := WrapError(NotFoundError("document not found"), "load detail")
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
	assert.Nil(t, WrapError(nil, "ignored"))
}

func TestAppErrorMessage(t *testing.T) {
	err := InvalidArgumentError("unsupported extension")

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ARGUMENT", appErr.Code)
	assert.Equal(t, "unsupported extension", appErr.Message)
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT: unsupported extension")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

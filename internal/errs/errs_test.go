package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestHTTPErrorJSONUsesMsg(t *testing.T) {
	body, err := json.Marshal(NewSweetNotFoundError(100500))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "Sweet with id: 100500 does not exist", decoded["msg"])
	assert.Equal(t, CodeSweetNotFound, decoded["code"])
	assert.EqualValues(t, http.StatusNotFound, decoded["status"])
	assert.NotContains(t, decoded, "errors")
}

func TestSweetErrors(t *testing.T) {
	missing := NewMissingFieldError()
	assert.Equal(t, http.StatusBadRequest, missing.Status)
	assert.Equal(t, MsgMissingField, missing.Error())
	assert.Equal(t, CodeMissingField, missing.Code)

	negative := NewNegativeCaloriesError()
	assert.Equal(t, http.StatusBadRequest, negative.Status)
	assert.Equal(t, "Calories can't be negative", negative.Message)
	assert.NotEqual(t, CodeMissingField, negative.Code)
}

func TestHTTPErrorIsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", NewSweetNotFoundError(7))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "Sweet with id: 7 does not exist", httpErr.Message)
}

func TestDefaultCodes(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", NewBadRequestError("x", false, nil, nil).Code)
	assert.Equal(t, "NOT_FOUND", NewNotFoundError("x", false, nil).Code)

	internal := NewInternalServerError()
	assert.Equal(t, "INTERNAL_SERVER_ERROR", internal.Code)
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
}

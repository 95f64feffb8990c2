package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := ValidationError("Please enter at least one midpoint value.")
	wrapped := Wrap(base, "calculation failed")

	assert.Equal(t, CodeValidationError, GetCode(wrapped))
	assert.Equal(t, "calculation failed: Please enter at least one midpoint value.", wrapped.Error())
	assert.Equal(t, "Please enter at least one midpoint value.", UserMessage(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrap_PlainError(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))

	err := Wrapf(stderrors.New("boom"), "step %d", 2)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "step 2: boom", err.Error())
}

func TestGetCode_ThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", InvalidInput("bad mode"))
	assert.True(t, HasCode(err, CodeInvalidInput))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("x")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(ValidationError("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("mode")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(InternalError("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("x")))
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(ErrCodeDocumentEmpty, "document text is empty")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeDocumentEmpty, err.Code)
	assert.Equal(t, "[ANL_001] document text is empty", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestErrorIncludesDetail(t *testing.T) {
	err := NotFound("assessment not found").WithDetail("id=abc")
	assert.Equal(t, "[COMMON_003] assessment not found: id=abc", err.Error())
}

func TestWithDetailDoesNotMutateReceiver(t *testing.T) {
	base := Internal("boom")
	detailed := base.WithDetail("extra")
	assert.Empty(t, base.Detail)
	assert.Equal(t, "extra", detailed.Detail)
}

func TestWithDetailOnNil(t *testing.T) {
	var err *AppError
	assert.Nil(t, err.WithDetail("ignored"))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeDatabaseError, "query failed"))
}

func TestWrapPreservesChain(t *testing.T) {
	root := stderrors.New("connection refused")
	wrapped := Wrap(root, ErrCodeDatabaseError, "failed to store assessment")
	require.NotNil(t, wrapped)
	assert.True(t, stderrors.Is(wrapped, root))
	assert.Equal(t, ErrCodeDatabaseError, GetCode(wrapped))
}

func TestWrapWithUnknownCodePreservesOriginal(t *testing.T) {
	inner := New(ErrCodeAssessmentNotFound, "not found")
	outer := Wrap(inner, CodeUnknown, "loading record")
	assert.Equal(t, ErrCodeAssessmentNotFound, outer.Code)
}

func TestIsCodeTraversesChain(t *testing.T) {
	inner := New(ErrCodeCacheError, "redis down")
	outer := fmt.Errorf("analyze: %w", inner)
	assert.True(t, IsCode(outer, ErrCodeCacheError))
	assert.False(t, IsCode(outer, ErrCodeDatabaseError))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("gone")))
	assert.True(t, IsNotFound(New(ErrCodeAssessmentNotFound, "gone")))
	assert.False(t, IsNotFound(Internal("boom")))
	assert.False(t, IsNotFound(nil))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(InvalidParam("bad input")))
	assert.True(t, IsValidation(New(ErrCodeMetadataMissing, "meta required")))
	assert.False(t, IsValidation(NotFound("gone")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeConflict, GetCode(Conflict("dup")))
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAssessmentNotFound, http.StatusNotFound},
		{ErrCodeDocumentEmpty, http.StatusBadRequest},
		{ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{ErrCodeAnalysisFailed, http.StatusUnprocessableEntity}, // prefix fallback
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.code), "code %s", tt.code)
	}
}

//Personal.AI order the ending

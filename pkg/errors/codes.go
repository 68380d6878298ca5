package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeTimeout            ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
	ErrCodeSerialization      ErrorCode = "COMMON_009"
	ErrCodeDatabaseError      ErrorCode = "COMMON_010"
	ErrCodeCacheError         ErrorCode = "COMMON_011"
	ErrCodeNotImplemented     ErrorCode = "COMMON_012"
)

// Analysis pipeline error codes
const (
	ErrCodeDocumentEmpty      ErrorCode = "ANL_001"
	ErrCodeMetadataMissing    ErrorCode = "ANL_002"
	ErrCodeAnalysisFailed     ErrorCode = "ANL_003"
	ErrCodeAssessmentNotFound ErrorCode = "ANL_004"
)

// Catalog / configuration error codes
const (
	ErrCodeCatalogInvalid ErrorCode = "CAT_001"
	ErrCodeConfigInvalid  ErrorCode = "CFG_001"
)

// Short aliases used throughout the codebase.
const (
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeConflict     = ErrCodeConflict
	CodeRateLimit    = ErrCodeTooManyRequests
	CodeUnavailable  = ErrCodeServiceUnavailable
)

// httpStatusByPrefix maps a code's module prefix to a default HTTP status for
// codes that have no specific mapping.
var httpStatusByPrefix = map[string]int{
	"ANL": http.StatusUnprocessableEntity,
	"CAT": http.StatusInternalServerError,
	"CFG": http.StatusInternalServerError,
}

// httpStatusByCode maps individual error codes to HTTP statuses.
var httpStatusByCode = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeDocumentEmpty:      http.StatusBadRequest,
	ErrCodeMetadataMissing:    http.StatusBadRequest,
	ErrCodeAssessmentNotFound: http.StatusNotFound,
}

// HTTPStatus returns the HTTP status code associated with an ErrorCode.
// Unknown codes map to 500 so that unclassified failures are never reported
// as client errors.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	if idx := strings.Index(string(code), "_"); idx > 0 {
		if status, ok := httpStatusByPrefix[string(code)[:idx]]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

//Personal.AI order the ending

package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Document extraction errors
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	CodeExtractionFailure ErrorCode = "EXTRACTION_FAILURE"
	CodeInsufficientText  ErrorCode = "INSUFFICIENT_TEXT"

	// Completion service errors
	CodeMissingCredential ErrorCode = "MISSING_CREDENTIAL"
	CodeInvalidCredential ErrorCode = "INVALID_CREDENTIAL"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeRateLimited       ErrorCode = "RATE_LIMITED"
	CodeQuotaExceeded     ErrorCode = "QUOTA_EXCEEDED"
	CodeTimeout           ErrorCode = "TIMEOUT"
	CodeRemoteFailure     ErrorCode = "REMOTE_FAILURE"

	// Quiz construction errors
	CodeUnparsableResponse   ErrorCode = "UNPARSABLE_RESPONSE"
	CodeInvalidQuizStructure ErrorCode = "INVALID_QUIZ_STRUCTURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithContext attaches diagnostic key/value pairs to the error
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Helper functions for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewUnsupportedFormatError(extension string) *DomainError {
	if extension == ".pptx" {
		return NewError(CodeUnsupportedFormat, "PPTX files are not supported. Please use PDF or DOCX files.", nil)
	}
	return NewError(CodeUnsupportedFormat, fmt.Sprintf("Unsupported file type: %s. Only PDF and DOCX files are supported.", extension), nil)
}

func NewExtractionFailureError(format string, cause error) *DomainError {
	return NewError(CodeExtractionFailure, fmt.Sprintf("Failed to extract text from %s file", format), cause)
}

func NewInsufficientTextError(length int) *DomainError {
	return NewError(CodeInsufficientText,
		"Document does not contain enough text for quiz generation (minimum 100 characters required)", nil).
		WithContext("extracted_length", length)
}

func NewMissingCredentialError() *DomainError {
	return NewError(CodeMissingCredential, "Completion API key is not configured", nil)
}

func NewInvalidCredentialError() *DomainError {
	return NewError(CodeInvalidCredential, "Completion API key appears to be invalid (should start with sk-)", nil)
}

func NewUnauthorizedError(cause error) *DomainError {
	return NewError(CodeUnauthorized, "Completion service rejected the API key", cause)
}

func NewRateLimitedError(cause error) *DomainError {
	return NewError(CodeRateLimited, "Completion service rate limit exceeded. Please try again later.", cause)
}

func NewQuotaExceededError(cause error) *DomainError {
	return NewError(CodeQuotaExceeded, "Completion service quota exceeded. Please check your billing.", cause)
}

func NewTimeoutError(cause error) *DomainError {
	return NewError(CodeTimeout, "Completion request timed out. Please try again.", cause)
}

func NewRemoteFailureError(status int, cause error) *DomainError {
	return NewError(CodeRemoteFailure, "Completion service request failed", cause).
		WithContext("status", status)
}

func NewUnparsableResponseError(excerpt string) *DomainError {
	return NewError(CodeUnparsableResponse, "Failed to parse quiz JSON from completion response", nil).
		WithContext("response_excerpt", excerpt)
}

func NewInvalidQuizStructureError(message string) *DomainError {
	return NewError(CodeInvalidQuizStructure, message, nil)
}

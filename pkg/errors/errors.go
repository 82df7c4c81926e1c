// Package errors provides structured error handling for mdforge
package errors

import (
	"fmt"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// ErrorCode represents specific error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField  ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Configuration errors
	ErrCodeConfigError    ErrorCode = "CONFIG_ERROR"
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Rendering errors
	ErrCodeRenderError ErrorCode = "RENDER_ERROR"

	// Export errors
	ErrCodeExportError ErrorCode = "EXPORT_ERROR"
	ErrCodeEmptyGrid   ErrorCode = "EMPTY_GRID"

	// System errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// MDForgeError represents a structured error in mdforge
type MDForgeError struct {
	Type    types.ErrorType        `json:"type"`
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *MDForgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (caused by: %v)", e.Code, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *MDForgeError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *MDForgeError) WithDetail(key string, value interface{}) *MDForgeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new mdforge error
func New(errType types.ErrorType, code ErrorCode, message string) *MDForgeError {
	return &MDForgeError{
		Type:    errType,
		Code:    code,
		Message: message,
	}
}

// NewWithCause creates a new mdforge error with a cause
func NewWithCause(errType types.ErrorType, code ErrorCode, message string, cause error) *MDForgeError {
	return &MDForgeError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Validation error constructors
func NewValidationError(message string) *MDForgeError {
	return New(types.ErrorTypeValidation, ErrCodeValidation, message)
}

func NewInvalidInputError(message string) *MDForgeError {
	return New(types.ErrorTypeValidation, ErrCodeInvalidInput, message)
}

func NewMissingFieldError(field string) *MDForgeError {
	return New(types.ErrorTypeValidation, ErrCodeMissingField,
		fmt.Sprintf("missing required field: %s", field)).WithDetail("field", field)
}

// Configuration error constructors
func NewConfigError(message string) *MDForgeError {
	return New(types.ErrorTypeConfig, ErrCodeConfigError, message)
}

func NewConfigNotFoundError(configPath string) *MDForgeError {
	return New(types.ErrorTypeConfig, ErrCodeConfigNotFound,
		fmt.Sprintf("configuration file not found: %s", configPath)).WithDetail("config_path", configPath)
}

func NewConfigInvalidError(message string, cause error) *MDForgeError {
	return NewWithCause(types.ErrorTypeConfig, ErrCodeConfigInvalid, message, cause)
}

// Rendering error constructors
func NewRenderError(message string, cause error) *MDForgeError {
	return NewWithCause(types.ErrorTypeExternal, ErrCodeRenderError, message, cause)
}

// Export error constructors
func NewExportError(message string, cause error) *MDForgeError {
	return NewWithCause(types.ErrorTypeExternal, ErrCodeExportError, message, cause)
}

func NewEmptyGridError() *MDForgeError {
	return New(types.ErrorTypeValidation, ErrCodeEmptyGrid, "no sheets to export")
}

// Internal error constructors
func NewInternalError(message string) *MDForgeError {
	return New(types.ErrorTypeInternal, ErrCodeInternal, message)
}

// IsMDForgeError checks if an error is an MDForgeError
func IsMDForgeError(err error) bool {
	_, ok := err.(*MDForgeError)
	return ok
}

// GetMDForgeError extracts an MDForgeError from an error
func GetMDForgeError(err error) *MDForgeError {
	if ferr, ok := err.(*MDForgeError); ok {
		return ferr
	}
	return nil
}

// WrapError wraps an error as an MDForgeError
func WrapError(err error, errType types.ErrorType, code ErrorCode, message string) *MDForgeError {
	return NewWithCause(errType, code, message, err)
}

// ErrorList represents a list of errors
type ErrorList struct {
	Errors []*MDForgeError `json:"errors"`
}

// Error implements the error interface
func (el *ErrorList) Error() string {
	var messages []string
	for _, err := range el.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Add adds an error to the list
func (el *ErrorList) Add(err *MDForgeError) {
	el.Errors = append(el.Errors, err)
}

// HasErrors returns true if there are errors
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// ToError returns the ErrorList as an error if it has errors, otherwise nil
func (el *ErrorList) ToError() error {
	if el.HasErrors() {
		return el
	}
	return nil
}

// NewErrorList creates a new error list
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*MDForgeError, 0),
	}
}

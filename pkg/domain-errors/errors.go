// Package domainerrors carries error codes across layer boundaries so
// transport code can translate service failures without string matching.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain failure.
type Code string

const (
	CodeValidation   Code = "validation"
	CodeDuplicate    Code = "duplicate"
	CodeInvalidPhone Code = "invalid_phone"
	CodeConfig       Code = "config"
	CodeNotFound     Code = "not_found"
	CodeInternal     Code = "internal"
)

// Error is a code-tagged error with a human-readable message.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap annotates an underlying error with a code and message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to its HTTP status. Duplicate and invalid phone
// map to 400, matching the public API contract.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeDuplicate, CodeInvalidPhone:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConfig, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Package apperr provides the coded error type used at the application
// boundary and maps error chains to process exit statuses.
package apperr

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category.
type ErrorCode string

func (c ErrorCode) String() string { return string(c) }

const (
	CodeInternal       ErrorCode = "INTERNAL"
	CodeConfig         ErrorCode = "CONFIG"
	CodeModelLoad      ErrorCode = "MODEL_LOAD"
	CodeNoRootPathway  ErrorCode = "NO_ROOT_PATHWAY"
	CodeCyclicPathway  ErrorCode = "CYCLIC_PATHWAY"
	CodeDefaults       ErrorCode = "DEFAULTS"
	CodeOutput         ErrorCode = "OUTPUT"
	CodeInvalidCommand ErrorCode = "INVALID_COMMAND"
)

var exitCodes = map[ErrorCode]int{
	CodeInternal:       1,
	CodeModelLoad:      2,
	CodeNoRootPathway:  3,
	CodeCyclicPathway:  4,
	CodeConfig:         5,
	CodeDefaults:       6,
	CodeOutput:         7,
	CodeInvalidCommand: 64,
}

// AppError carries a code, a message and an optional cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Detail  string
	Cause   error
}

// Error formats as "[CODE] message: detail: cause", omitting empty parts.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *AppError) Unwrap() error { return e.Cause }

// WithDetail returns a copy of e with Detail set.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code to err. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// CodeOf returns the outermost code in err's chain, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// IsCode reports whether any AppError in err's chain has code.
func IsCode(err error, code ErrorCode) bool {
	for err != nil {
		var ae *AppError
		if !errors.As(err, &ae) {
			return false
		}
		if ae.Code == code {
			return true
		}
		err = ae.Cause
	}
	return false
}

// ExitCode maps err to a process exit status. A nil error is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if code, ok := exitCodes[CodeOf(err)]; ok {
		return code
	}
	return 1
}

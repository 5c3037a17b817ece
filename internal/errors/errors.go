// Package errors carries coded errors across the storage, catalog and
// service layers. The domain engines never return errors.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument" // bad caller input
	CodeNotFound        Code = "not_found"
	CodeInternal        Code = "internal"    // encoding failures
	CodeUnavailable     Code = "unavailable" // backing store unreachable
	CodeValidation      Code = "validation"  // malformed catalog data
)

// Error is a coded error with optional structured metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta sets a metadata key and returns the same error for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

func newf(code Code, format string, args []any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Code: code, Message: msg}
}

// NotFound reports a missing catalog record
func NotFound(format string, args ...any) *Error {
	return newf(CodeNotFound, format, args)
}

// InvalidArgument reports bad caller input
func InvalidArgument(format string, args ...any) *Error {
	return newf(CodeInvalidArgument, format, args)
}

// Validation reports malformed catalog data
func Validation(format string, args ...any) *Error {
	return newf(CodeValidation, format, args)
}

// Wrap adds context to err. The code and a copy of the metadata of the
// nearest coded error in the chain are kept; foreign errors get CodeUnknown.
// Wrap returns nil for a nil err.
func Wrap(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}

	wrapped := newf(CodeUnknown, format, args)
	wrapped.Cause = err

	var coded *Error
	if errors.As(err, &coded) {
		wrapped.Code = coded.Code
		wrapped.Meta = maps.Clone(coded.Meta)
	}
	return wrapped
}

// WrapWithCode is Wrap with the code replaced
func WrapWithCode(err error, code Code, format string, args ...any) *Error {
	wrapped := Wrap(err, format, args...)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func codeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

func IsNotFound(err error) bool        { return err != nil && codeOf(err) == CodeNotFound }
func IsInvalidArgument(err error) bool { return err != nil && codeOf(err) == CodeInvalidArgument }
func IsInternal(err error) bool        { return err != nil && codeOf(err) == CodeInternal }
func IsUnavailable(err error) bool     { return err != nil && codeOf(err) == CodeUnavailable }
func IsValidation(err error) bool      { return err != nil && codeOf(err) == CodeValidation }

// GetMeta returns the metadata of the nearest coded error, or nil
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

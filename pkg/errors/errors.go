// Package errors provides the coded errors returned by every ganzhi package.
//
// An [Error] carries a [Code] that callers branch on, a message written for
// people, and an optional cause. Codes survive wrapping: a chart file that
// fails to parse is an INVALID_CHART error whose cause may be an
// INVALID_PILLAR error, and [Is] finds either.
//
// Contract violations inside the core packages (an out-of-range stem, a
// malformed transit option mask) are not reported through this package; they
// panic. Errors here describe bad user input and queries the engine cannot
// answer.
//
// # Codes
//
//   - INVALID_*: input that cannot be parsed or validated
//   - FILE_NOT_FOUND, NOT_FOUND: missing chart or config files
//   - UNSUPPORTED: a year outside the range a transit sequence covers
//   - INTERNAL_ERROR: rendering and encoding failures
//
// # Usage
//
//	p, err := ganzhi.ParsePillar(s)
//	if errors.Is(err, errors.ErrCodeInvalidPillar) {
//	    ...
//	}
//
//	return errors.Wrap(errors.ErrCodeInvalidChart, err, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidSymbol     Code = "INVALID_SYMBOL"
	ErrCodeInvalidPillar     Code = "INVALID_PILLAR"
	ErrCodeInvalidChart      Code = "INVALID_CHART"
	ErrCodeInvalidOptions    Code = "INVALID_OPTIONS"
	ErrCodeInvalidDefinition Code = "INVALID_DEFINITION"
	ErrCodeInvalidRelation   Code = "INVALID_RELATION"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeUnsupported Code = "UNSUPPORTED"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with code and a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any [Error] in err's chain has code.
func Is(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
	}
	return false
}

// GetCode returns the code of the outermost [Error] in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost [Error] without its
// code, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Messages returns the messages along err's chain, outermost first. Coded
// errors contribute their message without the code; the first uncoded
// error ends the chain with its full text.
func Messages(err error) []string {
	var out []string
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return append(out, err.Error())
		}
		if e.Message != "" {
			out = append(out, e.Message)
		}
		err = e.Cause
	}
	return out
}

// UnsupportedYearError reports a transit query outside the covered range.
// Last is 0 for sequences without an end.
type UnsupportedYearError struct {
	Year    int
	First   int
	Last    int
	Transit string // "xiaoyun", "dayun" or "liunian"
}

func (e *UnsupportedYearError) Error() string {
	if e.Last > 0 {
		return fmt.Sprintf("%s: year %d outside %d..%d", e.Transit, e.Year, e.First, e.Last)
	}
	return fmt.Sprintf("%s: year %d before %d", e.Transit, e.Year, e.First)
}

// Code returns ErrCodeUnsupported.
func (e *UnsupportedYearError) Code() Code {
	return ErrCodeUnsupported
}

// Unsupported returns an UNSUPPORTED error caused by an
// [UnsupportedYearError].
func Unsupported(transit string, year, first, last int) *Error {
	cause := &UnsupportedYearError{Year: year, First: first, Last: last, Transit: transit}
	return Wrap(ErrCodeUnsupported, cause, "year %d not supported", year)
}

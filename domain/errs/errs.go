// Package errs defines the coded errors a scenario can fail with.
package errs

import (
	"errors"
	"fmt"
)

// Code classifies a scenario failure.
type Code string

const (
	Navigation    Code = "navigation"
	Interaction   Code = "interaction"
	Assertion     Code = "assertion"
	Configuration Code = "configuration"
	Internal      Code = "internal"
)

// Error is a coded scenario error. Step and Locator identify where the
// failure happened so reports can point at the offending element.
type Error struct {
	Code     Code
	Step     string
	Locator  string
	Expected string
	Actual   string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Locator != "" {
		msg = fmt.Sprintf("%s [locator %s]", msg, e.Locator)
	}
	if e.Err != nil && e.Message != "" {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, Err: cause}
}

// NavigationFailed reports a page that did not load.
func NavigationFailed(url string, cause error) error {
	return &Error{
		Code:    Navigation,
		Step:    "navigate",
		Message: fmt.Sprintf("failed to load %s", url),
		Err:     cause,
	}
}

// InteractionFailed reports an element that could not be found or used.
func InteractionFailed(step, locator string, cause error) error {
	return &Error{
		Code:    Interaction,
		Step:    step,
		Locator: locator,
		Message: fmt.Sprintf("%s failed", step),
		Err:     cause,
	}
}

// AssertionFailed reports observed DOM state that differs from expected.
func AssertionFailed(step, locator, expected, actual string) error {
	return &Error{
		Code:     Assertion,
		Step:     step,
		Locator:  locator,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("%s: expected %q, got %q", step, expected, actual),
	}
}

// AssertionTimedOut reports a condition the driver's bounded wait never
// observed.
func AssertionTimedOut(step, locator, expected string, cause error) error {
	return &Error{
		Code:     Assertion,
		Step:     step,
		Locator:  locator,
		Expected: expected,
		Message:  fmt.Sprintf("%s: %s not observed", step, expected),
		Err:      cause,
	}
}

// Configurationf reports a definition-time problem.
func Configurationf(format string, args ...any) error {
	return &Error{Code: Configuration, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the error code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return Internal
	}
	var coded *Error
	if errors.As(err, &coded) && coded.Code != "" {
		return coded.Code
	}
	return Internal
}

// LocatorOf returns the locator attached to err, if any.
func LocatorOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Locator
	}
	return ""
}

// IsInteraction reports whether err is an interaction failure. Only these
// trigger a fallback step.
func IsInteraction(err error) bool {
	return CodeOf(err) == Interaction
}

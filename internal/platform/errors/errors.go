// Package errors provides error types and utilities for setup-vim.
// It extends the standard errors package with additional context and wrapping capabilities.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedPlatform indicates the runner OS or architecture is not supported
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrCommandFailed indicates an external command exited with non-zero status
	ErrCommandFailed = errors.New("command failed")

	// ErrHTTPStatus indicates a non-2xx HTTP response
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrProtocolMismatch indicates a server replied with something other than what the protocol expects
	ErrProtocolMismatch = errors.New("protocol mismatch")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrNoAsset indicates no release asset matched the requested platform
	ErrNoAsset = errors.New("no matching release asset")

	// ErrUnknownArchive indicates the archive extension is not supported
	ErrUnknownArchive = errors.New("unknown archive format")

	// ErrRuntimeNotFound indicates no runtime directory could be located
	ErrRuntimeNotFound = errors.New("no runtime directory found")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	err := someOperation()
//	if err != nil {
//	    return errors.Wrap(err, "failed to perform operation")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// CommandError describes an external command that exited with a non-zero status.
type CommandError struct {
	Command  string
	Args     []string
	Dir      string
	ExitCode int
	Stderr   string
	Cause    error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command %q", strings.TrimSpace(e.Command+" "+strings.Join(e.Args, " ")))
	if e.Dir != "" {
		fmt.Fprintf(&b, " (in %s)", e.Dir)
	}
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " exited with status %d", e.ExitCode)
	} else {
		b.WriteString(" could not be run")
	}
	if e.Cause != nil && e.ExitCode < 0 {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		fmt.Fprintf(&b, "\nstderr:\n%s", stderr)
	}
	return b.String()
}

// Unwrap lets errors.Is match ErrCommandFailed.
func (e *CommandError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Cause}
}

// HTTPStatusError describes a non-2xx HTTP response.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string

	// RateLimited se activa con X-RateLimit-Remaining: 0 en un 403/429
	RateLimited bool
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed with status %s", e.URL, status)
}

// Unwrap lets errors.Is match ErrHTTPStatus, and ErrNotFound for 404.
func (e *HTTPStatusError) Unwrap() []error {
	if e.StatusCode == 404 {
		return []error{ErrHTTPStatus, ErrNotFound}
	}
	return []error{ErrHTTPStatus}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
// This is a convenience wrapper around errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// IsCommandFailed reports whether the error is an external command failure
func IsCommandFailed(err error) bool {
	return Is(err, ErrCommandFailed)
}

// IsHTTPStatus reports whether the error is a non-2xx HTTP response
func IsHTTPStatus(err error) bool {
	return Is(err, ErrHTTPStatus)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsUnsupportedPlatform reports whether the error is an unsupported platform error
func IsUnsupportedPlatform(err error) bool {
	return Is(err, ErrUnsupportedPlatform)
}

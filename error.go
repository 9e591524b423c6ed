package edugen

import (
	"errors"
	"fmt"
)

// Application error codes. They map loosely onto HTTP-style semantics but
// exist so callers can branch on failure kind without string matching.
const (
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EINTERNAL    = "internal"    // internal error
	EUNAVAILABLE = "unavailable" // external service unavailable
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("edugen error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an application error.
// Returns an empty string for nil and EINTERNAL for non-application errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an application
// error. Returns a generic message for non-application errors so internal
// details don't leak to users.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

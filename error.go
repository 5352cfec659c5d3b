package rfc

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("rfc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Retrieval failures report EUNAVAILABLE, or ENOTFOUND when the last
// attempted variant did not exist. Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var re *RetrievalError
	switch {
	case errors.As(err, &re):
		if errors.As(re.Err, &e) && e.Code == ENOTFOUND {
			return ENOTFOUND
		}
		return EUNAVAILABLE
	case errors.As(err, &e):
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var re *RetrievalError
	switch {
	case errors.As(err, &re):
		return re.Error()
	case errors.As(err, &e):
		return e.Message
	}
	return "Internal error."
}

// TransportError reports that raw content could not be fetched from URL.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports that fetched content could not be navigated as a
// document in the given format. It signals a fallback to the next format
// and is never returned by a Resolver on its own.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RetrievalError is returned once every format variant of a document has
// been attempted and failed. Format and Err describe the last attempt.
type RetrievalError struct {
	Number string
	Format Format
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("rfc %s: retrieval failed (last tried %s): %v", e.Number, e.Format, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

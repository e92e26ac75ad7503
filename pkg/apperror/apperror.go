package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a user facing message on top of a sentinel or driver error.
type Error struct {
	Code    string
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

func New(message string) error {
	return &Error{Message: message}
}

func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Message: message, Err: err}
}

func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

func NotFound(message string) error {
	return &Error{Code: "not_found", Message: message, Err: ErrNotFound}
}

func Forbidden(message string) error {
	return &Error{Code: "forbidden", Message: message, Err: ErrForbidden}
}

func Conflict(message string) error {
	return &Error{Code: "conflict", Message: message, Err: ErrConflict}
}

func BadRequest(message string) error {
	return &Error{Code: "bad_request", Message: message, Err: ErrBadRequest}
}

func Unauthorized(message string) error {
	return &Error{Code: "unauthorized", Message: message, Err: ErrUnauthorized}
}

// GetMessage returns the outermost message, or err.Error() for foreign errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsForbidden(err error) bool    { return errors.Is(err, ErrForbidden) }
func IsConflict(err error) bool     { return errors.Is(err, ErrConflict) }
func IsBadRequest(err error) bool   { return errors.Is(err, ErrBadRequest) }
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// Package apperr defines the closed set of failure kinds surfaced to API
// callers. Every kind maps to exactly one transport status in internal/http.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable, machine readable failure category.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindDuplicate       Kind = "duplicate"
	KindForbidden       Kind = "forbidden"
	KindInvalidToken    Kind = "invalid_token"
	KindInternal        Kind = "internal"
)

// Error carries a Kind, a human readable message and an optional cause.
type Error struct {
	Kind    Kind
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

// Is matches another *Error with the same kind and message, so sentinel
// values keep working after Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap returns a copy of sentinel with cause attached.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Message: sentinel.Message, Err: cause}
}

// KindOf reports the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the caller facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

var (
	ErrInvalidCredentials = New(KindInvalidArgument, "user credentials are invalid")
	ErrOwnerImmutable     = New(KindInvalidArgument, "user details cannot be modified")
	ErrEmptyProjectName   = New(KindInvalidArgument, "project name cannot be null or empty")
	ErrInvalidVisibility  = New(KindInvalidArgument, "visibility must be PUBLIC or PRIVATE")
	ErrEmptyCredentials   = New(KindInvalidArgument, "password or username cannot be null or empty")

	ErrProjectNotFound = New(KindNotFound, "project not found")
	ErrUserNotFound    = New(KindNotFound, "user not present in the database")
	ErrLoginFailed     = New(KindNotFound, "invalid username or password")

	ErrDuplicateProjectName = New(KindDuplicate, "project name has already been taken. Try a new one.")
	ErrDuplicateCredentials = New(KindDuplicate, "username or password has already been taken")

	ErrPrivateProject = New(KindForbidden, "requested project is a private project of someone else")
	ErrNotOwner       = New(KindForbidden, "project does not belong to current user")

	ErrInvalidToken = New(KindInvalidToken, "invalid token")
	ErrTokenExpired = New(KindInvalidToken, "token expired")
	ErrMissingToken = New(KindInvalidToken, "authentication required")
)

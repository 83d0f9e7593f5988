// Package apperr defines the error kinds the service layer is allowed to
// surface. Handlers match on these with errors.Is and translate them to
// HTTP status codes; anything else is an internal error.
package apperr

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrNotFound marks lookups whose id has no record behind it.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks business-rule conflicts such as a duplicate
	// company name or an already registered email.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials is returned for every login failure with the
	// same message, whatever the underlying cause.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NotFoundf builds an error that matches ErrNotFound under errors.Is but
// carries only the formatted message.
func NotFoundf(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds an error that matches ErrConflict under errors.Is but
// carries only the formatted message.
func Conflictf(format string, args ...any) error {
	return &kindError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// Package errs defines the domain error taxonomy shared by the service
// and HTTP layers. Services return tagged errors; handlers inspect the
// tag to pick an HTTP status and reuse the message verbatim in the
// response envelope.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind int

const (
	// KindNotFound marks a missing user, subscription or subscription type.
	KindNotFound Kind = iota
	// KindConflict marks uniqueness violations and ownership mismatches.
	KindConflict
)

// Error is a tagged domain error. The message is meant for the caller.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// NotFound builds a KindNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error with a formatted message.
func Conflict(format string, args ...any) error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err carries the KindNotFound tag anywhere
// in its chain.
func IsNotFound(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.kind == KindNotFound
}

// IsConflict reports whether err carries the KindConflict tag anywhere
// in its chain.
func IsConflict(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.kind == KindConflict
}

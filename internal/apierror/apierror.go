// Package apierror defines the typed failures the store layer returns and the
// error envelope clients see. All 4xx/5xx responses go through this package so
// internal details (driver errors, SQL) never leak to clients.
package apierror

import "fmt"

// Kind classifies a failure for HTTP translation.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindInternal
)

// Error is the canonical store-layer failure.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// NotFound reports that the requested record does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness or referential-integrity violation.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected persistence failure. The wrapped cause is kept
// for logs; Message is all a client ever sees.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", cause: cause}
}

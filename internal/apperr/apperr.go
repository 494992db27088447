// Package apperr defines the closed set of failures surfaced to users. Messages
// are generic and never carry store details.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindFetchFailed
	KindValidationFailed
	KindStoreWriteFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindFetchFailed:
		return "fetch_failed"
	case KindValidationFailed:
		return "validation_failed"
	case KindStoreWriteFailed:
		return "store_write_failed"
	default:
		return "none"
	}
}

type Error struct {
	Kind     Kind
	Resource string
	cause    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s not found.", capitalize(e.Resource))
	case KindFetchFailed:
		return fmt.Sprintf("Failed to fetch %s.", e.Resource)
	case KindValidationFailed:
		return fmt.Sprintf("Invalid %s.", e.Resource)
	case KindStoreWriteFailed:
		return fmt.Sprintf("Database Error: Failed to write %s.", e.Resource)
	default:
		return "Something went wrong."
	}
}

// Unwrap exposes the cause only when it was attached on purpose with WithCause.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause returns a copy carrying a cause that is safe to expose.
func (e *Error) WithCause(err error) *Error {
	cp := *e
	cp.cause = err

	return &cp
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Resource: resource}
}

func FetchFailed(resource string) *Error {
	return &Error{Kind: KindFetchFailed, Resource: resource}
}

func ValidationFailed(resource string) *Error {
	return &Error{Kind: KindValidationFailed, Resource: resource}
}

func StoreWriteFailed(resource string) *Error {
	return &Error{Kind: KindStoreWriteFailed, Resource: resource}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindNone
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}

	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}

	return string(b)
}

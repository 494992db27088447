package auth

import (
	"errors"
	"fmt"
)

// ErrorType classifies authentication failures shown to the user.
type ErrorType string

const (
	CredentialsSignin ErrorType = "CredentialsSignin"
	SessionFailed     ErrorType = "SessionFailed"
)

var (
	ErrInvalidCredentials = &Error{Type: CredentialsSignin}
	ErrInvalidSession     = errors.New("invalid session")
)

type Error struct {
	Type  ErrorType
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("auth: %s: %v", e.Type, e.cause)
	}

	return "auth: " + string(e.Type)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Type == e.Type
}

// Message returns the user-facing text for an authentication error. It
// reports false for anything else, which callers must treat as an internal
// failure.
func Message(err error) (string, bool) {
	var ae *Error
	if !errors.As(err, &ae) {
		return "", false
	}

	if ae.Type == CredentialsSignin {
		return "Invalid credentials.", true
	}

	return "Something went wrong.", true
}

package user

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is a dashboard account. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

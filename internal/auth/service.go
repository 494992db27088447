package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/user"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}

// Credentials is what the sign-in form submits.
type Credentials struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type Service struct {
	repo       Repository
	validate   *validator.Validate
	jwtSecret  []byte
	sessionTTL time.Duration
	bcryptCost int
}

func NewService(repo Repository, jwtSecret string, sessionTTL time.Duration, bcryptCost int) *Service {
	return &Service{
		repo:       repo,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// GetUser looks a user up by exact email. A missing user is not an error.
func (s *Service) GetUser(ctx context.Context, email string) (*user.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, nil
		}

		slog.Error("failed to fetch user", "error", err)

		return nil, apperr.FetchFailed("user")
	}

	return u, nil
}

// Authorize returns the user when the credentials match and nil otherwise.
// Malformed credentials are denied before the store is consulted. Only store
// failures are returned as errors.
func (s *Service) Authorize(ctx context.Context, creds Credentials) (*user.User, error) {
	if err := s.validate.Struct(creds); err != nil {
		slog.Info("Invalid credentials.")
		return nil, nil
	}

	u, err := s.GetUser(ctx, creds.Email)
	if err != nil {
		return nil, err
	}

	if u == nil {
		slog.Info("Invalid credentials.")
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(creds.Password)); err != nil {
		slog.Info("Invalid credentials.")
		return nil, nil
	}

	return u, nil
}

// SignIn authorizes creds and issues a session token. A denial is reported as
// ErrInvalidCredentials; store failures pass through unchanged.
func (s *Service) SignIn(ctx context.Context, creds Credentials) (string, error) {
	u, err := s.Authorize(ctx, creds)
	if err != nil {
		return "", err
	}

	if u == nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.generateJWT(u)
	if err != nil {
		return "", &Error{Type: SessionFailed, cause: err}
	}

	return token, nil
}

// UserFromSession resolves a session token to its user.
func (s *Service) UserFromSession(ctx context.Context, token string) (*user.User, error) {
	id, err := s.ParseSession(token)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidSession
		}

		return nil, fmt.Errorf("loading session user: %w", err)
	}

	return u, nil
}

// Register creates a dashboard account with a hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	if err := s.validate.Struct(registration{Name: name, Email: email, Password: password}); err != nil {
		return nil, apperr.ValidationFailed("user").WithCause(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{Name: name, Email: email, Password: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// SessionTTL is how long issued tokens stay valid.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

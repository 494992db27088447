package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/invoicedash/internal/user"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getOne(ctx, `SELECT id, name, email, password FROM users WHERE email = $1`, email)
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.getOne(ctx, `SELECT id, name, email, password FROM users WHERE id = $1`, id)
}

func (s *Store) getOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var u user.User

	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &u, nil
}

func (s *Store) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Password).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrEmailTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

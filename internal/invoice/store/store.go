package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const listedColumns = `
	i.id, i.amount, i.date, i.status, c.name, c.email, c.image_url
`

const listedFrom = `
	FROM invoices i
	JOIN customers c ON i.customer_id = c.id
`

type scanner interface {
	Scan(dest ...any) error
}

func scanListed(s scanner) (invoice.ListedInvoice, error) {
	var inv invoice.ListedInvoice

	var status string

	if err := s.Scan(&inv.ID, &inv.Amount, &inv.Date, &status, &inv.Name, &inv.Email, &inv.ImageURL); err != nil {
		return invoice.ListedInvoice{}, err
	}

	inv.Status = invoice.Status(status)

	return inv, nil
}

func (s *Store) queryListed(ctx context.Context, query string, args ...any) ([]invoice.ListedInvoice, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []invoice.ListedInvoice

	for rows.Next() {
		inv, err := scanListed(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (s *Store) LatestInvoices(ctx context.Context, limit int) ([]invoice.ListedInvoice, error) {
	query := `SELECT ` + listedColumns + listedFrom + `
		ORDER BY i.date DESC, i.id
		LIMIT $1`

	invoices, err := s.queryListed(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing latest invoices: %w", err)
	}

	return invoices, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]invoice.ListedInvoice, error) {
	w := matching(filter.Search)

	query := `SELECT ` + listedColumns + listedFrom + w.or() + ` ORDER BY i.date DESC, i.id`
	query += ` LIMIT ` + w.next(filter.Limit) + ` OFFSET ` + w.next(filter.Offset)

	invoices, err := s.queryListed(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	return invoices, nil
}

func (s *Store) CountInvoices(ctx context.Context, search invoice.Search) (int, error) {
	w := exact(search)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*)`+listedFrom+w.or(), w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return count, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1`

	var inv invoice.Invoice

	var status string

	err := s.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Status = invoice.Status(status)

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.CustomerID,
		inv.Amount,
		inv.Status,
		inv.Date,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

// UpdateInvoice leaves the date untouched. An unknown id updates nothing and
// is not an error.
func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`

	if _, err := s.db.ExecContext(ctx, query, inv.CustomerID, inv.Amount, inv.Status, inv.ID); err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if n == 0 {
		return invoice.ErrNotFound
	}

	return nil
}

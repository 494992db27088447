package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	"github.com/MrJamesThe3rd/invoicedash/internal/database"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListOptions(ctx context.Context) ([]customer.Option, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var options []customer.Option

	for rows.Next() {
		var o customer.Option
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		options = append(options, o)
	}

	return options, rows.Err()
}

func (s *Store) ListTotals(ctx context.Context, query string) ([]customer.Totals, error) {
	q := `
		SELECT
			c.id, c.name, c.email, c.image_url,
			COUNT(i.id),
			COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'pending'), 0),
			COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'paid'), 0)
		FROM customers c
		LEFT JOIN invoices i ON i.customer_id = c.id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		GROUP BY c.id, c.name, c.email, c.image_url
		ORDER BY c.name ASC
	`

	rows, err := s.db.QueryContext(ctx, q, database.ContainsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("listing customer totals: %w", err)
	}
	defer rows.Close()

	var totals []customer.Totals

	for rows.Next() {
		var c customer.Totals
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &c.TotalPending, &c.TotalPaid); err != nil {
			return nil, fmt.Errorf("scanning customer totals: %w", err)
		}

		totals = append(totals, c)
	}

	return totals, rows.Err()
}


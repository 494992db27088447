package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListRevenue returns the stored periods in calendar order. Labels that are not
// month abbreviations sort last.
func (s *Store) ListRevenue(ctx context.Context) ([]dashboard.Revenue, error) {
	query := `
		SELECT month, revenue
		FROM revenue
		ORDER BY array_position(
			ARRAY['Jan','Feb','Mar','Apr','May','Jun','Jul','Aug','Sep','Oct','Nov','Dec']::varchar[],
			month
		), month
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing revenue: %w", err)
	}
	defer rows.Close()

	var revenue []dashboard.Revenue

	for rows.Next() {
		var r dashboard.Revenue
		if err := rows.Scan(&r.Month, &r.Revenue); err != nil {
			return nil, fmt.Errorf("scanning revenue: %w", err)
		}

		revenue = append(revenue, r)
	}

	return revenue, rows.Err()
}

func (s *Store) CountInvoices(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting invoices: %w", err)
	}

	return n, nil
}

func (s *Store) CountCustomers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting customers: %w", err)
	}

	return n, nil
}

func (s *Store) SumByStatus(ctx context.Context) (dashboard.StatusTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)
		FROM invoices
	`

	var t dashboard.StatusTotals
	if err := s.db.QueryRowContext(ctx, query).Scan(&t.Paid, &t.Pending); err != nil {
		return dashboard.StatusTotals{}, fmt.Errorf("summing invoices by status: %w", err)
	}

	return t, nil
}

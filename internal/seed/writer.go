package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Counts reports how many rows of each kind were actually inserted. Rows
// that already existed are skipped.
type Counts struct {
	Users     int64
	Customers int64
	Invoices  int64
	Revenue   int64
}

type Writer struct {
	db         *sql.DB
	bcryptCost int
}

func NewWriter(db *sql.DB, bcryptCost int) *Writer {
	return &Writer{db: db, bcryptCost: bcryptCost}
}

// Write inserts data in a single transaction. Either every row is applied or
// none is.
func (w *Writer) Write(ctx context.Context, data *Data) (Counts, error) {
	var counts Counts

	hashes := make([]string, len(data.Users))

	for i, u := range data.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), w.bcryptCost)
		if err != nil {
			return counts, fmt.Errorf("hashing password for %s: %w", u.Email, err)
		}

		hashes[i] = string(hash)
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, u := range data.Users {
		id := u.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		n, err := insert(ctx, tx,
			`INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			id, u.Name, u.Email, hashes[i])
		if err != nil {
			return counts, fmt.Errorf("inserting user %s: %w", u.Email, err)
		}

		counts.Users += n
	}

	for _, c := range data.Customers {
		n, err := insert(ctx, tx,
			`INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Name, c.Email, c.ImageURL)
		if err != nil {
			return counts, fmt.Errorf("inserting customer %s: %w", c.ID, err)
		}

		counts.Customers += n
	}

	for _, inv := range data.Invoices {
		n, err := insert(ctx, tx,
			`INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			inv.ID, inv.CustomerID, inv.Amount, string(inv.Status), inv.Date)
		if err != nil {
			return counts, fmt.Errorf("inserting invoice %s: %w", inv.ID, err)
		}

		counts.Invoices += n
	}

	for _, r := range data.Revenue {
		n, err := insert(ctx, tx,
			`INSERT INTO revenue (month, revenue) VALUES ($1, $2) ON CONFLICT (month) DO NOTHING`,
			r.Month, r.Revenue)
		if err != nil {
			return counts, fmt.Errorf("inserting revenue for %s: %w", r.Month, err)
		}

		counts.Revenue += n
	}

	if err := tx.Commit(); err != nil {
		return counts, fmt.Errorf("committing seed transaction: %w", err)
	}

	slog.Info("seeded database",
		"users", counts.Users,
		"customers", counts.Customers,
		"invoices", counts.Invoices,
		"revenue", counts.Revenue,
	)

	return counts, nil
}

func insert(ctx context.Context, tx *sql.Tx, query string, args ...any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

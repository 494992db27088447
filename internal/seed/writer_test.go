package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/invoicedash/internal/database/dbtest"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
	"github.com/MrJamesThe3rd/invoicedash/internal/seed"
)

func TestWriter_Write(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	cid := uuid.MustParse(customerID)
	data := &seed.Data{
		Users:     []seed.User{{Name: "User", Email: "user@nextmail.com", Password: "123456"}},
		Customers: []seed.Customer{{ID: cid, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"}},
		Invoices: []seed.Invoice{{
			ID:         uuid.New(),
			CustomerID: cid,
			Amount:     44800,
			Status:     invoice.StatusPaid,
			Date:       time.Date(2023, 9, 10, 0, 0, 0, 0, time.UTC),
		}},
		Revenue: []seed.Revenue{{Month: "Jan", Revenue: 2000}},
	}

	w := seed.NewWriter(db, bcrypt.MinCost)

	counts, err := w.Write(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, seed.Counts{Users: 1, Customers: 1, Invoices: 1, Revenue: 1}, counts)

	var hash string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT password FROM users WHERE email = $1`, "user@nextmail.com").Scan(&hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("123456")))

	again, err := w.Write(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, seed.Counts{}, again)
}

func TestWriter_Write_RollsBack(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	data := &seed.Data{
		Revenue: []seed.Revenue{{Month: "Jan", Revenue: 2000}},
		Invoices: []seed.Invoice{{
			ID:         uuid.New(),
			CustomerID: uuid.New(),
			Amount:     100,
			Status:     invoice.StatusPending,
			Date:       time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	_, err := seed.NewWriter(db, bcrypt.MinCost).Write(ctx, data)
	require.Error(t, err)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revenue`).Scan(&n))
	assert.Zero(t, n)
}

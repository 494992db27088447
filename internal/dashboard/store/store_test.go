package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard/store"
	"github.com/MrJamesThe3rd/invoicedash/internal/database/dbtest"
)

func TestStore_ListRevenue_CalendarOrder(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO revenue (month, revenue) VALUES ('Mar', 2200), ('Jan', 2000), ('Dec', 4800), ('Feb', 1800)`)
	require.NoError(t, err)

	got, err := store.New(db).ListRevenue(ctx)
	require.NoError(t, err)

	assert.Equal(t, []dashboard.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Dec", Revenue: 4800},
	}, got)
}

func TestStore_Aggregates(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	s := store.New(db)

	var customerID string
	require.NoError(t, db.QueryRowContext(ctx,
		"INSERT INTO customers (name, email, image_url) VALUES ('Lee', 'lee@robinson.com', '/l.png') RETURNING id",
	).Scan(&customerID))

	_, err := db.ExecContext(ctx, `
		INSERT INTO invoices (customer_id, amount, status, date) VALUES
			($1, 1000, 'paid', '2024-01-01'),
			($1, 250, 'paid', '2024-01-02'),
			($1, 4000, 'pending', '2024-01-03')`, customerID)
	require.NoError(t, err)

	invoices, err := s.CountInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, invoices)

	customers, err := s.CountCustomers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, customers)

	totals, err := s.SumByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, dashboard.StatusTotals{Paid: 1250, Pending: 4000}, totals)
}

func TestStore_SumByStatus_Empty(t *testing.T) {
	db := dbtest.Open(t)

	totals, err := store.New(db).SumByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dashboard.StatusTotals{}, totals)
}

package seed_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
	"github.com/MrJamesThe3rd/invoicedash/internal/seed"
)

const customerID = "3958dc9e-712f-4377-85e9-fec4b6a6442a"

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		seed.UsersFile: {Data: []byte("name,email,password\nUser,user@nextmail.com,123456\n")},
		seed.CustomersFile: {Data: []byte(
			"id,name,email,image_url\n" +
				customerID + ",Delba de Oliveira,delba@oliveira.com,/customers/delba-de-oliveira.png\n",
		)},
		seed.InvoicesFile: {Data: []byte(
			"customer_id,amount,status,date\n" +
				customerID + ",15795,pending,2022-12-06\n" +
				"\n" +
				customerID + ",20348,PAID,2022-11-14\n",
		)},
		seed.RevenueFile: {Data: []byte("month,revenue\nJan,2000\nFeb,1800\n")},
	}

	data, err := seed.Load(fsys)
	require.NoError(t, err)

	require.Len(t, data.Users, 1)
	assert.Equal(t, "user@nextmail.com", data.Users[0].Email)
	assert.Equal(t, uuid.Nil, data.Users[0].ID)

	require.Len(t, data.Customers, 1)
	assert.Equal(t, uuid.MustParse(customerID), data.Customers[0].ID)

	require.Len(t, data.Invoices, 2)
	assert.Equal(t, int64(15795), data.Invoices[0].Amount)
	assert.Equal(t, invoice.StatusPending, data.Invoices[0].Status)
	assert.Equal(t, time.Date(2022, 12, 6, 0, 0, 0, 0, time.UTC), data.Invoices[0].Date)
	assert.Equal(t, invoice.StatusPaid, data.Invoices[1].Status)
	assert.NotEqual(t, uuid.Nil, data.Invoices[0].ID)
	assert.NotEqual(t, data.Invoices[0].ID, data.Invoices[1].ID)

	assert.Equal(t, []seed.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}, data.Revenue)
}

func TestLoad_InvoiceIDsAreStable(t *testing.T) {
	fsys := fstest.MapFS{
		seed.InvoicesFile: {Data: []byte("customer_id,amount,status,date\n" + customerID + ",666,pending,2023-06-27\n")},
	}

	first, err := seed.Load(fsys)
	require.NoError(t, err)

	second, err := seed.Load(fsys)
	require.NoError(t, err)

	assert.Equal(t, first.Invoices[0].ID, second.Invoices[0].ID)
}

func TestLoad_MissingFilesAreEmpty(t *testing.T) {
	data, err := seed.Load(fstest.MapFS{})
	require.NoError(t, err)

	assert.Empty(t, data.Users)
	assert.Empty(t, data.Customers)
	assert.Empty(t, data.Invoices)
	assert.Empty(t, data.Revenue)
}

func TestLoad_Errors(t *testing.T) {
	type testCase struct {
		name    string
		file    string
		content string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "MissingColumn",
			file:    seed.RevenueFile,
			content: "month\nJan\n",
			wantErr: `revenue.csv: missing column "revenue"`,
		},
		{
			name:    "InvalidStatus",
			file:    seed.InvoicesFile,
			content: "customer_id,amount,status,date\n" + customerID + ",100,overdue,2023-01-01\n",
			wantErr: `invoices.csv line 2: invalid status "overdue"`,
		},
		{
			name:    "InvalidCustomerID",
			file:    seed.CustomersFile,
			content: "id,name,email,image_url\nnope,A,a@a.com,/a.png\n",
			wantErr: `customers.csv line 2: invalid id "nope"`,
		},
		{
			name:    "AmountOverflow",
			file:    seed.InvoicesFile,
			content: "customer_id,amount,status,date\n" + customerID + ",99999999999,paid,2023-01-01\n",
			wantErr: `invoices.csv line 2: invalid amount "99999999999"`,
		},
		{
			name:    "MonthTooLong",
			file:    seed.RevenueFile,
			content: "month,revenue\nJanuary,10\n",
			wantErr: `revenue.csv line 2: invalid month "January"`,
		},
		{
			name:    "UserWithoutPassword",
			file:    seed.UsersFile,
			content: "name,email,password\nUser,user@nextmail.com,\n",
			wantErr: "users.csv line 2: name, email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Load(fstest.MapFS{tt.file: {Data: []byte(tt.content)}})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

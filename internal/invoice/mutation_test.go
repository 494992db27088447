package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

func TestService_Create(t *testing.T) {
	customerID := uuid.New()

	t.Run("StoresCentsAndRedirects", func(t *testing.T) {
		tests := []struct {
			amount    string
			wantCents int64
		}{
			{amount: "1", wantCents: 100},
			{amount: "157.95", wantCents: 15795},
			{amount: "12.345", wantCents: 1235},
			{amount: "0.01", wantCents: 1},
			{amount: "1e2", wantCents: 10000},
			{amount: " 42 ", wantCents: 4200},
			{amount: "21474836.47", wantCents: 2147483647},
		}

		for _, tt := range tests {
			t.Run(tt.amount, func(t *testing.T) {
				svc, repo, cache := newService(t)

				gomock.InOrder(
					repo.EXPECT().
						CreateInvoice(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
							now := time.Now().UTC()

							assert.Equal(t, customerID, inv.CustomerID)
							assert.Equal(t, tt.wantCents, inv.Amount)
							assert.Equal(t, invoice.StatusPending, inv.Status)
							assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), inv.Date)

							return nil
						}),
					cache.EXPECT().Invalidate("/dashboard/invoices"),
				)

				state := svc.Create(context.Background(), invoice.FormInput{
					CustomerID: customerID.String(),
					Amount:     tt.amount,
					Status:     "pending",
				})

				assert.True(t, state.OK())
				assert.Equal(t, "/dashboard/invoices", state.RedirectTo)
				assert.Empty(t, state.Errors)
			})
		}
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		tests := []struct {
			name       string
			input      invoice.FormInput
			wantFields map[string][]string
		}{
			{
				name:       "ZeroAmount",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "0", Status: "paid"},
				wantFields: map[string][]string{"amount": {"Please enter an amount greater than $0."}},
			},
			{
				name:       "NegativeAmount",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "-10", Status: "paid"},
				wantFields: map[string][]string{"amount": {"Please enter an amount greater than $0."}},
			},
			{
				name:       "NonNumericAmount",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "ten", Status: "paid"},
				wantFields: map[string][]string{"amount": {"Please enter an amount greater than $0."}},
			},
			{
				name:       "AmountAboveColumnRange",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "21474836.48", Status: "paid"},
				wantFields: map[string][]string{"amount": {"Please enter an amount no greater than $21,474,836.47."}},
			},
			{
				name:       "AmountBeyondInt64",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "184467440737095516.17", Status: "paid"},
				wantFields: map[string][]string{"amount": {"Please enter an amount no greater than $21,474,836.47."}},
			},
			{
				name:       "UnknownStatus",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "10", Status: "draft"},
				wantFields: map[string][]string{"status": {"Please select an invoice status."}},
			},
			{
				name:       "StatusCase",
				input:      invoice.FormInput{CustomerID: customerID.String(), Amount: "10", Status: "Paid"},
				wantFields: map[string][]string{"status": {"Please select an invoice status."}},
			},
			{
				name:       "MissingCustomer",
				input:      invoice.FormInput{Amount: "10", Status: "paid"},
				wantFields: map[string][]string{"customerId": {"Please select a customer."}},
			},
			{
				name:  "Empty",
				input: invoice.FormInput{},
				wantFields: map[string][]string{
					"customerId": {"Please select a customer."},
					"amount":     {"Please enter an amount greater than $0."},
					"status":     {"Please select an invoice status."},
				},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, _, _ := newService(t)

				state := svc.Create(context.Background(), tt.input)

				assert.False(t, state.OK())
				assert.Equal(t, apperr.KindValidationFailed, state.Failure)
				assert.Equal(t, "Missing Fields. Failed to Create Invoice.", state.Message)
				assert.Equal(t, tt.wantFields, state.Errors)
				assert.Empty(t, state.RedirectTo)
			})
		}
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			CreateInvoice(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		state := svc.Create(context.Background(), invoice.FormInput{
			CustomerID: customerID.String(),
			Amount:     "10",
			Status:     "paid",
		})

		assert.Equal(t, apperr.KindStoreWriteFailed, state.Failure)
		assert.Equal(t, "Database Error: Failed to create invoice.", state.Message)
		assert.Nil(t, state.Errors)
		assert.Empty(t, state.RedirectTo)
	})
}

func TestService_Update(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()
	input := invoice.FormInput{CustomerID: customerID.String(), Amount: "99.99", Status: "paid"}

	t.Run("Success", func(t *testing.T) {
		svc, repo, cache := newService(t)

		gomock.InOrder(
			repo.EXPECT().
				UpdateInvoice(gomock.Any(), &invoice.Invoice{
					ID:         id,
					CustomerID: customerID,
					Amount:     9999,
					Status:     invoice.StatusPaid,
				}).
				Return(nil),
			cache.EXPECT().Invalidate("/dashboard/invoices"),
		)

		state := svc.Update(context.Background(), id.String(), input)

		assert.True(t, state.OK())
		assert.Equal(t, "/dashboard/invoices", state.RedirectTo)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		svc, _, _ := newService(t)

		state := svc.Update(context.Background(), id.String(), invoice.FormInput{CustomerID: customerID.String(), Amount: "0", Status: "paid"})

		assert.Equal(t, apperr.KindValidationFailed, state.Failure)
		assert.Equal(t, "Missing Fields. Failed to Update Invoice.", state.Message)
		assert.Contains(t, state.Errors, "amount")
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).Return(errors.New("update failed"))

		state := svc.Update(context.Background(), id.String(), input)

		assert.Equal(t, apperr.KindStoreWriteFailed, state.Failure)
		assert.Equal(t, "Database Error: Failed to update invoice.", state.Message)
		assert.Empty(t, state.RedirectTo)
	})

	t.Run("MalformedID", func(t *testing.T) {
		svc, _, _ := newService(t)

		state := svc.Update(context.Background(), "42", input)

		assert.Equal(t, apperr.KindStoreWriteFailed, state.Failure)
	})
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name        string
		id          string
		setupMock   func(r *invoice.MockRepository, c *invoice.MockRevalidator)
		wantMessage string
		wantFailure apperr.Kind
	}

	tests := []testCase{
		{
			name: "Success",
			id:   id.String(),
			setupMock: func(r *invoice.MockRepository, c *invoice.MockRevalidator) {
				gomock.InOrder(
					r.EXPECT().DeleteInvoice(gomock.Any(), id).Return(nil),
					c.EXPECT().Invalidate("/dashboard/invoices"),
				)
			},
			wantMessage: "Invoice deleted successfully.",
		},
		{
			name: "UnknownID",
			id:   id.String(),
			setupMock: func(r *invoice.MockRepository, _ *invoice.MockRevalidator) {
				r.EXPECT().DeleteInvoice(gomock.Any(), id).Return(invoice.ErrNotFound)
			},
			wantMessage: "Database Error: Failed to delete invoice.",
			wantFailure: apperr.KindStoreWriteFailed,
		},
		{
			name: "StoreFailure",
			id:   id.String(),
			setupMock: func(r *invoice.MockRepository, _ *invoice.MockRevalidator) {
				r.EXPECT().DeleteInvoice(gomock.Any(), id).Return(errors.New("deadlock"))
			},
			wantMessage: "Database Error: Failed to delete invoice.",
			wantFailure: apperr.KindStoreWriteFailed,
		},
		{
			name:        "MalformedID",
			id:          "nope",
			wantMessage: "Database Error: Failed to delete invoice.",
			wantFailure: apperr.KindStoreWriteFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo, cache)
			}

			state := svc.Delete(context.Background(), tt.id)

			assert.Equal(t, tt.wantMessage, state.Message)
			assert.Equal(t, tt.wantFailure, state.Failure)
			assert.Nil(t, state.Errors)
		})
	}
}

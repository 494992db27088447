package invoice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

func newService(t *testing.T) (*invoice.Service, *invoice.MockRepository, *invoice.MockRevalidator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	cache := invoice.NewMockRevalidator(ctrl)

	return invoice.NewService(repo, cache), repo, cache
}

func TestService_Latest(t *testing.T) {
	t.Run("FormatsAmounts", func(t *testing.T) {
		svc, repo, _ := newService(t)

		id := uuid.New()
		repo.EXPECT().
			LatestInvoices(gomock.Any(), 5).
			Return([]invoice.ListedInvoice{
				{ID: id, Amount: 15795, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba.png"},
			}, nil)

		got, err := svc.Latest(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Equal(t, invoice.LatestInvoice{
			ID:       id,
			Name:     "Delba de Oliveira",
			Email:    "delba@oliveira.com",
			ImageURL: "/customers/delba.png",
			Amount:   "$157.95",
		}, got[0])
	})

	t.Run("StoreError", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			LatestInvoices(gomock.Any(), 5).
			Return(nil, errors.New("connection refused"))

		got, err := svc.Latest(context.Background())

		assert.Nil(t, got)
		assert.EqualError(t, err, "Failed to fetch the latest invoices.")
		assert.True(t, apperr.Is(err, apperr.KindFetchFailed))
		assert.NotContains(t, err.Error(), "connection refused")
	})
}

func TestService_Filtered(t *testing.T) {
	type testCase struct {
		name       string
		query      string
		page       int
		wantOffset int
	}

	tests := []testCase{
		{name: "FirstPage", query: "", page: 1, wantOffset: 0},
		{name: "SecondPage", query: "", page: 2, wantOffset: 6},
		{name: "ZeroPage", query: "lee", page: 0, wantOffset: 0},
		{name: "NegativePage", query: "lee", page: -3, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			repo.EXPECT().
				ListInvoices(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, f invoice.ListFilter) ([]invoice.ListedInvoice, error) {
					assert.Equal(t, invoice.PageSize, f.Limit)
					assert.Equal(t, tt.wantOffset, f.Offset)
					assert.Equal(t, tt.query, f.Search.Text)

					return []invoice.ListedInvoice{{ID: uuid.New()}}, nil
				})

			got, err := svc.Filtered(context.Background(), tt.query, tt.page)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}

	t.Run("NumericQueryCarriesNumber", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			ListInvoices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f invoice.ListFilter) ([]invoice.ListedInvoice, error) {
				require.NotNil(t, f.Search.Number)
				assert.InDelta(t, 99.0, *f.Search.Number, 1e-9)

				return nil, nil
			})

		_, err := svc.Filtered(context.Background(), "99", 1)
		assert.NoError(t, err)
	})

	t.Run("StoreError", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			ListInvoices(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		_, err := svc.Filtered(context.Background(), "", 1)
		assert.EqualError(t, err, "Failed to fetch invoices.")
	})
}

func TestService_Pages(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "Empty", count: 0, want: 0},
		{name: "Exact", count: 12, want: 2},
		{name: "Partial", count: 13, want: 3},
		{name: "Single", count: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			repo.EXPECT().
				CountInvoices(gomock.Any(), invoice.ParseSearch("")).
				Return(tt.count, nil)

			got, err := svc.Pages(context.Background(), "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("StoreError", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().
			CountInvoices(gomock.Any(), gomock.Any()).
			Return(0, errors.New("boom"))

		_, err := svc.Pages(context.Background(), "x")
		assert.EqualError(t, err, "Failed to fetch total number of invoices.")
	})
}

func TestService_Get(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()

	type testCase struct {
		name      string
		id        string
		setupMock func(m *invoice.MockRepository)
		want      *invoice.Form
		wantKind  apperr.Kind
		wantCause error
	}

	tests := []testCase{
		{
			name: "ConvertsCents",
			id:   id.String(),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(&invoice.Invoice{
						ID:         id,
						CustomerID: customerID,
						Amount:     12345,
						Status:     invoice.StatusPaid,
						Date:       time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
					}, nil)
			},
			want: &invoice.Form{ID: id, CustomerID: customerID, Amount: 123.45, Status: invoice.StatusPaid},
		},
		{
			name: "NotFound",
			id:   id.String(),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, invoice.ErrNotFound)
			},
			wantKind: apperr.KindNotFound,
		},
		{
			name:     "MalformedID",
			id:       "not-a-uuid",
			wantKind: apperr.KindNotFound,
		},
		{
			name: "InvalidStatus",
			id:   id.String(),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().
					GetInvoice(gomock.Any(), id).
					Return(&invoice.Invoice{ID: id, Amount: 100, Status: "overdue"}, nil)
			},
			wantKind:  apperr.KindFetchFailed,
			wantCause: invoice.ErrInvalidStatus,
		},
		{
			name: "StoreError",
			id:   id.String(),
			setupMock: func(m *invoice.MockRepository) {
				m.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, errors.New("db down"))
			},
			wantKind: apperr.KindFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := svc.Get(context.Background(), tt.id)

			if tt.wantKind != apperr.KindNone {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))

				if tt.wantCause != nil {
					assert.ErrorIs(t, err, tt.wantCause)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

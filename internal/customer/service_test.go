package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
)

func TestService_List(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *customer.MockRepository)
		wantLen   int
		wantErr   string
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().ListOptions(gomock.Any()).Return([]customer.Option{
					{ID: uuid.New(), Name: "Amy Burns"},
					{ID: uuid.New(), Name: "Balazs Orban"},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name: "StoreError",
			setupMock: func(m *customer.MockRepository) {
				m.EXPECT().ListOptions(gomock.Any()).Return(nil, errors.New("pq: relation does not exist"))
			},
			wantErr: "Failed to fetch all customers.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customer.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := customer.NewService(repo).List(context.Background())

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.True(t, apperr.Is(err, apperr.KindFetchFailed))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_Filtered(t *testing.T) {
	t.Run("FormatsSums", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customer.NewMockRepository(ctrl)

		id := uuid.New()
		repo.EXPECT().ListTotals(gomock.Any(), "amy").Return([]customer.Totals{
			{ID: id, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png", TotalInvoices: 3, TotalPending: 0, TotalPaid: 123456},
		}, nil)

		got, err := customer.NewService(repo).Filtered(context.Background(), "amy")
		require.NoError(t, err)

		assert.Equal(t, []customer.Row{
			{ID: id, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png", TotalInvoices: 3, TotalPending: "$0.00", TotalPaid: "$1,234.56"},
		}, got)
	})

	t.Run("StoreError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := customer.NewMockRepository(ctrl)

		repo.EXPECT().ListTotals(gomock.Any(), "").Return(nil, errors.New("timeout"))

		_, err := customer.NewService(repo).Filtered(context.Background(), "")
		assert.EqualError(t, err, "Failed to fetch customer table.")
	})
}

package customer

import (
	"context"
	"log/slog"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/format"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=customer
type Repository interface {
	ListOptions(ctx context.Context) ([]Option, error)
	ListTotals(ctx context.Context, query string) ([]Totals, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every customer by name, for the invoice form.
func (s *Service) List(ctx context.Context) ([]Option, error) {
	options, err := s.repo.ListOptions(ctx)
	if err != nil {
		slog.Error("database error", "op", "list customers", "error", err)
		return nil, apperr.FetchFailed("all customers")
	}

	return options, nil
}

// Filtered returns customers whose name or email contains query, with their
// invoice count and formatted pending and paid sums.
func (s *Service) Filtered(ctx context.Context, query string) ([]Row, error) {
	totals, err := s.repo.ListTotals(ctx, query)
	if err != nil {
		slog.Error("database error", "op", "filtered customers", "query", query, "error", err)
		return nil, apperr.FetchFailed("customer table")
	}

	rows := make([]Row, len(totals))
	for i, c := range totals {
		rows[i] = Row{
			ID:            c.ID,
			Name:          c.Name,
			Email:         c.Email,
			ImageURL:      c.ImageURL,
			TotalInvoices: c.TotalInvoices,
			TotalPending:  format.Currency(c.TotalPending),
			TotalPaid:     format.Currency(c.TotalPaid),
		}
	}

	return rows, nil
}

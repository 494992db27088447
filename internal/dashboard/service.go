package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/format"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	ListRevenue(ctx context.Context) ([]Revenue, error)
	CountInvoices(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	SumByStatus(ctx context.Context) (StatusTotals, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Revenue(ctx context.Context) ([]Revenue, error) {
	revenue, err := s.repo.ListRevenue(ctx)
	if err != nil {
		slog.Error("database error", "op", "revenue", "error", err)
		return nil, apperr.FetchFailed("revenue data")
	}

	return revenue, nil
}

// Cards runs the three aggregate queries concurrently. If any of them fails
// the whole call fails; no partial cards are returned.
func (s *Service) Cards(ctx context.Context) (*Cards, error) {
	var (
		invoices  int
		customers int
		totals    StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountInvoices(gctx)
		invoices = n

		return err
	})

	g.Go(func() error {
		n, err := s.repo.CountCustomers(gctx)
		customers = n

		return err
	})

	g.Go(func() error {
		t, err := s.repo.SumByStatus(gctx)
		totals = t

		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("database error", "op", "card data", "error", err)
		return nil, apperr.FetchFailed("card data")
	}

	return &Cards{
		NumberOfInvoices:     invoices,
		NumberOfCustomers:    customers,
		TotalPaidInvoices:    format.Currency(totals.Paid),
		TotalPendingInvoices: format.Currency(totals.Pending),
	}, nil
}

package invoice

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/format"
)

const latestLimit = 5

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	LatestInvoices(ctx context.Context, limit int) ([]ListedInvoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]ListedInvoice, error)
	CountInvoices(ctx context.Context, search Search) (int, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)

	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// Revalidator drops cached renderings of a path.
type Revalidator interface {
	Invalidate(path string)
}

type ListFilter struct {
	Search Search
	Limit  int
	Offset int
}

type Service struct {
	repo  Repository
	cache Revalidator
}

func NewService(repo Repository, cache Revalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

// Latest returns the five most recent invoices with formatted amounts.
func (s *Service) Latest(ctx context.Context) ([]LatestInvoice, error) {
	rows, err := s.repo.LatestInvoices(ctx, latestLimit)
	if err != nil {
		slog.Error("database error", "op", "latest invoices", "error", err)
		return nil, apperr.FetchFailed("the latest invoices")
	}

	latest := make([]LatestInvoice, len(rows))
	for i, r := range rows {
		latest[i] = LatestInvoice{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   format.Currency(r.Amount),
		}
	}

	return latest, nil
}

// Filtered returns one page of invoices matching query. Pages start at 1;
// smaller values are treated as the first page.
func (s *Service) Filtered(ctx context.Context, query string, page int) ([]ListedInvoice, error) {
	if page < 1 {
		page = 1
	}

	rows, err := s.repo.ListInvoices(ctx, ListFilter{
		Search: ParseSearch(query),
		Limit:  PageSize,
		Offset: (page - 1) * PageSize,
	})
	if err != nil {
		slog.Error("database error", "op", "filtered invoices", "query", query, "page", page, "error", err)
		return nil, apperr.FetchFailed("invoices")
	}

	return rows, nil
}

// Pages returns how many pages of results query produces.
func (s *Service) Pages(ctx context.Context, query string) (int, error) {
	count, err := s.repo.CountInvoices(ctx, ParseSearch(query))
	if err != nil {
		slog.Error("database error", "op", "invoice pages", "query", query, "error", err)
		return 0, apperr.FetchFailed("total number of invoices")
	}

	return int(math.Ceil(float64(count) / PageSize)), nil
}

// Get loads an invoice for editing.
func (s *Service) Get(ctx context.Context, id string) (*Form, error) {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("invoice")
	}

	inv, err := s.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("invoice")
		}

		slog.Error("database error", "op", "get invoice", "id", invoiceID, "error", err)

		return nil, apperr.FetchFailed("invoice")
	}

	if !inv.Status.Valid() {
		slog.Error("invoice has invalid status", "id", inv.ID, "status", inv.Status)
		return nil, apperr.FetchFailed("invoice").WithCause(ErrInvalidStatus)
	}

	return &Form{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     format.Amount(inv.Amount),
		Status:     inv.Status,
	}, nil
}

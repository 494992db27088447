package invoice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
)

const (
	msgCreateInvalid = "Missing Fields. Failed to Create Invoice."
	msgUpdateInvalid = "Missing Fields. Failed to Update Invoice."
	msgCreateFailed  = "Database Error: Failed to create invoice."
	msgUpdateFailed  = "Database Error: Failed to update invoice."
	msgDeleteFailed  = "Database Error: Failed to delete invoice."
	msgDeleted       = "Invoice deleted successfully."
)

// State is the outcome of a form action. Validation and store failures are
// reported here rather than as errors; only validation fills Errors.
type State struct {
	Errors     map[string][]string
	Message    string
	Failure    apperr.Kind
	RedirectTo string
}

func (s State) OK() bool {
	return s.Failure == apperr.KindNone
}

func (s *Service) Create(ctx context.Context, in FormInput) State {
	v, fieldErrs := in.check()
	if fieldErrs != nil {
		return State{Errors: fieldErrs, Message: msgCreateInvalid, Failure: apperr.KindValidationFailed}
	}

	now := time.Now().UTC()

	inv := &Invoice{
		CustomerID: v.customerID,
		Amount:     v.cents,
		Status:     v.status,
		Date:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		slog.Error("database error", "op", "create invoice", "error", err)
		return State{Message: msgCreateFailed, Failure: apperr.KindStoreWriteFailed}
	}

	s.cache.Invalidate(ListPath)

	return State{RedirectTo: ListPath}
}

// Update rewrites customer, amount and status of the invoice id. The date is
// left untouched and an unknown id writes nothing without failing.
func (s *Service) Update(ctx context.Context, id string, in FormInput) State {
	v, fieldErrs := in.check()
	if fieldErrs != nil {
		return State{Errors: fieldErrs, Message: msgUpdateInvalid, Failure: apperr.KindValidationFailed}
	}

	invoiceID, err := uuid.Parse(id)
	if err != nil {
		slog.Warn("update with malformed invoice id", "id", id)
		return State{Message: msgUpdateFailed, Failure: apperr.KindStoreWriteFailed}
	}

	inv := &Invoice{
		ID:         invoiceID,
		CustomerID: v.customerID,
		Amount:     v.cents,
		Status:     v.status,
	}

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		slog.Error("database error", "op", "update invoice", "id", invoiceID, "error", err)
		return State{Message: msgUpdateFailed, Failure: apperr.KindStoreWriteFailed}
	}

	s.cache.Invalidate(ListPath)

	return State{RedirectTo: ListPath}
}

func (s *Service) Delete(ctx context.Context, id string) State {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		slog.Warn("delete with malformed invoice id", "id", id)
		return State{Message: msgDeleteFailed, Failure: apperr.KindStoreWriteFailed}
	}

	if err := s.repo.DeleteInvoice(ctx, invoiceID); err != nil {
		if errors.Is(err, ErrNotFound) {
			slog.Warn("delete of unknown invoice", "id", invoiceID)
		} else {
			slog.Error("database error", "op", "delete invoice", "id", invoiceID, "error", err)
		}

		return State{Message: msgDeleteFailed, Failure: apperr.KindStoreWriteFailed}
	}

	s.cache.Invalidate(ListPath)

	return State{Message: msgDeleted}
}

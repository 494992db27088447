package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("invoice not found")
	ErrInvalidStatus = errors.New("invalid invoice status")
)

// PageSize is the number of invoices shown per page of search results.
const PageSize = 6

// ListPath is the rendered view that every successful mutation invalidates.
const ListPath = "/dashboard/invoices"

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// Invoice is the stored row.
type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64 // Amount in cents
	Status     Status
	Date       time.Time
}

// ListedInvoice is an invoice joined with its customer, as shown in tables.
type ListedInvoice struct {
	ID       uuid.UUID
	Amount   int64 // Amount in cents
	Date     time.Time
	Status   Status
	Name     string
	Email    string
	ImageURL string
}

// LatestInvoice is a dashboard row with the amount already formatted.
type LatestInvoice struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
	Amount   string
}

// Form is an invoice prepared for the edit form: amount in decimal units.
type Form struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     float64
	Status     Status
}

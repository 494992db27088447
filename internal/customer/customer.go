package customer

import "github.com/google/uuid"

// Option is a customer as offered in the invoice form's select.
type Option struct {
	ID   uuid.UUID
	Name string
}

// Totals is a customer row with its invoice aggregates in cents.
type Totals struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  int64
	TotalPaid     int64
}

// Row is a customers-table row with formatted sums.
type Row struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  string
	TotalPaid     string
}

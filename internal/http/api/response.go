package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

type invoiceResponse struct {
	ID       uuid.UUID      `json:"id"`
	Amount   int64          `json:"amount"`
	Date     string         `json:"date"`
	Status   invoice.Status `json:"status"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	ImageURL string         `json:"image_url"`
}

type invoiceListResponse struct {
	Invoices   []invoiceResponse `json:"invoices"`
	TotalPages int               `json:"totalPages"`
}

type latestInvoiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

type invoiceFormResponse struct {
	ID         uuid.UUID      `json:"id"`
	CustomerID uuid.UUID      `json:"customer_id"`
	Amount     float64        `json:"amount"`
	Status     invoice.Status `json:"status"`
}

type stateResponse struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

type customerOptionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type customerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int       `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

type cardsResponse struct {
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

type revenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

func toInvoiceList(rows []invoice.ListedInvoice, totalPages int) invoiceListResponse {
	resp := invoiceListResponse{
		Invoices:   make([]invoiceResponse, len(rows)),
		TotalPages: totalPages,
	}

	for i, inv := range rows {
		resp.Invoices[i] = invoiceResponse{
			ID:       inv.ID,
			Amount:   inv.Amount,
			Date:     inv.Date.Format(time.DateOnly),
			Status:   inv.Status,
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
		}
	}

	return resp
}

func toLatestList(rows []invoice.LatestInvoice) []latestInvoiceResponse {
	resp := make([]latestInvoiceResponse, len(rows))
	for i, inv := range rows {
		resp[i] = latestInvoiceResponse(inv)
	}

	return resp
}

func toInvoiceForm(f *invoice.Form) invoiceFormResponse {
	return invoiceFormResponse{
		ID:         f.ID,
		CustomerID: f.CustomerID,
		Amount:     f.Amount,
		Status:     f.Status,
	}
}

func toState(s invoice.State) stateResponse {
	return stateResponse{Errors: s.Errors, Message: s.Message}
}

func toOptionList(options []customer.Option) []customerOptionResponse {
	resp := make([]customerOptionResponse, len(options))
	for i, o := range options {
		resp[i] = customerOptionResponse{ID: o.ID, Name: o.Name}
	}

	return resp
}

func toCustomerList(rows []customer.Row) []customerResponse {
	resp := make([]customerResponse, len(rows))
	for i, c := range rows {
		resp[i] = customerResponse(c)
	}

	return resp
}

func toCards(c *dashboard.Cards) cardsResponse {
	return cardsResponse(*c)
}

func toRevenueList(revenue []dashboard.Revenue) []revenueResponse {
	resp := make([]revenueResponse, len(revenue))
	for i, r := range revenue {
		resp[i] = revenueResponse(r)
	}

	return resp
}

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

type Handler struct {
	invoices  *invoice.Service
	customers *customer.Service
	dashboard *dashboard.Service
}

func NewHandler(invoices *invoice.Service, customers *customer.Service, dash *dashboard.Service) *Handler {
	return &Handler{invoices: invoices, customers: customers, dashboard: dash}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", h.listInvoices)
		r.Get("/latest", h.latestInvoices)
		r.Get("/{id}", h.getInvoice)
		r.Delete("/{id}", h.deleteInvoice)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/", h.createInvoice)
			r.Put("/{id}", h.updateInvoice)
		})
	})

	r.Get("/customers", h.listCustomers)
	r.Get("/customers/all", h.customerOptions)
	r.Get("/cards", h.cards)
	r.Get("/revenue", h.revenue)
}

func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	current := 1
	if s := r.URL.Query().Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}

		current = n
	}

	total, err := h.invoices.Pages(r.Context(), query)
	if err != nil {
		writeFailure(w, err)
		return
	}

	rows, err := h.invoices.Filtered(r.Context(), query, current)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceList(rows, total))
}

func (h *Handler) latestInvoices(w http.ResponseWriter, r *http.Request) {
	rows, err := h.invoices.Latest(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLatestList(rows))
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	form, err := h.invoices.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceForm(form))
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var in invoice.FormInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeState(w, http.StatusCreated, h.invoices.Create(r.Context(), in))
}

func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	var in invoice.FormInput
	if err := readJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeState(w, http.StatusOK, h.invoices.Update(r.Context(), chi.URLParam(r, "id"), in))
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	writeState(w, http.StatusOK, h.invoices.Delete(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.customers.Filtered(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerList(rows))
}

func (h *Handler) customerOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.customers.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOptionList(options))
}

func (h *Handler) cards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.dashboard.Cards(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCards(cards))
}

func (h *Handler) revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.dashboard.Revenue(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toRevenueList(revenue))
}

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	"github.com/MrJamesThe3rd/invoicedash/internal/dashboard"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/page"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
	"github.com/MrJamesThe3rd/invoicedash/internal/view"
)

type Handler struct {
	dashboard *dashboard.Service
	invoices  *invoice.Service
	customers *customer.Service
	pages     *page.Renderer
}

func NewHandler(
	dash *dashboard.Service,
	invoices *invoice.Service,
	customers *customer.Service,
	pages *page.Renderer,
) *Handler {
	return &Handler{dashboard: dash, invoices: invoices, customers: customers, pages: pages}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
	r.Get("/customers", h.customerTable)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	cards, err := h.dashboard.Cards(r.Context())
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	revenue, err := h.dashboard.Revenue(r.Context())
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	latest, err := h.invoices.Latest(r.Context())
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.Overview(view.OverviewPage{
		Layout: h.pages.Layout(w, r, "Dashboard"),
		Cards:  cards,
		Chart:  view.Chart(revenue),
		Latest: latest,
	}))
}

func (h *Handler) customerTable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	rows, err := h.customers.Filtered(r.Context(), query)
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.Customers(view.CustomersPage{
		Layout:    h.pages.Layout(w, r, "Customers"),
		Query:     query,
		Customers: rows,
	}))
}

package invoices

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/page"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
	"github.com/MrJamesThe3rd/invoicedash/internal/view"
)

type Handler struct {
	invoices  *invoice.Service
	customers *customer.Service
	pages     *page.Renderer
}

func NewHandler(invoices *invoice.Service, customers *customer.Service, pages *page.Renderer) *Handler {
	return &Handler{invoices: invoices, customers: customers, pages: pages}
}

// ListRoutes serves the cacheable invoice table.
func (h *Handler) ListRoutes(r chi.Router) {
	r.Get("/", h.list)
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/create", h.createForm)
	r.Get("/{id}/edit", h.editForm)
	r.Post("/{id}", h.update)
	r.Post("/{id}/delete", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	current, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || current < 1 {
		current = 1
	}

	total, err := h.invoices.Pages(r.Context(), query)
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	rows, err := h.invoices.Filtered(r.Context(), query, current)
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.Invoices(view.InvoicesPage{
		Layout:      h.pages.Layout(w, r, "Invoices"),
		Query:       query,
		CurrentPage: current,
		TotalPages:  total,
		Invoices:    rows,
		Pages:       view.Pagination(current, total),
	}))
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, formPage{
		title:  "Create Invoice",
		action: invoice.ListPath,
		submit: "Create Invoice",
		values: invoice.FormInput{Status: string(invoice.StatusPending)},
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	in, ok := formInput(w, r)
	if !ok {
		return
	}

	state := h.invoices.Create(r.Context(), in)
	if state.OK() {
		http.Redirect(w, r, state.RedirectTo, http.StatusSeeOther)
		return
	}

	h.renderForm(w, r, stateStatus(state), formPage{
		title:  "Create Invoice",
		action: invoice.ListPath,
		submit: "Create Invoice",
		values: in,
		state:  state,
	})
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	inv, err := h.invoices.Get(r.Context(), id)
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	h.renderForm(w, r, http.StatusOK, formPage{
		title:  "Edit Invoice",
		action: invoice.ListPath + "/" + id,
		submit: "Edit Invoice",
		values: invoice.FormInput{
			CustomerID: inv.CustomerID.String(),
			Amount:     strconv.FormatFloat(inv.Amount, 'f', -1, 64),
			Status:     string(inv.Status),
		},
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	in, ok := formInput(w, r)
	if !ok {
		return
	}

	state := h.invoices.Update(r.Context(), id, in)
	if state.OK() {
		http.Redirect(w, r, state.RedirectTo, http.StatusSeeOther)
		return
	}

	h.renderForm(w, r, stateStatus(state), formPage{
		title:  "Edit Invoice",
		action: invoice.ListPath + "/" + id,
		submit: "Edit Invoice",
		values: in,
		state:  state,
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	state := h.invoices.Delete(r.Context(), chi.URLParam(r, "id"))

	page.SetFlash(w, state.Message)
	http.Redirect(w, r, invoice.ListPath, http.StatusSeeOther)
}

type formPage struct {
	title  string
	action string
	submit string
	values invoice.FormInput
	state  invoice.State
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, p formPage) {
	options, err := h.customers.List(r.Context())
	if err != nil {
		h.pages.Fail(w, r, err)
		return
	}

	h.pages.Render(w, r, status, view.InvoiceForm(view.FormPage{
		Layout:    h.pages.Layout(w, r, p.title),
		Action:    p.action,
		Submit:    p.submit,
		Customers: options,
		Values:    p.values,
		State:     p.state,
	}))
}

func formInput(w http.ResponseWriter, r *http.Request) (invoice.FormInput, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return invoice.FormInput{}, false
	}

	return invoice.FormInput{
		CustomerID: r.PostForm.Get("customerId"),
		Amount:     r.PostForm.Get("amount"),
		Status:     r.PostForm.Get("status"),
	}, true
}

func stateStatus(s invoice.State) int {
	if s.Failure == apperr.KindValidationFailed {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

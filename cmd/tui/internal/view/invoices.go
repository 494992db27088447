package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/invoicedash/internal/format"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

type InvoicesModel struct {
	service *invoice.Service

	table  table.Model
	search textinput.Model

	invoices   []invoice.ListedInvoice
	query      string
	page       int
	totalPages int

	loading bool
	err     error
}

func NewInvoicesModel(svc *invoice.Service) InvoicesModel {
	search := textinput.New()
	search.Placeholder = "Search invoices..."
	search.Width = 40

	return InvoicesModel{
		service: svc,
		table: newTable([]table.Column{
			{Title: "Customer", Width: 22},
			{Title: "Email", Width: 26},
			{Title: "Amount", Width: 12},
			{Title: "Date", Width: 14},
			{Title: "Status", Width: 9},
		}),
		search:  search,
		page:    1,
		loading: true,
	}
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.invoices = msg.invoices
			m.totalPages = msg.totalPages
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-12, 3))
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "/":
			m.table.Blur()
			return m, m.search.Focus()
		case "n":
			if m.page < m.totalPages {
				m.page++
				m.loading = true

				return m, m.loadCmd()
			}

			return m, nil
		case "p":
			if m.page > 1 {
				m.page--
				m.loading = true

				return m, m.loadCmd()
			}

			return m, nil
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.SetValue(m.query)
		m.search.Blur()
		m.table.Focus()

		return m, nil
	case tea.KeyEnter:
		m.query = m.search.Value()
		m.page = 1
		m.loading = true
		m.search.Blur()
		m.table.Focus()

		return m, m.loadCmd()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m InvoicesModel) View() string {
	header := fmt.Sprintf("Invoices  Search: %s", m.search.View())

	var body string

	switch {
	case m.err != nil:
		body = errorStyle.Render(m.err.Error())
	case m.loading:
		body = "Loading invoices..."
	case len(m.invoices) == 0:
		body = "No invoices found."
	default:
		body = borderStyle.Render(m.table.View())
	}

	footer := fmt.Sprintf("Page %s of %d", activeStyle(fmt.Sprint(m.page)), m.totalPages)
	help := faintStyle.Render("/: search | n/p: next/prev page | r: refresh | Esc: back")

	return paddedStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		header, "", body, "", footer, help,
	))
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.Name,
			inv.Email,
			format.Currency(inv.Amount),
			format.Date(inv.Date),
			string(inv.Status),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

type loadInvoicesMsg struct {
	invoices   []invoice.ListedInvoice
	totalPages int
	err        error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	query, page := m.query, m.page

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		total, err := m.service.Pages(ctx, query)
		if err != nil {
			return loadInvoicesMsg{err: err}
		}

		invoices, err := m.service.Filtered(ctx, query, page)

		return loadInvoicesMsg{invoices: invoices, totalPages: total, err: err}
	}
}

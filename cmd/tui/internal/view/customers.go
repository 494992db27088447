package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
)

type CustomersModel struct {
	service *customer.Service

	table   table.Model
	rows    []customer.Row
	loading bool
	err     error
}

func NewCustomersModel(svc *customer.Service) CustomersModel {
	return CustomersModel{
		service: svc,
		table: newTable([]table.Column{
			{Title: "Name", Width: 22},
			{Title: "Email", Width: 26},
			{Title: "Invoices", Width: 9},
			{Title: "Pending", Width: 12},
			{Title: "Paid", Width: 12},
		}),
		loading: true,
	}
}

func (m CustomersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CustomersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCustomersMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.rows = msg.rows
			m.refreshTable()
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-10, 3))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CustomersModel) View() string {
	var body string

	switch {
	case m.err != nil:
		body = errorStyle.Render(m.err.Error())
	case m.loading:
		body = "Loading customers..."
	default:
		body = borderStyle.Render(m.table.View())
	}

	return paddedStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Customers (%d)", len(m.rows)), "", body, "",
		faintStyle.Render("r: refresh | Esc: back"),
	))
}

func (m *CustomersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.rows))
	for _, c := range m.rows {
		rows = append(rows, table.Row{
			c.Name,
			c.Email,
			fmt.Sprint(c.TotalInvoices),
			c.TotalPending,
			c.TotalPaid,
		})
	}

	m.table.SetRows(rows)
}

type loadCustomersMsg struct {
	rows []customer.Row
	err  error
}

func (m CustomersModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rows, err := m.service.Filtered(ctx, "")

		return loadCustomersMsg{rows: rows, err: err}
	}
}

package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/invoicedash/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/invoicedash/internal/auth"
	"github.com/MrJamesThe3rd/invoicedash/internal/config"
	"github.com/MrJamesThe3rd/invoicedash/internal/customer"
	customerStore "github.com/MrJamesThe3rd/invoicedash/internal/customer/store"
	"github.com/MrJamesThe3rd/invoicedash/internal/database"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/invoicedash/internal/invoice/store"
	userStore "github.com/MrJamesThe3rd/invoicedash/internal/user/store"
)

type View int

const (
	ViewMenu      View = 0
	ViewInvoices  View = 1
	ViewCustomers View = 2
	ViewAddUser   View = 3
)

// noRevalidation is used because the terminal only reads invoices and holds no
// rendered pages of its own.
type noRevalidation struct{}

func (noRevalidation) Invalidate(string) {}

type model struct {
	appName         string
	invoiceService  *invoice.Service
	customerService *customer.Service
	authService     *auth.Service

	currentView View

	invoicesView  view.InvoicesModel
	customersView view.CustomersModel
	addUserView   view.AddUserModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), cfg.DB.MaxOpenConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	invSvc := invoice.NewService(invoiceStore.New(db), noRevalidation{})
	custSvc := customer.NewService(customerStore.New(db))
	authSvc := auth.NewService(userStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.BcryptCost)

	return model{
		appName:         cfg.App.Name,
		invoiceService:  invSvc,
		customerService: custSvc,
		authService:     authSvc,
		currentView:     ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService)

				return m, m.invoicesView.Init()
			case "2":
				m.currentView = ViewCustomers
				m.customersView = view.NewCustomersModel(m.customerService)

				return m, m.customersView.Init()
			case "3":
				m.currentView = ViewAddUser
				m.addUserView = view.NewAddUserModel(m.authService)

				return m, m.addUserView.Init()
			}
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewCustomers:
		var newModel tea.Model
		newModel, cmd = m.customersView.Update(msg)
		m.customersView = newModel.(view.CustomersModel)
	case ViewAddUser:
		var newModel tea.Model
		newModel, cmd = m.addUserView.Update(msg)
		m.addUserView = newModel.(view.AddUserModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Browse Invoices\n" +
				"2. Customers\n" +
				"3. Add Dashboard User\n\n" +
				"q. Quit",
		)
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewCustomers:
		return m.customersView.View()
	case ViewAddUser:
		return m.addUserView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

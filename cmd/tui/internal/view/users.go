package view

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/invoicedash/internal/auth"
	"github.com/MrJamesThe3rd/invoicedash/internal/user"
)

type AddUserModel struct {
	auth *auth.Service
	form *huh.Form

	saving bool
	status string
	err    error
}

func NewAddUserModel(svc *auth.Service) AddUserModel {
	return AddUserModel{auth: svc, form: newUserForm()}
}

func newUserForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name cannot be empty")
					}

					return nil
				}),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("user@nextmail.com").
				Validate(func(s string) error {
					if _, err := mail.ParseAddress(s); err != nil {
						return errors.New("enter a valid email")
					}

					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if len(s) < 6 {
						return errors.New("password must be at least 6 characters")
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m AddUserModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddUserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userSavedMsg:
		m.saving = false
		m.err = msg.err

		if msg.err == nil {
			m.status = fmt.Sprintf("Created %s <%s>.", msg.user.Name, msg.user.Email)
		}

		m.form = newUserForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if m.saving {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.saving = true
	m.status = ""
	m.err = nil

	return m, m.saveCmd()
}

func (m AddUserModel) View() string {
	var status string

	switch {
	case m.saving:
		status = "Saving..."
	case m.err != nil:
		status = errorStyle.Render(m.err.Error())
	case m.status != "":
		status = activeStyle(m.status)
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render("Add Dashboard User\n\n" + m.form.View())

	return paddedStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		panel, status, faintStyle.Render("Enter: next/submit | Esc: back"),
	))
}

type userSavedMsg struct {
	user *user.User
	err  error
}

func (m AddUserModel) saveCmd() tea.Cmd {
	name := strings.TrimSpace(m.form.GetString("name"))
	email := strings.TrimSpace(m.form.GetString("email"))
	password := m.form.GetString("password")

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		u, err := m.auth.Register(ctx, name, email, password)
		if errors.Is(err, user.ErrEmailTaken) {
			err = fmt.Errorf("%s is already registered", email)
		}

		return userSavedMsg{user: u, err: err}
	}
}

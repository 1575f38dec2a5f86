// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/nurse-notes/internal/service"
	"github.com/MKhiriev/nurse-notes/models"
)

// LoginModel is the sign-in screen: an e-mail and a password input and a
// submit action. Only one sign-in can be in flight; enter is ignored until
// the previous attempt returns. After a successful sign-in the form is
// replaced by a confirmation until the navigation guard moves on.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	serverDown bool
	signedIn   *models.UserProfile

	buildInfo models.AppBuildInfo
}

// NewLoginModel creates a [LoginModel]. The e-mail field has focus; the
// password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, buildInfo models.AppBuildInfo) *LoginModel {
	emailInput := newInput("email", 254)

	passwordInput := newInput("password", 256)
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	m := &LoginModel{
		ctx:       ctx,
		auth:      auth,
		inputs:    []textinput.Model{emailInput, passwordInput},
		buildInfo: buildInfo,
	}
	m.inputs[0].Focus()

	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

// Init implements [tea.Model]. Every visit starts with a clean form and a
// fresh health check.
func (m *LoginModel) Init() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
	m.errMsg = ""
	m.serverDown = false
	m.signedIn = nil

	return m.cmdHealthCheck()
}

// Update implements [tea.Model].
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthCheckedMsg:
		m.serverDown = !msg.available
		return m, nil
	case signInResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		user := msg.user
		m.signedIn = &user
		m.errMsg = ""
		m.inputs[1].Reset()
		return m, nil
	case tea.KeyMsg:
		if m.signedIn != nil {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	if m.submitting || m.signedIn != nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the form and starts a sign-in unless one is in flight.
func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		m.errMsg = "Email and password are required."
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.cmdSignIn(models.Credentials{Email: email, Password: password})
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	if m.serverDown {
		b.WriteString(warningStyle.Render("⚠ The server is not reachable right now. You can still try to sign in."))
		b.WriteString("\n\n")
	}

	if m.signedIn != nil {
		b.WriteString(successStyle.Render("Signed in"))
		b.WriteString("\n")
		b.WriteString("Welcome, ")
		b.WriteString(displayName(*m.signedIn))
		b.WriteString(". Opening your notes…")
		return renderPage("SIGN IN", b.String(), "")
	}

	b.WriteString("Email     │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password  │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("[Signing in…]")
	} else {
		b.WriteString("[Sign in]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.buildInfo.String()))

	return renderPage("SIGN IN", b.String(), "tab: next field │ enter: sign in")
}

func (m *LoginModel) cmdSignIn(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.SignIn(ctx, credentials)
		return signInResultMsg{user: user, err: err}
	}
}

func (m *LoginModel) cmdHealthCheck() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return healthCheckedMsg{available: auth.ServerAvailable(ctx)}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func displayName(user models.UserProfile) string {
	if strings.TrimSpace(user.FullName) != "" {
		return user.FullName
	}
	return user.Email
}
